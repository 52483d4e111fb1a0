package dto

type UpdateProfileRequest struct {
	FullName          *string   `json:"full_name" validate:"omitempty,max=150"`
	Company           *string   `json:"company" validate:"omitempty,max=150"`
	Phone             *string   `json:"phone" validate:"omitempty,max=30"`
	NotificationPrefs *[]string `json:"notification_prefs"`
}

// AccountStats resume a atividade da conta mostrada na tela de perfil.
type AccountStats struct {
	Assessments  int64 `json:"assessments"`
	MtrRecords   int64 `json:"mtr_records"`
	Transactions int64 `json:"transactions"`
	EsgEntries   int64 `json:"esg_entries"`
	Tickets      int64 `json:"tickets"`
}
