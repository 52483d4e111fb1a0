package dto

type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required,max=300"`
	Project     string  `json:"project" validate:"max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Observacao  string  `json:"observacao"`
}

type UpdateTransactionRequest struct {
	Description *string  `json:"description" validate:"omitempty,max=300"`
	Project     *string  `json:"project" validate:"omitempty,max=200"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Observacao  *string  `json:"observacao"`
}
