package dto

type CreateTicketRequest struct {
	Subject     string   `json:"subject" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,max=100"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=baixa média alta"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aberto em_andamento resolvido"`
}
