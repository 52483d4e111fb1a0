package dto

type CreateAppointmentRequest struct {
	Nome       string `json:"nome" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Telefone   string `json:"telefone" validate:"max=30"`
	Data       string `json:"data" validate:"required"`
	Observacao string `json:"observacao"`
}
