package model

import (
	"time"

	"github.com/google/uuid"
)

// ConsultingAppointment é um pedido de consultoria agendado pelo usuário.
type ConsultingAppointment struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	Nome     string `gorm:"column:nome;type:varchar(150);not null" json:"nome" validate:"required,max=150"`
	Email    string `gorm:"column:email;type:varchar(255);not null" json:"email" validate:"required,email"`
	Telefone string `gorm:"column:telefone;type:varchar(30)" json:"telefone" validate:"max=30"`

	Data       time.Time `gorm:"column:data;not null" json:"data"`
	Observacao string    `gorm:"column:observacao;type:text" json:"observacao"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ConsultingAppointment) TableName() string {
	return "consulting_appointments"
}
