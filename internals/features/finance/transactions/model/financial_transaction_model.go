package model

import (
	"time"

	"github.com/google/uuid"
)

type FinancialTransaction struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	Description string  `gorm:"column:description;type:varchar(300);not null" json:"description" validate:"required,max=300"`
	Project     string  `gorm:"column:project;type:varchar(200)" json:"project"`
	Category    string  `gorm:"column:category;type:varchar(100);not null" json:"category" validate:"required,max=100"`
	Type        string  `gorm:"column:type;type:varchar(10);not null" json:"type" validate:"required,oneof=income expense"`
	Amount      float64 `gorm:"column:amount;not null" json:"amount" validate:"gte=0"`

	Date       time.Time `gorm:"column:date;type:date;not null" json:"date"`
	Observacao string    `gorm:"column:observacao;type:text" json:"observacao"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FinancialTransaction) TableName() string {
	return "financial_transactions"
}
