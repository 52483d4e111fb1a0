package model

import (
	"time"

	"github.com/google/uuid"
)

// WasteDistribution é uma fatia do gráfico de resíduos. As linhas gravadas
// com o mesmo created_at formam uma distribuição completa.
type WasteDistribution struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	WasteType  string  `gorm:"column:waste_type;type:varchar(100);not null" json:"waste_type" validate:"required,max=100"`
	Percentage float64 `gorm:"column:percentage;not null" json:"percentage" validate:"min=0,max=100"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (WasteDistribution) TableName() string {
	return "waste_distribution"
}
