package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SustainabilityMetric é uma avaliação IMC concluída por um usuário.
// Answers guarda as respostas do questionário (id da pergunta -> opção) e
// CategoryScores a pontuação por indicador, ambos em JSONB.
type SustainabilityMetric struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	TotalScore         int `gorm:"column:total_score;not null" json:"total_score"`
	EnvironmentalScore int `gorm:"column:environmental_score;not null" json:"environmental_score"`
	SocialScore        int `gorm:"column:social_score;not null" json:"social_score"`
	GovernanceScore    int `gorm:"column:governance_score;not null" json:"governance_score"`

	MaterialsScore int `gorm:"column:materials_score;not null" json:"materials_score"`
	EnergyScore    int `gorm:"column:energy_score;not null" json:"energy_score"`
	DesignScore    int `gorm:"column:design_score;not null" json:"design_score"`
	WasteScore     int `gorm:"column:waste_score;not null" json:"waste_score"`
	WaterScore     int `gorm:"column:water_score;not null" json:"water_score"`

	Answers        datatypes.JSON `gorm:"column:answers;type:jsonb" json:"answers"`
	CategoryScores datatypes.JSON `gorm:"column:category_scores;type:jsonb" json:"category_scores"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SustainabilityMetric) TableName() string {
	return "sustainability_metrics"
}
