package model

import (
	"time"

	"github.com/google/uuid"
)

type EsgScore struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	EnvironmentalScore int `gorm:"column:environmental_score;not null" json:"environmental_score" validate:"min=0,max=100"`
	SocialScore        int `gorm:"column:social_score;not null" json:"social_score" validate:"min=0,max=100"`
	GovernanceScore    int `gorm:"column:governance_score;not null" json:"governance_score" validate:"min=0,max=100"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EsgScore) TableName() string {
	return "esg_scores"
}
