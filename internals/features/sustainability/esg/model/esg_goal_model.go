package model

import (
	"time"

	"github.com/google/uuid"
)

type EsgGoal struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	Title       string `gorm:"column:title;type:varchar(200);not null" json:"title" validate:"required,max=200"`
	Description string `gorm:"column:description;type:text" json:"description"`

	Progress int    `gorm:"column:progress;not null;default:0" json:"progress" validate:"min=0,max=100"`
	Status   string `gorm:"column:status;type:varchar(30);not null;default:'em_andamento'" json:"status"`

	TargetEnvironmental int `gorm:"column:target_environmental" json:"target_environmental" validate:"min=0,max=100"`
	TargetSocial        int `gorm:"column:target_social" json:"target_social" validate:"min=0,max=100"`
	TargetGovernance    int `gorm:"column:target_governance" json:"target_governance" validate:"min=0,max=100"`

	TargetDate *time.Time `gorm:"column:target_date" json:"target_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EsgGoal) TableName() string {
	return "esg_goals"
}
