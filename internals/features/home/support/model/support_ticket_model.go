package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SupportTicket struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	Subject     string `gorm:"column:subject;type:varchar(200);not null" json:"subject" validate:"required,max=200"`
	Description string `gorm:"column:description;type:text;not null" json:"description" validate:"required"`
	Category    string `gorm:"column:category;type:varchar(100);not null" json:"category" validate:"required,max=100"`

	Priority string         `gorm:"column:priority;type:varchar(20);not null;default:'média'" json:"priority"`
	Status   string         `gorm:"column:status;type:varchar(30);not null;default:'aberto'" json:"status"`
	Tags     pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
