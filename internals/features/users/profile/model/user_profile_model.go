package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserProfile guarda os dados de perfil e as preferências de notificação
// (lista de canais habilitados, ex.: email, alertas_mtr, relatorios).
type UserProfile struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`

	FullName string `gorm:"column:full_name;type:varchar(150)" json:"full_name" validate:"max=150"`
	Company  string `gorm:"column:company;type:varchar(150)" json:"company" validate:"max=150"`
	Phone    string `gorm:"column:phone;type:varchar(30)" json:"phone" validate:"max=30"`

	NotificationPrefs pq.StringArray `gorm:"column:notification_prefs;type:text[]" json:"notification_prefs"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
