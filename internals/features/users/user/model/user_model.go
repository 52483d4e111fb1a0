package model

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// UserModel representa a tabela users.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"password,omitempty" validate:"required,min=8"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// Validate aplica as regras declaradas nas tags do modelo.
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make(map[string]string)
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			messages[fieldErr.Field()] = fieldErr.Field() + " é obrigatório."
		case "email":
			messages[fieldErr.Field()] = "Formato de e-mail inválido."
		case "min":
			messages[fieldErr.Field()] = fieldErr.Field() + " precisa de pelo menos " + fieldErr.Param() + " caracteres."
		case "max":
			messages[fieldErr.Field()] = fieldErr.Field() + " deve ter no máximo " + fieldErr.Param() + " caracteres."
		default:
			messages[fieldErr.Field()] = "Formato inválido."
		}
	}

	fields := make([]string, 0, len(messages))
	for f := range messages {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, messages[f])
	}
	return errors.New(strings.Join(parts, " "))
}
