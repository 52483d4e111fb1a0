package service

import (
	"testing"

	userModel "canteirocircular_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

func sampleUser(t *testing.T) *userModel.UserModel {
	t.Helper()
	return &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "construtora",
		Email:    "contato@construtora.com.br",
	}
}
