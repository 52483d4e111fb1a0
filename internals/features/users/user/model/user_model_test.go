package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validUser() UserModel {
	return UserModel{
		UserName: "construtora",
		Email:    "contato@construtora.com.br",
		Password: "senha-bem-longa",
	}
}

func TestValidateOK(t *testing.T) {
	u := validUser()
	require.NoError(t, u.Validate())
}

func TestValidateRequiresEmail(t *testing.T) {
	u := validUser()
	u.Email = "nao-e-email"

	err := u.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "e-mail")
}

func TestValidatePasswordMinLength(t *testing.T) {
	u := validUser()
	u.Password = "curta"

	err := u.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "8")
}

func TestValidateUserNameRequired(t *testing.T) {
	u := validUser()
	u.UserName = ""

	err := u.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "obrigatório")
}
