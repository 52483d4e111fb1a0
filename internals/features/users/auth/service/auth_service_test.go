package service

import (
	"testing"
	"time"

	"canteirocircular_backend/internals/features/users/auth/dto"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := computeRefreshHash("token-abc", "segredo")
	b := computeRefreshHash("token-abc", "segredo")
	require.Equal(t, a, b)
	require.Len(t, a, 32) // SHA-256
}

func TestComputeRefreshHashVariesByInput(t *testing.T) {
	base := computeRefreshHash("token-abc", "segredo")
	require.NotEqual(t, base, computeRefreshHash("token-xyz", "segredo"))
	require.NotEqual(t, base, computeRefreshHash("token-abc", "outro-segredo"))
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	user := sampleUser(t)

	claims := buildAccessClaims(user, now)
	require.Equal(t, user.ID.String(), claims["id"])
	require.Equal(t, user.Email, claims["email"])
	require.Equal(t, now.Add(accessTTL).Unix(), claims["exp"])
}

func TestBuildRefreshClaims(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	user := sampleUser(t)

	claims := buildRefreshClaims(user.ID, now)
	require.Equal(t, "refresh", claims["typ"])
	require.Equal(t, user.ID.String(), claims["sub"])
	require.Equal(t, now.Add(refreshTTL).Unix(), claims["exp"])
}

func TestRegisterRequestShape(t *testing.T) {
	var req dto.RegisterRequest
	body := []byte(`{"user_name":"Construtora Sul","email":"obra@sul.com","password":"senha-forte"}`)
	require.NoError(t, sonic.Unmarshal(body, &req))
	require.Equal(t, "Construtora Sul", req.UserName)
	require.Equal(t, "obra@sul.com", req.Email)
	require.Equal(t, "senha-forte", req.Password)
}

func TestLoginRequestShape(t *testing.T) {
	var req dto.LoginRequest
	body := []byte(`{"email":"obra@sul.com","password":"senha-forte"}`)
	require.NoError(t, sonic.Unmarshal(body, &req))
	require.Equal(t, "obra@sul.com", req.Email)
	require.Equal(t, "senha-forte", req.Password)
}

func TestStrptr(t *testing.T) {
	require.Nil(t, strptr("   "))
	p := strptr("  Mozilla/5.0 ")
	require.NotNil(t, p)
	require.Equal(t, "Mozilla/5.0", *p)
}
