package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyExpired(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	require.Equal(t, ClassVencido, Classify(now.Add(-24*time.Hour), now))
	// vencimento exatamente agora também conta como vencido
	require.Equal(t, ClassVencido, Classify(now, now))
}

func TestClassifyExpiringSoon(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	require.Equal(t, ClassProximoVencimento, Classify(now.Add(time.Hour), now))
	require.Equal(t, ClassProximoVencimento, Classify(now.Add(6*24*time.Hour), now))
}

func TestClassifyActive(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	// o limite da janela (exatamente 7 dias) ainda é ativo
	require.Equal(t, ClassAtivo, Classify(now.Add(7*24*time.Hour), now))
	require.Equal(t, ClassAtivo, Classify(now.Add(30*24*time.Hour), now))
}

func TestStoredStatus(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	require.Equal(t, "vencido", StoredStatus(now.Add(-time.Minute), now))
	// próximo do vencimento persiste como ativo
	require.Equal(t, "ativo", StoredStatus(now.Add(48*time.Hour), now))
	require.Equal(t, "ativo", StoredStatus(now.Add(60*24*time.Hour), now))
}

func TestNextNumber(t *testing.T) {
	require.Equal(t, "MTR-2026-001", NextNumber(2026, 1))
	require.Equal(t, "MTR-2026-042", NextNumber(2026, 42))
	require.Equal(t, "MTR-2025-137", NextNumber(2025, 137))
	// sequência acima de três dígitos não é truncada
	require.Equal(t, "MTR-2026-1200", NextNumber(2026, 1200))
}
