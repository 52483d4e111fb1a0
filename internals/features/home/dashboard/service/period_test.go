package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriodRangeAtual(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	from, to, err := PeriodRange("atual", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPeriodRangeDefaultsToAtual(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	from, to, err := PeriodRange("", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPeriodRangeAnterior(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	from, to, err := PeriodRange("anterior", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPeriodRangeTrimestre(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	from, to, err := PeriodRange("trimestre", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestPeriodRangeCrossesYear(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	from, to, err := PeriodRange("anterior", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), to)

	from, _, err = PeriodRange("trimestre", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), from)
}

func TestPeriodRangeNMeses(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	from, to, err := PeriodRange("6meses", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), to)

	// 3meses e trimestre são equivalentes
	f1, t1, err := PeriodRange("3meses", now)
	require.NoError(t, err)
	f2, t2, err := PeriodRange("trimestre", now)
	require.NoError(t, err)
	require.Equal(t, f2, f1)
	require.Equal(t, t2, t1)
}

func TestPeriodRangeInvalid(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	_, _, err := PeriodRange("semestre", now)
	require.ErrorIs(t, err, ErrPeriodoInvalido)

	_, _, err = PeriodRange("0meses", now)
	require.ErrorIs(t, err, ErrPeriodoInvalido)
}
