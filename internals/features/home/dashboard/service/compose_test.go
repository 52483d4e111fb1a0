package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	finservice "canteirocircular_backend/internals/features/finance/transactions/service"
	esgservice "canteirocircular_backend/internals/features/sustainability/esg/service"

	"canteirocircular_backend/internals/constants"
)

func TestComposeEmpty(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	m, err := Compose(Inputs{}, "", now)
	require.NoError(t, err)
	require.Equal(t, "atual", m.Period)
	require.Zero(t, m.Imc.Assessments)
	require.Zero(t, m.Esg.Score)
	require.Zero(t, m.Mtr.Ativos)
	require.Zero(t, m.Financial.Totals.Balance)
}

func TestCompose(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	in := Inputs{
		Imc: []ImcEntry{
			{TotalScore: 40, CreatedAt: now.AddDate(0, -2, 0)},
			{TotalScore: 60, CreatedAt: now.AddDate(0, -1, 0)},
			{TotalScore: 71, CreatedAt: now.AddDate(0, 0, -1)},
		},
		Esg: []esgservice.PillarEntry{
			{Environmental: 50, Social: 50, Governance: 50, CreatedAt: now.AddDate(0, 0, -10)},
			{Environmental: 80, Social: 60, Governance: 70, CreatedAt: now.AddDate(0, 0, -1)},
		},
		MtrDueDates: []time.Time{
			now.AddDate(0, 0, -1), // vencido
			now.AddDate(0, 0, 3),  // próximo do vencimento
			now.AddDate(0, 1, 0),  // ativo
		},
		Financial: []finservice.Entry{
			{Type: constants.TransactionIncome, Amount: 1000, Date: now},
			{Type: constants.TransactionExpense, Amount: 400, Date: now},
		},
	}

	m, err := Compose(in, "trimestre", now)
	require.NoError(t, err)
	require.Equal(t, "trimestre", m.Period)

	require.Equal(t, int64(3), m.Imc.Assessments)
	require.Equal(t, 71, m.Imc.Latest)
	require.Equal(t, 57, m.Imc.Average) // (40+60+71)/3 = 57
	require.Equal(t, "Intermediário", m.Imc.MaturityLevel)

	require.Equal(t, 70, m.Esg.Score)
	require.Equal(t, 30, m.Esg.DeltaEnvironmental)

	require.Equal(t, int64(2), m.Mtr.Ativos) // próximo do vencimento ainda conta
	require.Equal(t, int64(1), m.Mtr.Vencidos)
	require.Equal(t, int64(1), m.Mtr.ProximoVencimento)

	require.Equal(t, 600.0, m.Financial.Totals.Balance)
	require.Len(t, m.Financial.Trend, 1)
}

func TestComposeScopesImcAndEsgToPeriod(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	in := Inputs{
		Imc: []ImcEntry{
			{TotalScore: 30, CreatedAt: now.AddDate(0, -3, 0)}, // fora do mês
			{TotalScore: 90, CreatedAt: now.AddDate(0, 0, -2)},
		},
		Esg: []esgservice.PillarEntry{
			{Environmental: 10, Social: 10, Governance: 10, CreatedAt: now.AddDate(0, -3, 0)},
			{Environmental: 60, Social: 60, Governance: 60, CreatedAt: now.AddDate(0, 0, -2)},
		},
		MtrDueDates: []time.Time{now.AddDate(-1, 0, 0)},
	}

	m, err := Compose(in, constants.PeriodAtual, now)
	require.NoError(t, err)

	// só a avaliação do mês corrente entra na média
	require.Equal(t, int64(1), m.Imc.Assessments)
	require.Equal(t, 90, m.Imc.Latest)
	require.Equal(t, 90, m.Imc.Average)

	// idem para o ESG: o lançamento antigo não vira "anterior"
	require.Equal(t, 60, m.Esg.Score)
	require.Equal(t, 1, m.Esg.Entries)
	require.Zero(t, m.Esg.Delta)

	// MTRs não são recortados: vencido há um ano segue contando
	require.Equal(t, int64(1), m.Mtr.Vencidos)
}

func TestComposeInvalidPeriod(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	_, err := Compose(Inputs{}, "semestre", now)
	require.ErrorIs(t, err, ErrPeriodoInvalido)
}
