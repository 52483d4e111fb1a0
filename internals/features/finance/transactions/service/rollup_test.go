package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func tx(typ, category, project string, amount float64, date time.Time) Entry {
	return Entry{
		Description: category + " em " + project,
		Project:     project,
		Category:    category,
		Type:        typ,
		Amount:      amount,
		Date:        date,
	}
}

func sampleEntries(now time.Time) []Entry {
	return []Entry{
		tx("income", "Venda de Resíduos", "Obra Centro", 5000, now),
		tx("expense", "Materiais", "Obra Centro", 1200, now),
		tx("expense", "Transporte", "Residencial Sul", 800, now.AddDate(0, -1, 0)),
		tx("expense", "Materiais", "Residencial Sul", 300, now.AddDate(-1, 0, 0)),
		tx("income", "Consultoria", "Obra Centro", 2000, now.AddDate(0, -2, 0)),
	}
}

func TestApplyNoFilter(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	got := Apply(sampleEntries(now), Filter{}, now)
	require.Len(t, got, 5)
}

func TestApplyByType(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	got := Apply(sampleEntries(now), Filter{Type: "expense"}, now)
	require.Len(t, got, 3)
	for _, e := range got {
		require.Equal(t, "expense", e.Type)
	}
}

func TestApplyCombinedFilters(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	min := 500.0
	got := Apply(sampleEntries(now), Filter{
		Type:      "expense",
		Category:  "Materiais",
		MinAmount: &min,
	}, now)

	require.Len(t, got, 1)
	require.Equal(t, 1200.0, got[0].Amount)
}

func TestApplyProjectCaseInsensitive(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	got := Apply(sampleEntries(now), Filter{Project: "obra centro"}, now)
	require.Len(t, got, 3)

	got = Apply(sampleEntries(now), Filter{Project: "SUL"}, now)
	require.Len(t, got, 2)
}

func TestApplyPeriodMonth(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	got := Apply(sampleEntries(now), Filter{Period: PeriodMonth}, now)
	require.Len(t, got, 2)
}

func TestApplyPeriodYear(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	got := Apply(sampleEntries(now), Filter{Period: PeriodYear}, now)
	// exclui apenas o lançamento do ano anterior
	require.Len(t, got, 4)
}

func TestApplyMaxAmount(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	max := 1000.0
	got := Apply(sampleEntries(now), Filter{MaxAmount: &max}, now)
	require.Len(t, got, 2)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	totals := Summarize(sampleEntries(now))

	require.Equal(t, 7000.0, totals.Income)
	require.Equal(t, 2300.0, totals.Expense)
	require.Equal(t, 4700.0, totals.Balance)
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)
	require.Equal(t, Totals{}, totals)
}

func TestByCategoryOnlyExpenses(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	slices := ByCategory(sampleEntries(now))

	require.Len(t, slices, 2)
	require.Equal(t, "Materiais", slices[0].Category)
	require.Equal(t, 1500.0, slices[0].Total)
	require.Equal(t, "Transporte", slices[1].Category)
	require.Equal(t, 800.0, slices[1].Total)
}

func TestMonthlyTrendBucketsByYearAndMonth(t *testing.T) {
	// mesmo mês em anos diferentes não pode cair no mesmo balde
	entries := []Entry{
		tx("expense", "Materiais", "Obra A", 100, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)),
		tx("expense", "Materiais", "Obra A", 250, time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)),
		tx("income", "Venda", "Obra A", 900, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)),
		tx("income", "Venda", "Obra A", 400, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	points := MonthlyTrend(entries)
	require.Len(t, points, 3)

	require.Equal(t, "Jun/2025", points[0].Label)
	require.Equal(t, 100.0, points[0].Expense)

	require.Equal(t, "Jan/2026", points[1].Label)
	require.Equal(t, 400.0, points[1].Income)

	require.Equal(t, "Jun/2026", points[2].Label)
	require.Equal(t, 900.0, points[2].Income)
	require.Equal(t, 250.0, points[2].Expense)
}
