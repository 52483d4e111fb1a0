package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func TestSummarizeEmpty(t *testing.T) {
	snap := Summarize(nil)
	require.Equal(t, Snapshot{}, snap)
}

func TestSummarizeSingleEntry(t *testing.T) {
	snap := Summarize([]PillarEntry{
		{Environmental: 70, Social: 50, Governance: 60, CreatedAt: at(1)},
	})

	require.Equal(t, 70, snap.Environmental)
	require.Equal(t, 60, snap.Score) // (70+50+60)/3
	require.Equal(t, 60, snap.Average)
	require.Equal(t, 0, snap.Delta, "sem lançamento anterior não há variação")
	require.Equal(t, 1, snap.Entries)
}

func TestSummarizeUsesLatestEntry(t *testing.T) {
	snap := Summarize([]PillarEntry{
		{Environmental: 30, Social: 30, Governance: 30, CreatedAt: at(1)},
		{Environmental: 60, Social: 90, Governance: 60, CreatedAt: at(2)},
	})

	require.Equal(t, 60, snap.Environmental)
	require.Equal(t, 90, snap.Social)
	require.Equal(t, 70, snap.Score)
	require.Equal(t, 50, snap.Average) // (30 + 70) / 2
	require.Equal(t, 40, snap.Delta)
}

func TestSummarizeDeltaAgainstPrevious(t *testing.T) {
	snap := Summarize([]PillarEntry{
		{Environmental: 10, Social: 10, Governance: 10, CreatedAt: at(1)},
		{Environmental: 80, Social: 80, Governance: 80, CreatedAt: at(2)},
		{Environmental: 75, Social: 75, Governance: 75, CreatedAt: at(3)},
	})

	// compara com o penúltimo, não com o primeiro
	require.Equal(t, -5, snap.Delta)
	require.Equal(t, -5, snap.DeltaEnvironmental)
	require.Equal(t, -5, snap.DeltaSocial)
	require.Equal(t, -5, snap.DeltaGovernance)
	require.Equal(t, 75, snap.Score)
	require.Equal(t, 55, snap.Average) // (10 + 80 + 75) / 3
}

func TestSummarizePillarDeltas(t *testing.T) {
	snap := Summarize([]PillarEntry{
		{Environmental: 40, Social: 20, Governance: 60, CreatedAt: at(1)},
		{Environmental: 55, Social: 20, Governance: 50, CreatedAt: at(2)},
	})

	require.Equal(t, 15, snap.DeltaEnvironmental)
	require.Equal(t, 0, snap.DeltaSocial)
	require.Equal(t, -10, snap.DeltaGovernance)
}

func TestLastN(t *testing.T) {
	entries := []PillarEntry{
		{Environmental: 10, CreatedAt: at(1)},
		{Environmental: 20, CreatedAt: at(2)},
		{Environmental: 30, CreatedAt: at(3)},
	}

	require.Len(t, LastN(entries, 2), 2)
	require.Equal(t, 20, LastN(entries, 2)[0].Environmental)
	require.Len(t, LastN(entries, 0), 3, "n não positivo devolve tudo")
	require.Len(t, LastN(entries, 10), 3)
}

func TestInRange(t *testing.T) {
	entries := []PillarEntry{
		{Environmental: 10, CreatedAt: at(1)},
		{Environmental: 20, CreatedAt: at(5)},
		{Environmental: 30, CreatedAt: at(9)},
	}

	got, err := InRange(entries, at(2), at(9))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 20, got[0].Environmental)
}

func TestInRangeInvalid(t *testing.T) {
	_, err := InRange(nil, at(5), at(1))
	require.ErrorIs(t, err, ErrIntervaloInvalido)
}

func TestSummarizeRoundsMeans(t *testing.T) {
	snap := Summarize([]PillarEntry{
		{Environmental: 50, Social: 50, Governance: 51, CreatedAt: at(1)},
	})
	// 151/3 = 50.33 -> 50
	require.Equal(t, 50, snap.Score)
}

func TestCurrentDistribution(t *testing.T) {
	old := at(1)
	recent := at(5)
	items := []DistributionItem{
		{WasteType: "Concreto", Percentage: 40, CreatedAt: old},
		{WasteType: "Madeira", Percentage: 60, CreatedAt: old},
		{WasteType: "Concreto", Percentage: 35, CreatedAt: recent},
		{WasteType: "Metal", Percentage: 25, CreatedAt: recent},
		{WasteType: "Madeira", Percentage: 40, CreatedAt: recent},
	}

	current := CurrentDistribution(items)
	require.Len(t, current, 3)
	for _, it := range current {
		require.True(t, it.CreatedAt.Equal(recent))
	}
}

func TestCurrentDistributionEmpty(t *testing.T) {
	require.Nil(t, CurrentDistribution(nil))
}
