package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupFaqAll(t *testing.T) {
	cats := GroupFaq(FaqEntries, "")
	require.Len(t, cats, 4)
	require.Equal(t, "Calculadora IMC", cats[0].Category)
	require.Len(t, cats[0].Questions, 1)
}

func TestGroupFaqSearchMatchesAnswer(t *testing.T) {
	cats := GroupFaq(FaqEntries, "manifesto")
	require.Len(t, cats, 1)
	require.Equal(t, "MTR", cats[0].Category)
}

func TestGroupFaqSearchCaseInsensitive(t *testing.T) {
	cats := GroupFaq(FaqEntries, "SCORE imc")
	require.Len(t, cats, 1)
	require.Equal(t, "Calculadora IMC", cats[0].Category)
}

func TestGroupFaqNoMatches(t *testing.T) {
	cats := GroupFaq(FaqEntries, "blockchain")
	require.Empty(t, cats)
}
