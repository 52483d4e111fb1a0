package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func allAnswers(value string) map[string]string {
	answers := make(map[string]string)
	for _, g := range QuestionGroups {
		for _, q := range g.Questions {
			answers[q.ID] = value
		}
	}
	return answers
}

func TestScoreAllBest(t *testing.T) {
	res, err := Score(allAnswers("5"))
	require.NoError(t, err)

	require.Equal(t, 100, res.TotalScore)
	require.Equal(t, 100, res.EnvironmentalScore)
	require.Equal(t, 0, res.SocialScore)
	for _, cat := range []string{
		CategoryGovernance, CategoryMaterials, CategoryEnergy,
		CategoryDesign, CategoryWaste, CategoryWater,
	} {
		require.Equalf(t, 100, res.CategoryScores[cat], "categoria %s", cat)
	}
}

func TestScoreCategoryScoresCarryDerivedKeys(t *testing.T) {
	res, err := Score(allAnswers("5"))
	require.NoError(t, err)

	require.Len(t, res.CategoryScores, 8)
	env, ok := res.CategoryScores["environmental"]
	require.True(t, ok)
	require.Equal(t, res.EnvironmentalScore, env)
	social, ok := res.CategoryScores["social"]
	require.True(t, ok)
	require.Equal(t, 0, social)

	// as chaves derivadas não entram na média do total
	mixed := allAnswers("1")
	for _, q := range QuestionGroups[0].Questions {
		mixed[q.ID] = "5"
	}
	mixedRes, err := Score(mixed)
	require.NoError(t, err)
	require.Equal(t, 33, mixedRes.TotalScore)
	require.Equal(t, 20, mixedRes.CategoryScores["environmental"])
}

func TestScoreAllWorst(t *testing.T) {
	res, err := Score(allAnswers("1"))
	require.NoError(t, err)

	require.Equal(t, 20, res.TotalScore)
	require.Equal(t, 20, res.GovernanceScore)
	require.Equal(t, 20, res.EnvironmentalScore)
	require.Equal(t, 0, res.SocialScore)
}

func TestScoreMiddleOption(t *testing.T) {
	res, err := Score(allAnswers("3"))
	require.NoError(t, err)

	// 5 perguntas * 20 pontos * 3/5 = 60 por categoria
	require.Equal(t, 60, res.TotalScore)
	require.Equal(t, 60, res.MaterialsScore)
	require.Equal(t, 60, res.EnvironmentalScore)
}

func TestScoreMixedAnswers(t *testing.T) {
	answers := allAnswers("1")
	// governança nota máxima, demais no mínimo
	for _, q := range QuestionGroups[0].Questions {
		answers[q.ID] = "5"
	}

	res, err := Score(answers)
	require.NoError(t, err)

	require.Equal(t, 100, res.GovernanceScore)
	require.Equal(t, 20, res.MaterialsScore)
	require.Equal(t, 20, res.EnvironmentalScore)
	// (100 + 20*5) / 6 = 33.33 -> 33
	require.Equal(t, 33, res.TotalScore)
}

func TestScoreRoundsPerGroup(t *testing.T) {
	answers := allAnswers("5")
	// uma pergunta de governança na opção 2: 4*20 + 20*2/5 = 88
	answers["gov1"] = "2"

	res, err := Score(answers)
	require.NoError(t, err)
	require.Equal(t, 88, res.GovernanceScore)
	// (88 + 100*5) / 6 = 98
	require.Equal(t, 98, res.TotalScore)
}

func TestScoreMissingAnswer(t *testing.T) {
	answers := allAnswers("4")
	delete(answers, "res3")

	_, err := Score(answers)
	require.ErrorIs(t, err, ErrRespostaFaltando)
	require.Contains(t, err.Error(), "res3")
}

func TestScoreInvalidOption(t *testing.T) {
	answers := allAnswers("2")
	answers["agu1"] = "9"

	_, err := Score(answers)
	require.ErrorIs(t, err, ErrRespostaFaltando)
}

func TestSurveyDefinition(t *testing.T) {
	require.Len(t, QuestionGroups, 6)
	seen := map[string]bool{}
	for _, g := range QuestionGroups {
		require.Len(t, g.Questions, 5)
		for _, q := range g.Questions {
			require.False(t, seen[q.ID], "id duplicado %s", q.ID)
			seen[q.ID] = true
			require.Len(t, q.Options, 5)
			for i, o := range q.Options {
				require.Equal(t, fmt.Sprintf("%d", i+1), o.Value)
				require.Equal(t, i+1, o.Points)
			}
		}
	}
}

func TestMaturityLevel(t *testing.T) {
	require.Equal(t, "Inicial", MaturityLevel(20))
	require.Equal(t, "Básico", MaturityLevel(40))
	require.Equal(t, "Intermediário", MaturityLevel(60))
	require.Equal(t, "Avançado", MaturityLevel(80))
	require.Equal(t, "Avançado", MaturityLevel(100))
}
