package service

import (
	"fmt"
	"math"
)

// Chaves internas dos indicadores, usadas no mapa de scores por categoria.
const (
	CategoryGovernance = "governance"
	CategoryMaterials  = "materials"
	CategoryEnergy     = "energy"
	CategoryDesign     = "design"
	CategoryWaste      = "waste"
	CategoryWater      = "water"
)

var ErrRespostaFaltando = fmt.Errorf("questionário incompleto")

// AssessmentResult é o resultado consolidado de uma avaliação IMC.
type AssessmentResult struct {
	TotalScore         int            `json:"total_score"`
	EnvironmentalScore int            `json:"environmental_score"`
	SocialScore        int            `json:"social_score"`
	GovernanceScore    int            `json:"governance_score"`
	MaterialsScore     int            `json:"materials_score"`
	EnergyScore        int            `json:"energy_score"`
	DesignScore        int            `json:"design_score"`
	WasteScore         int            `json:"waste_score"`
	WaterScore         int            `json:"water_score"`
	CategoryScores     map[string]int `json:"category_scores"`
}

// Score calcula a pontuação do questionário a partir das respostas.
// answers mapeia id da pergunta -> value da opção escolhida. Todas as
// perguntas precisam de resposta válida; caso contrário retorna
// ErrRespostaFaltando indicando a primeira pergunta pendente.
func Score(answers map[string]string) (*AssessmentResult, error) {
	scores := make(map[string]int, len(QuestionGroups))

	for _, group := range QuestionGroups {
		weight := 100.0 / float64(len(group.Questions))
		total := 0.0
		for _, q := range group.Questions {
			value, ok := answers[q.ID]
			if !ok || value == "" {
				return nil, fmt.Errorf("%w: pergunta %s sem resposta", ErrRespostaFaltando, q.ID)
			}
			idx := optionIndex(q.Options, value)
			if idx < 0 {
				return nil, fmt.Errorf("%w: resposta inválida %q para a pergunta %s", ErrRespostaFaltando, value, q.ID)
			}
			// crédito proporcional à posição da opção (pior -> melhor)
			total += weight * (float64(idx+1) / float64(len(q.Options)))
		}
		scores[group.Category] = int(math.Round(total))
	}

	res := &AssessmentResult{
		GovernanceScore: scores[CategoryGovernance],
		MaterialsScore:  scores[CategoryMaterials],
		EnergyScore:     scores[CategoryEnergy],
		DesignScore:     scores[CategoryDesign],
		WasteScore:      scores[CategoryWaste],
		WaterScore:      scores[CategoryWater],
		CategoryScores:  scores,
	}

	res.EnvironmentalScore = int(math.Round(float64(res.MaterialsScore+res.WasteScore+res.EnergyScore+res.WaterScore) / 4.0))
	res.SocialScore = 0

	// o total considera apenas os seis grupos do questionário
	sum := 0
	for _, s := range scores {
		sum += s
	}
	res.TotalScore = int(math.Round(float64(sum) / float64(len(QuestionGroups))))

	scores["environmental"] = res.EnvironmentalScore
	scores["social"] = res.SocialScore

	return res, nil
}

func optionIndex(options []SurveyOption, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// MaturityLevel traduz a pontuação total em um nível de maturidade.
func MaturityLevel(total int) string {
	switch {
	case total >= 80:
		return "Avançado"
	case total >= 60:
		return "Intermediário"
	case total >= 40:
		return "Básico"
	default:
		return "Inicial"
	}
}
