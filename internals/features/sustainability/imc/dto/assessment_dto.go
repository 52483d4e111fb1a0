package dto

import (
	"time"

	"canteirocircular_backend/internals/features/sustainability/imc/model"
	"canteirocircular_backend/internals/features/sustainability/imc/service"

	"github.com/google/uuid"
)

// SubmitAssessmentRequest é o corpo do envio do questionário IMC.
// Answers mapeia o id de cada pergunta para o value da opção escolhida.
type SubmitAssessmentRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

type AssessmentResponse struct {
	ID                 uuid.UUID         `json:"id"`
	TotalScore         int               `json:"total_score"`
	EnvironmentalScore int               `json:"environmental_score"`
	SocialScore        int               `json:"social_score"`
	GovernanceScore    int               `json:"governance_score"`
	MaterialsScore     int               `json:"materials_score"`
	EnergyScore        int               `json:"energy_score"`
	DesignScore        int               `json:"design_score"`
	WasteScore         int               `json:"waste_score"`
	WaterScore         int               `json:"water_score"`
	MaturityLevel      string            `json:"maturity_level"`
	CategoryScores     map[string]int    `json:"category_scores,omitempty"`
	Answers            map[string]string `json:"answers,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
}

func ToAssessmentResponse(m *model.SustainabilityMetric) AssessmentResponse {
	return AssessmentResponse{
		ID:                 m.ID,
		TotalScore:         m.TotalScore,
		EnvironmentalScore: m.EnvironmentalScore,
		SocialScore:        m.SocialScore,
		GovernanceScore:    m.GovernanceScore,
		MaterialsScore:     m.MaterialsScore,
		EnergyScore:        m.EnergyScore,
		DesignScore:        m.DesignScore,
		WasteScore:         m.WasteScore,
		WaterScore:         m.WaterScore,
		MaturityLevel:      service.MaturityLevel(m.TotalScore),
		CreatedAt:          m.CreatedAt,
	}
}

// ExportRow é uma linha rótulo/valor da planilha de exportação.
type ExportRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HistoryPoint alimenta o gráfico de evolução do IMC.
type HistoryPoint struct {
	Date               string `json:"date"`
	TotalScore         int    `json:"total_score"`
	EnvironmentalScore int    `json:"environmental_score"`
	GovernanceScore    int    `json:"governance_score"`
}
