package dto

import (
	"time"

	"canteirocircular_backend/internals/features/sustainability/esg/model"
	"canteirocircular_backend/internals/features/sustainability/esg/service"
)

type CreateScoreRequest struct {
	EnvironmentalScore int `json:"environmental_score" validate:"min=0,max=100"`
	SocialScore        int `json:"social_score" validate:"min=0,max=100"`
	GovernanceScore    int `json:"governance_score" validate:"min=0,max=100"`
}

// CreateDistributionRequest substitui a distribuição de resíduos atual.
// As fatias são gravadas com o mesmo created_at.
type CreateDistributionRequest struct {
	Items []DistributionItemInput `json:"items" validate:"required,min=1,dive"`
}

type DistributionItemInput struct {
	WasteType  string  `json:"waste_type" validate:"required,max=100"`
	Percentage float64 `json:"percentage" validate:"min=0,max=100"`
}

// CreateReportRequest registra pontuação e distribuição em uma chamada.
// Quando waste vem preenchido, a distribuição anterior é descartada.
type CreateReportRequest struct {
	EnvironmentalScore int                     `json:"environmental_score" validate:"min=0,max=100"`
	SocialScore        int                     `json:"social_score" validate:"min=0,max=100"`
	GovernanceScore    int                     `json:"governance_score" validate:"min=0,max=100"`
	Waste              []DistributionItemInput `json:"waste" validate:"omitempty,dive"`
}

type CreateGoalRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description"`
	TargetEnvironmental int        `json:"target_environmental" validate:"min=0,max=100"`
	TargetSocial        int        `json:"target_social" validate:"min=0,max=100"`
	TargetGovernance    int        `json:"target_governance" validate:"min=0,max=100"`
	TargetDate          *time.Time `json:"target_date"`
}

type UpdateGoalRequest struct {
	Title               *string    `json:"title" validate:"omitempty,max=200"`
	Description         *string    `json:"description"`
	Progress            *int       `json:"progress" validate:"omitempty,min=0,max=100"`
	Status              *string    `json:"status" validate:"omitempty,oneof=em_andamento concluida"`
	TargetEnvironmental *int       `json:"target_environmental" validate:"omitempty,min=0,max=100"`
	TargetSocial        *int       `json:"target_social" validate:"omitempty,min=0,max=100"`
	TargetGovernance    *int       `json:"target_governance" validate:"omitempty,min=0,max=100"`
	TargetDate          *time.Time `json:"target_date"`
}

// HistoryPoint é um lançamento de pontuação no gráfico de evolução.
type HistoryPoint struct {
	Date          string `json:"date"`
	Environmental int    `json:"environmental_score"`
	Social        int    `json:"social_score"`
	Governance    int    `json:"governance_score"`
}

// PanelResponse é o payload completo do painel ESG.
type PanelResponse struct {
	Snapshot     service.Snapshot           `json:"snapshot"`
	History      []HistoryPoint             `json:"history"`
	Distribution []service.DistributionItem `json:"distribution"`
	Goals        []model.EsgGoal            `json:"goals"`
}
