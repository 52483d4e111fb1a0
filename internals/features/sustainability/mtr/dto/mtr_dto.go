package dto

import (
	"time"

	"canteirocircular_backend/internals/features/sustainability/mtr/model"
	"canteirocircular_backend/internals/features/sustainability/mtr/service"
)

// CreateMtrRequest é o corpo de criação de manifesto. Datas no formato
// AAAA-MM-DD. O número do MTR é gerado pelo sistema quando ausente e
// precisa ser único por usuário quando informado.
type CreateMtrRequest struct {
	MtrNumber   string  `json:"mtr_number" validate:"omitempty,max=30"`
	ProjectName string  `json:"project_name" validate:"required,max=200"`
	WasteType   string  `json:"waste_type" validate:"required,max=100"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	Unit        string  `json:"unit" validate:"required,max=20"`
	Description string  `json:"description"`

	GeneratorName    string `json:"generator_name"`
	GeneratorCnpj    string `json:"generator_cnpj"`
	GeneratorAddress string `json:"generator_address"`

	TransporterName    string `json:"transporter_name"`
	TransporterCnpj    string `json:"transporter_cnpj"`
	TransporterLicense string `json:"transporter_license"`

	ReceiverName    string `json:"receiver_name"`
	ReceiverCnpj    string `json:"receiver_cnpj"`
	ReceiverLicense string `json:"receiver_license"`

	IssueDate string `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate   string `json:"due_date" validate:"required,datetime=2006-01-02"`

	Location string `json:"location"`
}

type UpdateMtrRequest struct {
	ProjectName *string  `json:"project_name" validate:"omitempty,max=200"`
	WasteType   *string  `json:"waste_type" validate:"omitempty,max=100"`
	Quantity    *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit        *string  `json:"unit" validate:"omitempty,max=20"`
	Description *string  `json:"description"`

	GeneratorName    *string `json:"generator_name"`
	GeneratorCnpj    *string `json:"generator_cnpj"`
	GeneratorAddress *string `json:"generator_address"`

	TransporterName    *string `json:"transporter_name"`
	TransporterCnpj    *string `json:"transporter_cnpj"`
	TransporterLicense *string `json:"transporter_license"`

	ReceiverName    *string `json:"receiver_name"`
	ReceiverCnpj    *string `json:"receiver_cnpj"`
	ReceiverLicense *string `json:"receiver_license"`

	IssueDate *string `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate   *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`

	Location *string `json:"location"`
}

// MtrResponse espelha o registro com a classificação derivada do vencimento.
type MtrResponse struct {
	model.MtrRecord
	Classification string `json:"classification"`
}

func ToMtrResponse(m model.MtrRecord, now time.Time) MtrResponse {
	return MtrResponse{
		MtrRecord:      m,
		Classification: service.Classify(m.DueDate, now),
	}
}

// StatsResponse alimenta os cartões do topo da tela de gestão.
type StatsResponse struct {
	Total             int64   `json:"total"`
	Ativos            int64   `json:"ativos"`
	Vencidos          int64   `json:"vencidos"`
	ProximoVencimento int64   `json:"proximo_vencimento"`
	QuantidadeTotal   float64 `json:"quantidade_total"`
}

// SinirRow é uma linha do relatório de exportação para o SINIR.
type SinirRow struct {
	MtrNumber       string  `json:"mtr_number"`
	ProjectName     string  `json:"project_name"`
	WasteType       string  `json:"waste_type"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	GeneratorCnpj   string  `json:"generator_cnpj"`
	TransporterCnpj string  `json:"transporter_cnpj"`
	ReceiverCnpj    string  `json:"receiver_cnpj"`
	IssueDate       string  `json:"issue_date"`
	DueDate         string  `json:"due_date"`
	Status          string  `json:"status"`
}
