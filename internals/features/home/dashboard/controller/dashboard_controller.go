package controller

import (
	"errors"
	"fmt"
	"time"

	"canteirocircular_backend/internals/features/home/dashboard/dto"
	"canteirocircular_backend/internals/features/home/dashboard/service"
	helper "canteirocircular_backend/internals/helpers"

	finmodel "canteirocircular_backend/internals/features/finance/transactions/model"
	finservice "canteirocircular_backend/internals/features/finance/transactions/service"
	esgmodel "canteirocircular_backend/internals/features/sustainability/esg/model"
	esgservice "canteirocircular_backend/internals/features/sustainability/esg/service"
	imcmodel "canteirocircular_backend/internals/features/sustainability/imc/model"
	mtrmodel "canteirocircular_backend/internals/features/sustainability/mtr/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// loadInputs carrega os dados de cada módulo para o compositor puro.
func (ctrl *DashboardController) loadInputs(userID uuid.UUID, period string, now time.Time) (service.Inputs, error) {
	var in service.Inputs

	from, to, err := service.PeriodRange(period, now)
	if err != nil {
		return in, err
	}

	var imcRows []imcmodel.SustainabilityMetric
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&imcRows).Error; err != nil {
		return in, err
	}
	for _, m := range imcRows {
		in.Imc = append(in.Imc, service.ImcEntry{TotalScore: m.TotalScore, CreatedAt: m.CreatedAt})
	}

	var esgRows []esgmodel.EsgScore
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&esgRows).Error; err != nil {
		return in, err
	}
	for _, r := range esgRows {
		in.Esg = append(in.Esg, esgservice.PillarEntry{
			Environmental: r.EnvironmentalScore,
			Social:        r.SocialScore,
			Governance:    r.GovernanceScore,
			CreatedAt:     r.CreatedAt,
		})
	}

	var mtrRows []mtrmodel.MtrRecord
	if err := ctrl.DB.Where("user_id = ?", userID).Find(&mtrRows).Error; err != nil {
		return in, err
	}
	for _, r := range mtrRows {
		in.MtrDueDates = append(in.MtrDueDates, r.DueDate)
	}

	var finRows []finmodel.FinancialTransaction
	if err := ctrl.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&finRows).Error; err != nil {
		return in, err
	}
	for _, r := range finRows {
		in.Financial = append(in.Financial, finservice.Entry{
			ID:       r.ID,
			Project:  r.Project,
			Category: r.Category,
			Type:     r.Type,
			Amount:   r.Amount,
			Date:     r.Date,
		})
	}

	return in, nil
}

func (ctrl *DashboardController) buildMetrics(userID uuid.UUID, period string, now time.Time) (dto.MetricsResponse, error) {
	in, err := ctrl.loadInputs(userID, period, now)
	if err != nil {
		return dto.MetricsResponse{}, err
	}
	return service.Compose(in, period, now)
}

// 📊 GetMetrics consolida os indicadores do dashboard para o período
// informado (?period=atual|anterior|Nmeses).
func (ctrl *DashboardController) GetMetrics(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	metrics, err := ctrl.buildMetrics(userID, c.Query("period"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrPeriodoInvalido) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Período inválido (use atual, anterior ou Nmeses)")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}
	return helper.JsonOK(c, "Indicadores do dashboard", metrics)
}

// 📤 Export devolve o relatório do dashboard em linhas rotuladas,
// prontas para planilha ou PDF no cliente.
func (ctrl *DashboardController) Export(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	metrics, err := ctrl.buildMetrics(userID, c.Query("period"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrPeriodoInvalido) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Período inválido (use atual, anterior ou Nmeses)")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao exportar o dashboard")
	}

	rows := []service.ExportRow{
		{Label: "Período", Value: metrics.Period},
		{Label: "Score IMC", Value: fmt.Sprintf("%d", metrics.Imc.Latest)},
		{Label: "Média IMC", Value: fmt.Sprintf("%d", metrics.Imc.Average)},
		{Label: "Nível de maturidade", Value: metrics.Imc.MaturityLevel},
		{Label: "Score ESG", Value: fmt.Sprintf("%d", metrics.Esg.Score)},
		{Label: "Média ESG", Value: fmt.Sprintf("%d", metrics.Esg.Average)},
		{Label: "Variação ESG", Value: fmt.Sprintf("%+d", metrics.Esg.Delta)},
		{Label: "MTRs ativos", Value: fmt.Sprintf("%d", metrics.Mtr.Ativos)},
		{Label: "MTRs vencidos", Value: fmt.Sprintf("%d", metrics.Mtr.Vencidos)},
		{Label: "Receitas do período", Value: fmt.Sprintf("R$ %.2f", metrics.Financial.Totals.Income)},
		{Label: "Despesas do período", Value: fmt.Sprintf("R$ %.2f", metrics.Financial.Totals.Expense)},
		{Label: "Saldo do período", Value: fmt.Sprintf("R$ %.2f", metrics.Financial.Totals.Balance)},
	}
	return helper.JsonList(c, "Relatório do dashboard", rows, nil)
}
