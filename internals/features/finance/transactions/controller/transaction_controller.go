package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"canteirocircular_backend/internals/features/finance/transactions/dto"
	"canteirocircular_backend/internals/features/finance/transactions/model"
	"canteirocircular_backend/internals/features/finance/transactions/service"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

func (ctrl *TransactionController) loadEntries(userID uuid.UUID) ([]model.FinancialTransaction, []service.Entry, error) {
	var rows []model.FinancialTransaction
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	entries := make([]service.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, service.Entry{
			ID:          r.ID,
			Description: r.Description,
			Project:     r.Project,
			Category:    r.Category,
			Type:        r.Type,
			Amount:      r.Amount,
			Date:        r.Date,
		})
	}
	return rows, entries, nil
}

// filterFromQuery monta o filtro combinável a partir da query string.
func filterFromQuery(c *fiber.Ctx) service.Filter {
	f := service.Filter{
		Type:     strings.TrimSpace(c.Query("type")),
		Category: strings.TrimSpace(c.Query("category")),
		Project:  strings.TrimSpace(c.Query("project")),
		Period:   strings.TrimSpace(c.Query("period")),
	}
	if v := c.Query("min_amount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinAmount = &amt
		}
	}
	if v := c.Query("max_amount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxAmount = &amt
		}
	}
	return f
}

// 📩 Create registra uma transação financeira.
func (ctrl *TransactionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos inválidos: descrição, categoria, tipo (income/expense) e valor não negativo são obrigatórios")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use AAAA-MM-DD)")
	}

	txn := model.FinancialTransaction{
		UserID:      userID,
		Description: req.Description,
		Project:     req.Project,
		Category:    req.Category,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        date,
		Observacao:  req.Observacao,
	}
	if err := ctrl.DB.Create(&txn).Error; err != nil {
		log.Println("[ERROR] Falha ao salvar transação:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar transação")
	}
	return helper.JsonCreated(c, "Transação registrada", txn)
}

// 📋 List devolve as transações filtradas mais os totais do recorte.
func (ctrl *TransactionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rows, entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar transações")
	}

	filter := filterFromQuery(c)
	now := time.Now()
	filtered := service.Apply(entries, filter, now)

	keptIDs := make(map[uuid.UUID]struct{}, len(filtered))
	for _, e := range filtered {
		keptIDs[e.ID] = struct{}{}
	}
	kept := make([]model.FinancialTransaction, 0, len(filtered))
	for _, r := range rows {
		if _, ok := keptIDs[r.ID]; ok {
			kept = append(kept, r)
		}
	}

	return helper.JsonOK(c, "Transações", fiber.Map{
		"transactions": kept,
		"totals":       service.Summarize(filtered),
	})
}

// ✏️ Update altera uma transação do usuário.
func (ctrl *TransactionController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos inválidos")
	}

	var txn model.FinancialTransaction
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&txn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Transação não encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar transação")
	}

	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Project != nil {
		txn.Project = *req.Project
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida (use AAAA-MM-DD)")
		}
		txn.Date = d
	}
	if req.Observacao != nil {
		txn.Observacao = *req.Observacao
	}

	if err := ctrl.DB.Save(&txn).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar transação")
	}
	return helper.JsonUpdated(c, "Transação atualizada", txn)
}

// 🗑️ Delete remove uma transação do usuário.
func (ctrl *TransactionController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.FinancialTransaction{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover transação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transação não encontrada")
	}
	return helper.JsonDeleted(c, "Transação removida", fiber.Map{"id": id})
}

// 📊 GetSummary devolve os totais do recorte filtrado.
func (ctrl *TransactionController) GetSummary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	_, entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar transações")
	}

	filtered := service.Apply(entries, filterFromQuery(c), time.Now())
	return helper.JsonOK(c, "Resumo financeiro", service.Summarize(filtered))
}

// 🥧 GetByCategory devolve a distribuição das despesas por categoria.
func (ctrl *TransactionController) GetByCategory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	_, entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar transações")
	}

	filtered := service.Apply(entries, filterFromQuery(c), time.Now())
	return helper.JsonList(c, "Despesas por categoria", service.ByCategory(filtered), nil)
}

// 📈 GetMonthlyTrend devolve a evolução mensal de entradas e saídas.
func (ctrl *TransactionController) GetMonthlyTrend(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	_, entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar transações")
	}

	filtered := service.Apply(entries, filterFromQuery(c), time.Now())
	return helper.JsonList(c, "Evolução mensal", service.MonthlyTrend(filtered), nil)
}

// 🧹 Reset apaga todas as transações do usuário.
func (ctrl *TransactionController) Reset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("user_id = ?", userID).Delete(&model.FinancialTransaction{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao zerar transações")
	}
	return helper.JsonDeleted(c, "Transações removidas", fiber.Map{"removed": res.RowsAffected})
}
