package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"canteirocircular_backend/internals/constants"
	"canteirocircular_backend/internals/features/sustainability/esg/dto"
	"canteirocircular_backend/internals/features/sustainability/esg/model"
	"canteirocircular_backend/internals/features/sustainability/esg/service"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type EsgController struct {
	DB *gorm.DB
}

func NewEsgController(db *gorm.DB) *EsgController {
	return &EsgController{DB: db}
}

func (ctrl *EsgController) loadEntries(userID uuid.UUID) ([]service.PillarEntry, error) {
	var rows []model.EsgScore
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]service.PillarEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, service.PillarEntry{
			Environmental: r.EnvironmentalScore,
			Social:        r.SocialScore,
			Governance:    r.GovernanceScore,
			CreatedAt:     r.CreatedAt,
		})
	}
	return entries, nil
}

func (ctrl *EsgController) loadSnapshot(userID uuid.UUID) (service.Snapshot, error) {
	entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return service.Snapshot{}, err
	}
	return service.Summarize(entries), nil
}

// applyWindow recorta o histórico conforme ?last_n ou ?start/?end.
func applyWindow(c *fiber.Ctx, entries []service.PillarEntry) ([]service.PillarEntry, error) {
	if n, err := strconv.Atoi(c.Query("last_n")); err == nil {
		return service.LastN(entries, n), nil
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" && endStr == "" {
		return entries, nil
	}

	start := time.Time{}
	end := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
	if startStr != "" {
		d, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, service.ErrIntervaloInvalido
		}
		start = d
	}
	if endStr != "" {
		d, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, service.ErrIntervaloInvalido
		}
		end = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return service.InRange(entries, start, end)
}

// 📊 GetPanel consolida pontuações, distribuição de resíduos e metas.
// Aceita ?last_n=N ou ?start=YYYY-MM-DD&end=YYYY-MM-DD para recortar
// o histórico.
func (ctrl *EsgController) GetPanel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	entries, err := ctrl.loadEntries(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar pontuações ESG")
	}
	entries, err = applyWindow(c, entries)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Intervalo de datas inválido")
	}

	snap := service.Summarize(entries)
	history := make([]dto.HistoryPoint, 0, len(entries))
	for _, e := range entries {
		history = append(history, dto.HistoryPoint{
			Date:          e.CreatedAt.Format("02/01/2006"),
			Environmental: e.Environmental,
			Social:        e.Social,
			Governance:    e.Governance,
		})
	}

	var distRows []model.WasteDistribution
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&distRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar distribuição de resíduos")
	}
	items := make([]service.DistributionItem, 0, len(distRows))
	for _, r := range distRows {
		items = append(items, service.DistributionItem{
			WasteType:  r.WasteType,
			Percentage: r.Percentage,
			CreatedAt:  r.CreatedAt,
		})
	}

	var goals []model.EsgGoal
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar metas ESG")
	}

	return helper.JsonOK(c, "Painel ESG", dto.PanelResponse{
		Snapshot:     snap,
		History:      history,
		Distribution: service.CurrentDistribution(items),
		Goals:        goals,
	})
}

// 📝 CreateReport registra pontuação e distribuição em uma transação.
// A distribuição anterior é descartada quando o payload traz fatias.
func (ctrl *EsgController) CreateReport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Pontuações e fatias devem estar entre 0 e 100")
	}

	now := time.Now()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		score := model.EsgScore{
			UserID:             userID,
			EnvironmentalScore: req.EnvironmentalScore,
			SocialScore:        req.SocialScore,
			GovernanceScore:    req.GovernanceScore,
		}
		if err := tx.Create(&score).Error; err != nil {
			return err
		}
		if len(req.Waste) == 0 {
			return nil
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.WasteDistribution{}).Error; err != nil {
			return err
		}
		rows := make([]model.WasteDistribution, 0, len(req.Waste))
		for _, it := range req.Waste {
			rows = append(rows, model.WasteDistribution{
				UserID:     userID,
				WasteType:  it.WasteType,
				Percentage: it.Percentage,
				CreatedAt:  now,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Println("[ERROR] Falha ao salvar relatório ESG:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar relatório ESG")
	}

	snap, err := ctrl.loadSnapshot(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recalcular painel")
	}
	return helper.JsonCreated(c, "Relatório ESG registrado", snap)
}

// 📩 CreateScore registra um novo lançamento de pontuação ESG.
func (ctrl *EsgController) CreateScore(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Pontuações devem estar entre 0 e 100")
	}

	score := model.EsgScore{
		UserID:             userID,
		EnvironmentalScore: req.EnvironmentalScore,
		SocialScore:        req.SocialScore,
		GovernanceScore:    req.GovernanceScore,
	}
	if err := ctrl.DB.Create(&score).Error; err != nil {
		log.Println("[ERROR] Falha ao salvar pontuação ESG:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar pontuação ESG")
	}

	snap, err := ctrl.loadSnapshot(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao recalcular painel")
	}
	return helper.JsonCreated(c, "Pontuação ESG registrada", snap)
}

// 🥧 ReplaceDistribution substitui a distribuição de resíduos do usuário.
// As fatias anteriores são descartadas e as novas recebem o mesmo
// created_at para formar um conjunto.
func (ctrl *EsgController) ReplaceDistribution(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateDistributionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Fatias inválidas (tipo obrigatório, percentual 0-100)")
	}

	now := time.Now()
	rows := make([]model.WasteDistribution, 0, len(req.Items))
	for _, it := range req.Items {
		rows = append(rows, model.WasteDistribution{
			UserID:     userID,
			WasteType:  it.WasteType,
			Percentage: it.Percentage,
			CreatedAt:  now,
		})
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.WasteDistribution{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Println("[ERROR] Falha ao salvar distribuição de resíduos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar distribuição")
	}
	return helper.JsonCreated(c, "Distribuição de resíduos registrada", fiber.Map{"count": len(rows)})
}

/* ===================== METAS ===================== */

// 🎯 CreateGoal cadastra uma nova meta ESG.
func (ctrl *EsgController) CreateGoal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Meta inválida: título obrigatório e alvos entre 0 e 100")
	}

	goal := model.EsgGoal{
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		Progress:            0,
		Status:              constants.GoalEmAndamento,
		TargetEnvironmental: req.TargetEnvironmental,
		TargetSocial:        req.TargetSocial,
		TargetGovernance:    req.TargetGovernance,
		TargetDate:          req.TargetDate,
	}
	if err := ctrl.DB.Create(&goal).Error; err != nil {
		log.Println("[ERROR] Falha ao salvar meta ESG:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar meta")
	}
	return helper.JsonCreated(c, "Meta ESG criada", goal)
}

// 📋 ListGoals lista as metas do usuário, mais recentes primeiro.
func (ctrl *EsgController) ListGoals(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var goals []model.EsgGoal
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar metas")
	}
	return helper.JsonList(c, "Metas ESG", goals, nil)
}

// ✏️ UpdateGoal atualiza campos da meta (progresso, status, alvos...).
func (ctrl *EsgController) UpdateGoal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos inválidos")
	}

	var goal model.EsgGoal
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Meta não encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar meta")
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
		if goal.Progress >= 100 {
			goal.Status = constants.GoalConcluida
		}
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.TargetEnvironmental != nil {
		goal.TargetEnvironmental = *req.TargetEnvironmental
	}
	if req.TargetSocial != nil {
		goal.TargetSocial = *req.TargetSocial
	}
	if req.TargetGovernance != nil {
		goal.TargetGovernance = *req.TargetGovernance
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}

	if err := ctrl.DB.Save(&goal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar meta")
	}
	return helper.JsonUpdated(c, "Meta ESG atualizada", goal)
}

// 🗑️ DeleteGoal remove uma meta do usuário.
func (ctrl *EsgController) DeleteGoal(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.EsgGoal{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover meta")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Meta não encontrada")
	}
	return helper.JsonDeleted(c, "Meta ESG removida", fiber.Map{"id": id})
}

// 🧹 Reset apaga pontuações, distribuição e metas ESG do usuário.
func (ctrl *EsgController) Reset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.EsgScore{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.WasteDistribution{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.EsgGoal{}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao zerar dados ESG")
	}
	return helper.JsonDeleted(c, "Dados ESG removidos", nil)
}
