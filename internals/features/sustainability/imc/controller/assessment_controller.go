package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"canteirocircular_backend/internals/features/sustainability/imc/dto"
	"canteirocircular_backend/internals/features/sustainability/imc/model"
	"canteirocircular_backend/internals/features/sustainability/imc/service"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

// 📋 GetQuestions devolve a definição estática do questionário IMC.
func (ctrl *AssessmentController) GetQuestions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Questionário IMC", service.QuestionGroups)
}

// 📩 SubmitAssessment calcula e grava uma nova avaliação IMC do usuário.
func (ctrl *AssessmentController) SubmitAssessment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if len(req.Answers) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nenhuma resposta enviada")
	}

	result, err := service.Score(req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrRespostaFaltando) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	answersJSON, err := sonic.Marshal(req.Answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao serializar respostas")
	}
	scoresJSON, err := sonic.Marshal(result.CategoryScores)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao serializar pontuações")
	}

	metric := model.SustainabilityMetric{
		UserID:             userID,
		TotalScore:         result.TotalScore,
		EnvironmentalScore: result.EnvironmentalScore,
		SocialScore:        result.SocialScore,
		GovernanceScore:    result.GovernanceScore,
		MaterialsScore:     result.MaterialsScore,
		EnergyScore:        result.EnergyScore,
		DesignScore:        result.DesignScore,
		WasteScore:         result.WasteScore,
		WaterScore:         result.WaterScore,
		Answers:            answersJSON,
		CategoryScores:     scoresJSON,
	}

	if err := ctrl.DB.Create(&metric).Error; err != nil {
		log.Println("[ERROR] Falha ao salvar avaliação IMC:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar avaliação")
	}

	resp := dto.ToAssessmentResponse(&metric)
	resp.CategoryScores = result.CategoryScores
	return helper.JsonCreated(c, "Avaliação IMC registrada com sucesso", resp)
}

// 📊 GetLatest devolve a avaliação mais recente do usuário (ou data vazio).
func (ctrl *AssessmentController) GetLatest(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var metric model.SustainabilityMetric
	err = ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "Nenhuma avaliação encontrada", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}

	return helper.JsonOK(c, "OK", dto.ToAssessmentResponse(&metric))
}

// 📈 GetHistory lista as avaliações do usuário em ordem cronológica.
// Aceita ?from=YYYY-MM-DD e ?to=YYYY-MM-DD (granularidade de dia).
func (ctrl *AssessmentController) GetHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("user_id = ?", userID)
	if from := c.Query("from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data inicial inválida (use YYYY-MM-DD)")
		}
		q = q.Where("created_at >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data final inválida (use YYYY-MM-DD)")
		}
		q = q.Where("created_at < ?", d.AddDate(0, 0, 1))
	}

	var metrics []model.SustainabilityMetric
	if err := q.Order("created_at ASC").Find(&metrics).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar histórico")
	}

	points := make([]dto.HistoryPoint, 0, len(metrics))
	for _, m := range metrics {
		points = append(points, dto.HistoryPoint{
			Date:               m.CreatedAt.Format("02/01/2006"),
			TotalScore:         m.TotalScore,
			EnvironmentalScore: m.EnvironmentalScore,
			GovernanceScore:    m.GovernanceScore,
		})
	}
	return helper.JsonList(c, "Histórico de avaliações", points, nil)
}

// 🔍 GetByID devolve uma avaliação específica, incluindo as respostas.
func (ctrl *AssessmentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var metric model.SustainabilityMetric
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}

	resp := dto.ToAssessmentResponse(&metric)
	if len(metric.Answers) > 0 {
		_ = sonic.Unmarshal(metric.Answers, &resp.Answers)
	}
	if len(metric.CategoryScores) > 0 {
		_ = sonic.Unmarshal(metric.CategoryScores, &resp.CategoryScores)
	}
	return helper.JsonOK(c, "OK", resp)
}

// 📤 Export devolve a avaliação mais recente como linhas rótulo/valor,
// prontas para planilha.
func (ctrl *AssessmentController) Export(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var metric model.SustainabilityMetric
	err = ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Nenhuma avaliação para exportar")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar avaliação")
	}

	rows := []dto.ExportRow{
		{Label: "Data da Avaliação", Value: metric.CreatedAt.Format("02/01/2006")},
		{Label: "Score Total", Value: strconv.Itoa(metric.TotalScore)},
		{Label: "Nível de Maturidade", Value: service.MaturityLevel(metric.TotalScore)},
		{Label: "Score Ambiental", Value: strconv.Itoa(metric.EnvironmentalScore)},
		{Label: "Score Social", Value: strconv.Itoa(metric.SocialScore)},
		{Label: "Governança", Value: strconv.Itoa(metric.GovernanceScore)},
		{Label: "Materiais", Value: strconv.Itoa(metric.MaterialsScore)},
		{Label: "Energia", Value: strconv.Itoa(metric.EnergyScore)},
		{Label: "Design Circular", Value: strconv.Itoa(metric.DesignScore)},
		{Label: "Resíduos", Value: strconv.Itoa(metric.WasteScore)},
		{Label: "Água", Value: strconv.Itoa(metric.WaterScore)},
	}
	return helper.JsonOK(c, "Exportação da avaliação", rows)
}

// 🗑️ Delete remove uma avaliação específica do usuário.
func (ctrl *AssessmentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.SustainabilityMetric{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover avaliação")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Avaliação não encontrada")
	}
	return helper.JsonDeleted(c, "Avaliação IMC removida", fiber.Map{"id": id})
}

// 🧹 Reset apaga todas as avaliações IMC do usuário.
func (ctrl *AssessmentController) Reset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("user_id = ?", userID).Delete(&model.SustainabilityMetric{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao zerar avaliações")
	}
	return helper.JsonDeleted(c, "Avaliações IMC removidas", fiber.Map{"removed": res.RowsAffected})
}
