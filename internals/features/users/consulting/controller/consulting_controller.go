package controller

import (
	"log"
	"time"

	"canteirocircular_backend/internals/features/users/consulting/dto"
	"canteirocircular_backend/internals/features/users/consulting/model"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type ConsultingController struct {
	DB *gorm.DB
}

func NewConsultingController(db *gorm.DB) *ConsultingController {
	return &ConsultingController{DB: db}
}

// parseData aceita data com ou sem hora.
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// 📅 Create agenda uma consultoria.
func (ctrl *ConsultingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nome, e-mail e data são obrigatórios")
	}

	data, err := parseData(req.Data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data inválida")
	}

	appt := model.ConsultingAppointment{
		UserID:     userID,
		Nome:       req.Nome,
		Email:      req.Email,
		Telefone:   req.Telefone,
		Data:       data,
		Observacao: req.Observacao,
	}
	if err := ctrl.DB.Create(&appt).Error; err != nil {
		log.Println("[ERROR] Falha ao agendar consultoria:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao agendar consultoria")
	}
	return helper.JsonCreated(c, "Consultoria agendada com sucesso", appt)
}

// 📋 List lista os agendamentos do usuário.
func (ctrl *ConsultingController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var appts []model.ConsultingAppointment
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("data ASC").
		Find(&appts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar agendamentos")
	}
	return helper.JsonList(c, "Consultorias agendadas", appts, nil)
}

// 🗑️ Delete cancela um agendamento.
func (ctrl *ConsultingController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ConsultingAppointment{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao cancelar agendamento")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Agendamento não encontrado")
	}
	return helper.JsonDeleted(c, "Agendamento cancelado", fiber.Map{"id": id})
}
