package controller

import (
	"errors"
	"log"

	"canteirocircular_backend/internals/constants"
	"canteirocircular_backend/internals/features/home/support/dto"
	"canteirocircular_backend/internals/features/home/support/model"
	"canteirocircular_backend/internals/features/home/support/service"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type SupportController struct {
	DB *gorm.DB
}

func NewSupportController(db *gorm.DB) *SupportController {
	return &SupportController{DB: db}
}

// ❓ GetFaq devolve a central de ajuda agrupada por categoria.
// Aceita ?search= para filtrar perguntas e respostas.
func (ctrl *SupportController) GetFaq(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Central de ajuda", service.GroupFaq(service.FaqEntries, c.Query("search")))
}

// 📩 CreateTicket abre um novo chamado de suporte.
func (ctrl *SupportController) CreateTicket(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Assunto, descrição e categoria são obrigatórios")
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.PriorityMedia
	}

	ticket := model.SupportTicket{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      constants.TicketAberto,
		Tags:        req.Tags,
	}
	if err := ctrl.DB.Create(&ticket).Error; err != nil {
		log.Println("[ERROR] Falha ao abrir chamado:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao abrir chamado")
	}
	return helper.JsonCreated(c, "Chamado aberto com sucesso", ticket)
}

// 📋 ListTickets lista os chamados do usuário, mais recentes primeiro.
func (ctrl *SupportController) ListTickets(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var tickets []model.SupportTicket
	if err := q.Order("created_at DESC").Find(&tickets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar chamados")
	}
	return helper.JsonList(c, "Chamados de suporte", tickets, nil)
}

// ✏️ UpdateTicketStatus muda o status de um chamado do usuário.
func (ctrl *SupportController) UpdateTicketStatus(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Status inválido (use aberto, em_andamento ou resolvido)")
	}

	var ticket model.SupportTicket
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Chamado não encontrado")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar chamado")
	}

	ticket.Status = req.Status
	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar chamado")
	}
	return helper.JsonUpdated(c, "Chamado atualizado", ticket)
}

// 🗑️ DeleteTicket remove um chamado do usuário.
func (ctrl *SupportController) DeleteTicket(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.SupportTicket{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover chamado")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chamado não encontrado")
	}
	return helper.JsonDeleted(c, "Chamado removido", fiber.Map{"id": id})
}

// 🧹 Reset apaga todos os chamados do usuário.
func (ctrl *SupportController) Reset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("user_id = ?", userID).Delete(&model.SupportTicket{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao zerar chamados")
	}
	return helper.JsonDeleted(c, "Chamados removidos", fiber.Map{"removed": res.RowsAffected})
}
