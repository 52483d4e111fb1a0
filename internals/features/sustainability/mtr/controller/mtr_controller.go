package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"canteirocircular_backend/internals/features/sustainability/mtr/dto"
	"canteirocircular_backend/internals/features/sustainability/mtr/model"
	"canteirocircular_backend/internals/features/sustainability/mtr/service"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

var errDuplicateNumber = errors.New("número de MTR já utilizado")

type MtrController struct {
	DB *gorm.DB
}

func NewMtrController(db *gorm.DB) *MtrController {
	return &MtrController{DB: db}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// nextMtrNumber gera MTR-AAAA-NNN sequencial por ano, contando os
// manifestos já emitidos pelo usuário no ano corrente.
func (ctrl *MtrController) nextMtrNumber(tx *gorm.DB, userID uuid.UUID, now time.Time) (string, error) {
	var count int64
	prefix := fmt.Sprintf("MTR-%d-%%", now.Year())
	if err := tx.Model(&model.MtrRecord{}).
		Where("user_id = ? AND mtr_number LIKE ?", userID, prefix).
		Count(&count).Error; err != nil {
		return "", err
	}
	return service.NextNumber(now.Year(), count+1), nil
}

// 📩 Create emite um novo manifesto.
func (ctrl *MtrController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateMtrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos obrigatórios ausentes ou inválidos")
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data de emissão inválida (use AAAA-MM-DD)")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data de vencimento inválida (use AAAA-MM-DD)")
	}
	if dueDate.Before(issueDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Vencimento não pode ser anterior à emissão")
	}

	now := time.Now()
	var record model.MtrRecord
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		number := strings.TrimSpace(req.MtrNumber)
		if number == "" {
			generated, err := ctrl.nextMtrNumber(tx, userID, now)
			if err != nil {
				return err
			}
			number = generated
		} else {
			var dup int64
			if err := tx.Model(&model.MtrRecord{}).
				Where("user_id = ? AND mtr_number = ?", userID, number).
				Count(&dup).Error; err != nil {
				return err
			}
			if dup > 0 {
				return errDuplicateNumber
			}
		}
		record = model.MtrRecord{
			UserID:             userID,
			MtrNumber:          number,
			ProjectName:        req.ProjectName,
			WasteType:          req.WasteType,
			Quantity:           req.Quantity,
			Unit:               req.Unit,
			Description:        req.Description,
			GeneratorName:      req.GeneratorName,
			GeneratorCnpj:      req.GeneratorCnpj,
			GeneratorAddress:   req.GeneratorAddress,
			TransporterName:    req.TransporterName,
			TransporterCnpj:    req.TransporterCnpj,
			TransporterLicense: req.TransporterLicense,
			ReceiverName:       req.ReceiverName,
			ReceiverCnpj:       req.ReceiverCnpj,
			ReceiverLicense:    req.ReceiverLicense,
			IssueDate:          issueDate,
			DueDate:            dueDate,
			Status:             service.StoredStatus(dueDate, now),
			Location:           req.Location,
		}
		return tx.Create(&record).Error
	})
	if errors.Is(err, errDuplicateNumber) {
		return helper.JsonError(c, fiber.StatusConflict, "Número de MTR já utilizado")
	}
	if err != nil {
		log.Println("[ERROR] Falha ao emitir MTR:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao emitir manifesto")
	}

	return helper.JsonCreated(c, "Manifesto emitido com sucesso", dto.ToMtrResponse(record, now))
}

// 📋 List busca os manifestos do usuário com filtros combináveis.
// Filtros: search, status, waste_type, cnpj, issue_from/issue_to,
// due_from/due_to. Todos são aplicados em conjunto (AND).
func (ctrl *MtrController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("user_id = ?", userID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("mtr_number ILIKE ? OR project_name ILIKE ? OR waste_type ILIKE ?", like, like, like)
	}
	if wt := strings.TrimSpace(c.Query("waste_type")); wt != "" {
		q = q.Where("waste_type ILIKE ?", "%"+wt+"%")
	}
	if cnpj := strings.TrimSpace(c.Query("cnpj")); cnpj != "" {
		like := "%" + cnpj + "%"
		q = q.Where("generator_cnpj LIKE ? OR transporter_cnpj LIKE ? OR receiver_cnpj LIKE ?", like, like, like)
	}
	if from := c.Query("issue_from"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("issue_date >= ?", d)
		}
	}
	if to := c.Query("issue_to"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("issue_date <= ?", d)
		}
	}
	if from := c.Query("due_from"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("due_date >= ?", d)
		}
	}
	if to := c.Query("due_to"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("due_date <= ?", d)
		}
	}

	var records []model.MtrRecord
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifestos")
	}

	// filtro de status usa a classificação derivada, não o campo persistido
	now := time.Now()
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))
	out := make([]dto.MtrResponse, 0, len(records))
	for _, r := range records {
		resp := dto.ToMtrResponse(r, now)
		if status != "" && status != "all" && resp.Classification != status {
			continue
		}
		out = append(out, resp)
	}
	return helper.JsonList(c, "Manifestos", out, nil)
}

// 🔍 GetByID devolve um manifesto do usuário.
func (ctrl *MtrController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var record model.MtrRecord
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Manifesto não encontrado")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifesto")
	}
	return helper.JsonOK(c, "OK", dto.ToMtrResponse(record, time.Now()))
}

// ✏️ Update altera campos de um manifesto existente.
func (ctrl *MtrController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateMtrRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos inválidos")
	}

	var record model.MtrRecord
	err = ctrl.DB.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Manifesto não encontrado")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifesto")
	}

	if req.ProjectName != nil {
		record.ProjectName = *req.ProjectName
	}
	if req.WasteType != nil {
		record.WasteType = *req.WasteType
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		record.Unit = *req.Unit
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.GeneratorName != nil {
		record.GeneratorName = *req.GeneratorName
	}
	if req.GeneratorCnpj != nil {
		record.GeneratorCnpj = *req.GeneratorCnpj
	}
	if req.GeneratorAddress != nil {
		record.GeneratorAddress = *req.GeneratorAddress
	}
	if req.TransporterName != nil {
		record.TransporterName = *req.TransporterName
	}
	if req.TransporterCnpj != nil {
		record.TransporterCnpj = *req.TransporterCnpj
	}
	if req.TransporterLicense != nil {
		record.TransporterLicense = *req.TransporterLicense
	}
	if req.ReceiverName != nil {
		record.ReceiverName = *req.ReceiverName
	}
	if req.ReceiverCnpj != nil {
		record.ReceiverCnpj = *req.ReceiverCnpj
	}
	if req.ReceiverLicense != nil {
		record.ReceiverLicense = *req.ReceiverLicense
	}
	if req.IssueDate != nil {
		d, err := parseDate(*req.IssueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de emissão inválida (use AAAA-MM-DD)")
		}
		record.IssueDate = d
	}
	if req.DueDate != nil {
		d, err := parseDate(*req.DueDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data de vencimento inválida (use AAAA-MM-DD)")
		}
		record.DueDate = d
	}
	if req.Location != nil {
		record.Location = *req.Location
	}
	if record.DueDate.Before(record.IssueDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Vencimento não pode ser anterior à emissão")
	}

	now := time.Now()
	record.Status = service.StoredStatus(record.DueDate, now)

	if err := ctrl.DB.Save(&record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar manifesto")
	}
	return helper.JsonUpdated(c, "Manifesto atualizado", dto.ToMtrResponse(record, now))
}

// 🗑️ Delete remove um manifesto do usuário.
func (ctrl *MtrController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	res := ctrl.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.MtrRecord{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover manifesto")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Manifesto não encontrado")
	}
	return helper.JsonDeleted(c, "Manifesto removido", fiber.Map{"id": id})
}

// 📊 GetStats devolve os contadores dos cartões da tela de gestão.
func (ctrl *MtrController) GetStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var records []model.MtrRecord
	if err := ctrl.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifestos")
	}

	now := time.Now()
	stats := dto.StatsResponse{Total: int64(len(records))}
	for _, r := range records {
		stats.QuantidadeTotal += r.Quantity
		switch service.Classify(r.DueDate, now) {
		case service.ClassVencido:
			stats.Vencidos++
		case service.ClassProximoVencimento:
			stats.ProximoVencimento++
			stats.Ativos++ // próximo do vencimento ainda conta como ativo
		default:
			stats.Ativos++
		}
	}
	return helper.JsonOK(c, "Estatísticas de MTR", stats)
}

// 🚨 GetAlerts lista manifestos vencidos ou próximos do vencimento.
func (ctrl *MtrController) GetAlerts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var records []model.MtrRecord
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifestos")
	}

	now := time.Now()
	alerts := make([]dto.MtrResponse, 0)
	for _, r := range records {
		resp := dto.ToMtrResponse(r, now)
		if resp.Classification != service.ClassAtivo {
			alerts = append(alerts, resp)
		}
	}
	return helper.JsonList(c, "Alertas de vencimento", alerts, nil)
}

// 📤 ExportSinir devolve as linhas do relatório para envio ao SINIR.
func (ctrl *MtrController) ExportSinir(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var records []model.MtrRecord
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("issue_date ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar manifestos")
	}

	now := time.Now()
	rows := make([]dto.SinirRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, dto.SinirRow{
			MtrNumber:       r.MtrNumber,
			ProjectName:     r.ProjectName,
			WasteType:       r.WasteType,
			Quantity:        r.Quantity,
			Unit:            r.Unit,
			GeneratorCnpj:   r.GeneratorCnpj,
			TransporterCnpj: r.TransporterCnpj,
			ReceiverCnpj:    r.ReceiverCnpj,
			IssueDate:       r.IssueDate.Format("02/01/2006"),
			DueDate:         r.DueDate.Format("02/01/2006"),
			Status:          service.Classify(r.DueDate, now),
		})
	}
	return helper.JsonList(c, "Relatório SINIR", rows, nil)
}

// 🧹 Reset apaga todos os manifestos do usuário.
func (ctrl *MtrController) Reset(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("user_id = ?", userID).Delete(&model.MtrRecord{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao zerar manifestos")
	}
	return helper.JsonDeleted(c, "Manifestos removidos", fiber.Map{"removed": res.RowsAffected})
}
