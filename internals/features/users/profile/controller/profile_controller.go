package controller

import (
	"errors"
	"log"

	finmodel "canteirocircular_backend/internals/features/finance/transactions/model"
	supportmodel "canteirocircular_backend/internals/features/home/support/model"
	esgmodel "canteirocircular_backend/internals/features/sustainability/esg/model"
	imcmodel "canteirocircular_backend/internals/features/sustainability/imc/model"
	mtrmodel "canteirocircular_backend/internals/features/sustainability/mtr/model"
	authmodel "canteirocircular_backend/internals/features/users/auth/model"
	consultingmodel "canteirocircular_backend/internals/features/users/consulting/model"
	"canteirocircular_backend/internals/features/users/profile/dto"
	"canteirocircular_backend/internals/features/users/profile/model"
	usermodel "canteirocircular_backend/internals/features/users/user/model"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var validate = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 👤 GetProfile devolve o perfil do usuário, criando um vazio se ainda
// não existir.
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile model.UserProfile
	err = ctrl.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID, NotificationPrefs: pq.StringArray{}}
		if err := ctrl.DB.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar perfil")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar perfil")
	}

	return helper.JsonOK(c, "OK", profile)
}

// ✏️ UpdateProfile atualiza os campos enviados do perfil.
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Campos inválidos")
	}

	var profile model.UserProfile
	err = ctrl.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.UserProfile{UserID: userID}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar perfil")
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.NotificationPrefs != nil {
		profile.NotificationPrefs = pq.StringArray(*req.NotificationPrefs)
	}

	if err := ctrl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar perfil")
	}
	return helper.JsonUpdated(c, "Perfil atualizado", profile)
}

// 📊 GetStats devolve os contadores de atividade da conta.
func (ctrl *ProfileController) GetStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var stats dto.AccountStats
	counts := []struct {
		model any
		dst   *int64
	}{
		{&imcmodel.SustainabilityMetric{}, &stats.Assessments},
		{&mtrmodel.MtrRecord{}, &stats.MtrRecords},
		{&finmodel.FinancialTransaction{}, &stats.Transactions},
		{&esgmodel.EsgScore{}, &stats.EsgEntries},
		{&supportmodel.SupportTicket{}, &stats.Tickets},
	}
	for _, cnt := range counts {
		if err := ctrl.DB.Model(cnt.model).Where("user_id = ?", userID).Count(cnt.dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao calcular estatísticas")
		}
	}
	return helper.JsonOK(c, "Estatísticas da conta", stats)
}

// 🗑️ DeleteAccount apaga o usuário e todos os seus dados, em transação.
func (ctrl *ProfileController) DeleteAccount(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&imcmodel.SustainabilityMetric{},
			&mtrmodel.MtrRecord{},
			&finmodel.FinancialTransaction{},
			&esgmodel.EsgScore{},
			&esgmodel.WasteDistribution{},
			&esgmodel.EsgGoal{},
			&supportmodel.SupportTicket{},
			&consultingmodel.ConsultingAppointment{},
			&authmodel.RefreshToken{},
			&model.UserProfile{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&usermodel.UserModel{}, "id = ?", userID).Error
	})
	if err != nil {
		log.Println("[ERROR] Falha ao excluir conta:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao excluir conta")
	}

	return helper.JsonDeleted(c, "Conta excluída com sucesso", nil)
}
