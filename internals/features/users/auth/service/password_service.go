package service

import (
	"canteirocircular_backend/internals/features/users/auth/dto"
	userModel "canteirocircular_backend/internals/features/users/user/model"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ChangePassword troca a senha do usuário autenticado após conferir a atual.
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if req.CurrentPassword == "" || len(req.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Nova senha precisa de pelo menos 8 caracteres")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar senha")
	}

	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar senha")
	}
	return helper.JsonUpdated(c, "Senha alterada com sucesso", nil)
}
