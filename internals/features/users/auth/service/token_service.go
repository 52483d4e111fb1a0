package service

import (
	"errors"
	"strings"
	"time"

	authModel "canteirocircular_backend/internals/features/users/auth/model"
	userModel "canteirocircular_backend/internals/features/users/user/model"
	helper "canteirocircular_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken troca um refresh token válido por um novo par de tokens
// (rotação: o token usado é revogado).
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	secret, err := getRefreshSecret()
	if err != nil {
		return err
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido ou expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// o token precisa existir no banco, ativo e dentro da validade
	hash := computeRefreshHash(raw, secret)
	var stored authModel.RefreshToken
	err = db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, nowUTC()).
		First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão expirada, faça login novamente")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao validar sessão")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	now := time.Now().UTC()
	if err := db.Model(&stored).Update("revoked_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao rotacionar sessão")
	}

	return issueTokens(db, c, &user, fiber.StatusOK, "Sessão renovada")
}
