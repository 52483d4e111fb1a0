package details

import (
	supportRoute "canteirocircular_backend/internals/features/home/support/route"
	imcRoute "canteirocircular_backend/internals/features/sustainability/imc/route"
	authRoute "canteirocircular_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicRoutes monta tudo que não exige sessão: autenticação, a
// definição do questionário IMC e a central de ajuda.
func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
	imcRoute.ImcPublicRoutes(api, db)
	supportRoute.SupportPublicRoutes(api, db)
}
