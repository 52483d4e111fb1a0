package routes

import (
	"log"
	"time"

	auth "canteirocircular_backend/internals/middlewares/auth"
	routeDetails "canteirocircular_backend/internals/route/details"

	"canteirocircular_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Montando rotas públicas...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db)

	// ===================== PRIVADO (USER) =====================
	log.Println("[INFO] Montando rotas autenticadas...")
	private := app.Group("/api/u",
		auth.AuthJWT(auth.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.UserRoutes(private, db)

	log.Println("✅ Rotas montadas")
}
