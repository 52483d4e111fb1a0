package route

import (
	"canteirocircular_backend/internals/features/users/profile/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProfileUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	profile := api.Group("/profile")
	profile.Get("/", ctrl.GetProfile)
	profile.Put("/", ctrl.UpdateProfile)
	profile.Get("/stats", ctrl.GetStats)
	profile.Delete("/account", ctrl.DeleteAccount)
}
