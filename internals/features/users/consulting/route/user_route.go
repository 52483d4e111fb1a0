package route

import (
	"canteirocircular_backend/internals/features/users/consulting/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ConsultingUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConsultingController(db)

	consulting := api.Group("/consulting")
	consulting.Get("/", ctrl.List)
	consulting.Post("/", ctrl.Create)
	consulting.Delete("/:id", ctrl.Delete)
}
