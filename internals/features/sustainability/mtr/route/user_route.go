package route

import (
	"canteirocircular_backend/internals/features/sustainability/mtr/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MtrUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMtrController(db)

	mtr := api.Group("/mtr")
	mtr.Get("/", ctrl.List)
	mtr.Post("/", ctrl.Create)
	mtr.Get("/stats", ctrl.GetStats)
	mtr.Get("/alerts", ctrl.GetAlerts)
	mtr.Get("/export/sinir", ctrl.ExportSinir)
	mtr.Get("/:id", ctrl.GetByID)
	mtr.Put("/:id", ctrl.Update)
	mtr.Delete("/:id", ctrl.Delete)
	mtr.Delete("/", ctrl.Reset)
}
