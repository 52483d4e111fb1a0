package route

import (
	"canteirocircular_backend/internals/features/home/dashboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dash := api.Group("/dashboard")
	dash.Get("/metrics", ctrl.GetMetrics)
	dash.Get("/export", ctrl.Export)
}
