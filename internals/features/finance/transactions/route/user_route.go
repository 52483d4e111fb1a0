package route

import (
	"canteirocircular_backend/internals/features/finance/transactions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FinanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransactionController(db)

	fin := api.Group("/financial")
	fin.Get("/transactions", ctrl.List)
	fin.Post("/transactions", ctrl.Create)
	fin.Put("/transactions/:id", ctrl.Update)
	fin.Delete("/transactions/:id", ctrl.Delete)
	fin.Delete("/transactions", ctrl.Reset)
	fin.Get("/summary", ctrl.GetSummary)
	fin.Get("/by-category", ctrl.GetByCategory)
	fin.Get("/monthly-trend", ctrl.GetMonthlyTrend)
}
