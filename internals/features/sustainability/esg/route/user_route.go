package route

import (
	"canteirocircular_backend/internals/features/sustainability/esg/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EsgUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEsgController(db)

	esg := api.Group("/esg")
	esg.Get("/panel", ctrl.GetPanel)
	esg.Post("/report", ctrl.CreateReport)
	esg.Post("/scores", ctrl.CreateScore)
	esg.Post("/distribution", ctrl.ReplaceDistribution)
	esg.Delete("/", ctrl.Reset)

	goals := esg.Group("/goals")
	goals.Get("/", ctrl.ListGoals)
	goals.Post("/", ctrl.CreateGoal)
	goals.Put("/:id", ctrl.UpdateGoal)
	goals.Delete("/:id", ctrl.DeleteGoal)
}
