package route

import (
	"canteirocircular_backend/internals/features/sustainability/imc/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ImcUserRoutes registra as rotas da calculadora IMC (todas autenticadas,
// exceto a definição do questionário que também é montada no grupo público).
func ImcUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)

	imc := api.Group("/imc")
	imc.Get("/questions", ctrl.GetQuestions)
	imc.Post("/assessments", ctrl.SubmitAssessment)
	imc.Get("/assessments/latest", ctrl.GetLatest)
	imc.Get("/assessments/history", ctrl.GetHistory)
	imc.Get("/assessments/export", ctrl.Export)
	imc.Get("/assessments/:id", ctrl.GetByID)
	imc.Delete("/assessments/:id", ctrl.Delete)
	imc.Delete("/assessments", ctrl.Reset)
}

// ImcPublicRoutes expõe a definição do questionário sem autenticação.
func ImcPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)
	api.Get("/imc/questions", ctrl.GetQuestions)
}
