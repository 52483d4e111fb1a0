package route

import (
	"canteirocircular_backend/internals/features/home/support/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SupportUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupportController(db)

	support := api.Group("/support")
	support.Get("/faq", ctrl.GetFaq)
	support.Get("/tickets", ctrl.ListTickets)
	support.Post("/tickets", ctrl.CreateTicket)
	support.Patch("/tickets/:id/status", ctrl.UpdateTicketStatus)
	support.Delete("/tickets/:id", ctrl.DeleteTicket)
	support.Delete("/tickets", ctrl.Reset)
}

// SupportPublicRoutes expõe a central de ajuda sem autenticação.
func SupportPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSupportController(db)
	api.Get("/support/faq", ctrl.GetFaq)
}
