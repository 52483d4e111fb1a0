package details

import (
	finRoute "canteirocircular_backend/internals/features/finance/transactions/route"
	dashboardRoute "canteirocircular_backend/internals/features/home/dashboard/route"
	supportRoute "canteirocircular_backend/internals/features/home/support/route"
	esgRoute "canteirocircular_backend/internals/features/sustainability/esg/route"
	imcRoute "canteirocircular_backend/internals/features/sustainability/imc/route"
	mtrRoute "canteirocircular_backend/internals/features/sustainability/mtr/route"
	authRoute "canteirocircular_backend/internals/features/users/auth/route"
	consultingRoute "canteirocircular_backend/internals/features/users/consulting/route"
	profileRoute "canteirocircular_backend/internals/features/users/profile/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes monta as rotas protegidas por JWT.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(api, db)
	profileRoute.ProfileUserRoutes(api, db)
	consultingRoute.ConsultingUserRoutes(api, db)

	imcRoute.ImcUserRoutes(api, db)
	esgRoute.EsgUserRoutes(api, db)
	mtrRoute.MtrUserRoutes(api, db)

	finRoute.FinanceUserRoutes(api, db)
	dashboardRoute.DashboardUserRoutes(api, db)
	supportRoute.SupportUserRoutes(api, db)
}
