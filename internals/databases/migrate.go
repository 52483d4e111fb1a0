package database

import (
	"log"

	finmodel "canteirocircular_backend/internals/features/finance/transactions/model"
	supportmodel "canteirocircular_backend/internals/features/home/support/model"
	esgmodel "canteirocircular_backend/internals/features/sustainability/esg/model"
	imcmodel "canteirocircular_backend/internals/features/sustainability/imc/model"
	mtrmodel "canteirocircular_backend/internals/features/sustainability/mtr/model"
	authmodel "canteirocircular_backend/internals/features/users/auth/model"
	consultingmodel "canteirocircular_backend/internals/features/users/consulting/model"
	profilemodel "canteirocircular_backend/internals/features/users/profile/model"
	usermodel "canteirocircular_backend/internals/features/users/user/model"
)

// Migrate cria/atualiza o esquema de todas as tabelas do produto.
func Migrate() {
	log.Println("🗄️ Executando migrações...")

	err := DB.AutoMigrate(
		&usermodel.UserModel{},
		&authmodel.RefreshToken{},
		&profilemodel.UserProfile{},
		&consultingmodel.ConsultingAppointment{},

		&imcmodel.SustainabilityMetric{},
		&esgmodel.EsgScore{},
		&esgmodel.WasteDistribution{},
		&esgmodel.EsgGoal{},
		&mtrmodel.MtrRecord{},

		&finmodel.FinancialTransaction{},
		&supportmodel.SupportTicket{},
	)
	if err != nil {
		log.Fatalf("❌ Falha nas migrações: %v", err)
	}

	log.Println("✅ Migrações concluídas")
}
