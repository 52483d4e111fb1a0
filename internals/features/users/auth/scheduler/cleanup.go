package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"canteirocircular_backend/internals/features/users/auth/model"

	"gorm.io/gorm"
)

// StartRefreshTokenCleanupScheduler remove refresh tokens vencidos ou
// revogados há mais tempo que o TTL. Roda a cada 24h em goroutine.
func StartRefreshTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 30
		if val := os.Getenv("REFRESH_TOKEN_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Limpando refresh_tokens expirados...")

			cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
			res := db.
				Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", time.Now(), cutoff).
				Delete(&model.RefreshToken{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Falha ao limpar refresh tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d refresh tokens removidos", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
