package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/users/auth/service"
)

// StartTokenCleanupScheduler remove tokens vencidos a cada 24h.
func StartTokenCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Limpando tokens expirados...")
			service.CleanupExpiredTokens(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}
