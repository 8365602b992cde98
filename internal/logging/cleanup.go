package logging

import (
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/models"
	"gorm.io/gorm"
)

// StartCleanup deletes error_logs rows older than retention once a day
// until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pruneErrorLogs(db, time.Now().Add(-retention))
			case <-done:
				return
			}
		}
	}()
}

func pruneErrorLogs(db *gorm.DB, cutoff time.Time) int64 {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.ErrorLog{})
	if result.Error != nil {
		slog.Error("error log cleanup failed", "error", result.Error)
		return 0
	}
	if result.RowsAffected > 0 {
		slog.Info("error log cleanup completed", "deleted", result.RowsAffected)
	}
	return result.RowsAffected
}
