package cron

import (
	"time"

	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"go.uber.org/zap"
)

// StartCleanupTask purges old audit logs once at boot and then daily.
func StartCleanupTask(auditService *application.AuditService, retentionDays int) {
	logger.Log.Info("Starting audit log cleanup task", zap.Int("retention_days", retentionDays))
	every(24*time.Hour, true, func() {
		purged, err := auditService.Purge(retentionDays)
		if err != nil {
			logger.Log.Error("Failed to cleanup old audit logs", zap.Error(err))
			return
		}
		logger.Log.Info("Audit log cleanup completed", zap.Int64("purged", purged))
	})
}

// StartReconcileTask periodically removes references to deleted forms from
// owner arrays.
func StartReconcileTask(linker *application.FormLinker, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	logger.Log.Info("Starting form reference reconcile task", zap.Duration("interval", interval))
	every(interval, false, func() {
		pruned, err := linker.Reconcile()
		if err != nil {
			logger.Log.Error("Form reference reconcile failed", zap.Error(err))
			return
		}
		if pruned > 0 {
			logger.Log.Warn("Pruned dangling form references", zap.Int64("owners", pruned))
		}
	})
}

func every(interval time.Duration, runNow bool, task func()) {
	go func() {
		if runNow {
			task()
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			task()
		}
	}()
}
