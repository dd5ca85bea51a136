package app

import (
	"context"
	"time"

	"github.com/noteflow/core/internal/models"
	pkgcron "github.com/noteflow/core/internal/pkg/cron"
	"go.uber.org/zap"
)

func (a *App) registerCronJobs() {
	a.sched.Register(pkgcron.Job{
		Name:        "collab_reaper",
		Description: "Mark expired and idle collaboration grants as ended",
		Interval:    10 * time.Minute,
		Fn: func(ctx context.Context) error {
			n, err := a.collabSvc.EndStale(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				a.logger.Info("collab reaper swept grants", zap.Int64("ended", n))
			}
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "session_cleanup",
		Description: "Delete expired and revoked user sessions",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			res := a.db.WithContext(ctx).
				Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now().Add(-24*time.Hour)).
				Delete(&models.UserSession{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				a.logger.Info("session cleanup", zap.Int64("deleted", res.RowsAffected))
			}
			return nil
		},
	})
}
