package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskExpireSweep marks sent quotations past their validity date as expired.
	TaskExpireSweep = "quotation:expire_sweep"
	// ExpireSweepCron runs the sweep shortly after midnight UTC.
	ExpireSweepCron = "15 0 * * *"
)

// QuotationExpirer is the service-side contract the sweep depends on.
type QuotationExpirer interface {
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// NewExpireSweepTask constructs the sweep task. It carries no payload:
// the sweep always works against the current clock.
func NewExpireSweepTask() *asynq.Task {
	return asynq.NewTask(TaskExpireSweep, nil)
}

// NewExpireSweepHandler returns the asynq handler for TaskExpireSweep.
func NewExpireSweepHandler(logger *slog.Logger, expirer QuotationExpirer) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		expired, err := expirer.ExpireOverdue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("expire sweep failed", slog.Any("error", err))
			return err
		}
		if expired > 0 {
			logger.Info("expire sweep completed", slog.Int64("expired", expired))
		}
		return nil
	}
}
