package workers

import (
	"context"

	"enlistco_backend/internal/logger"
	"enlistco_backend/internal/models"
	"enlistco_backend/internal/services"
)

// AlertWorker drains approved posts off a queue and runs the seeker
// alert fan-out. Dispatch failures land in the log sink; they are
// never surfaced to the approval request.
type AlertWorker struct {
	jobs   chan models.JobPost
	alerts services.AlertService
}

func NewAlertWorker(alerts services.AlertService, buffer int) *AlertWorker {
	if buffer <= 0 {
		buffer = 64
	}
	return &AlertWorker{
		jobs:   make(chan models.JobPost, buffer),
		alerts: alerts,
	}
}

// Enqueue submits a post for alert fan-out without blocking the
// request path. When the queue is full the alert is dropped and
// logged.
func (w *AlertWorker) Enqueue(post models.JobPost) {
	select {
	case w.jobs <- post:
	default:
		logger.Error("alert queue full, job alert dropped", "post_id", post.ID)
	}
}

// Start runs the dispatch loop until the context is cancelled.
func (w *AlertWorker) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("alert worker stopped")
				return
			case post := <-w.jobs:
				if err := w.alerts.DispatchJobAlert(post); err != nil {
					logger.Error("job alert dispatch failed", "post_id", post.ID, "error", err)
				}
			}
		}
	}()
}
