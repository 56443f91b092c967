package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/worker/domain"
)

// processEvent records a single event under the per-event timeout
func (w *Worker) processEvent(ctx context.Context, event *domain.JobEvent) error {
	if w.eventTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.eventTimeout)
		defer cancel()
	}

	inserted, err := w.store.RecordEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to record event %s: %w", event.EventID, err)
	}

	w.logger.Info("Job event processed",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.Int("job_id", event.JobID),
		slog.Bool("duplicate", !inserted),
	)

	return nil
}
