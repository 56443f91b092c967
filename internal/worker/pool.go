package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/worker/domain"
)

// spawnWorkerPool spawns N worker goroutines based on concurrency configuration
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop drains the events channel until the dispatcher closes it
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Debug("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for msg := range w.events {
		err := w.processEvent(ctx, msg.event)
		w.settle(workerName, msg, err)
	}

	w.logger.Debug("Worker goroutine stopping - events channel closed",
		slog.String("worker_name", workerName),
	)
}

// settle ACKs a processed event or NACKs it with a requeue decision
func (w *Worker) settle(workerName string, msg *eventMessage, err error) {
	eventID := msg.event.EventID

	if err == nil {
		if ackErr := msg.ack.Ack(msg.deliveryTag, false); ackErr != nil {
			w.logger.Error("Failed to ACK message",
				slog.String("worker_name", workerName),
				slog.String("event_id", eventID),
				slog.String("error", ackErr.Error()),
			)
		}
		return
	}

	requeue := shouldRequeue(err)
	w.logger.Error("Job event processing failed",
		slog.String("worker_name", workerName),
		slog.String("event_id", eventID),
		slog.Bool("requeue", requeue),
		slog.String("error", err.Error()),
	)

	if nackErr := msg.ack.Nack(msg.deliveryTag, false, requeue); nackErr != nil {
		w.logger.Error("Failed to NACK message",
			slog.String("worker_name", workerName),
			slog.String("event_id", eventID),
			slog.String("error", nackErr.Error()),
		)
	}
}

// shouldRequeue requeues only transient failures
func shouldRequeue(err error) bool {
	if errors.Is(err, domain.ErrInvalidEvent) {
		return false
	}

	var retryableErr *domain.RetryableError
	return errors.As(err, &retryableErr)
}
