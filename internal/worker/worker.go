package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/cuongbtq/jobs-api/internal/worker/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventConsumer yields deliveries from the job events queue
type EventConsumer interface {
	Consume(consumerTag string) (<-chan amqp.Delivery, error)
}

// EventStore persists consumed job events
type EventStore interface {
	RecordEvent(ctx context.Context, event *domain.JobEvent) (bool, error)
}

// Config holds worker configuration
type Config struct {
	Logger       *slog.Logger
	Consumer     EventConsumer
	Store        EventStore
	Concurrency  int
	EventTimeout time.Duration
}

// eventMessage pairs a decoded event with the handle used to settle it
type eventMessage struct {
	event       *domain.JobEvent
	deliveryTag uint64
	ack         amqp.Acknowledger
}

// Worker consumes job change events and records them
type Worker struct {
	logger       *slog.Logger
	consumer     EventConsumer
	store        EventStore
	concurrency  int
	eventTimeout time.Duration
	workerID     string
	events       chan *eventMessage
	wg           sync.WaitGroup
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:       cfg.Logger,
		consumer:     cfg.Consumer,
		store:        cfg.Store,
		concurrency:  max(cfg.Concurrency, 1),
		eventTimeout: cfg.EventTimeout,
		workerID:     newWorkerID(),
		events:       make(chan *eventMessage),
	}
}

func newWorkerID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "worker"
	}
	return fmt.Sprintf("%s-%s", host, uuid.New().String()[:8])
}

// Start consumes until ctx is cancelled or the delivery channel closes, then
// waits for in-flight events to finish.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("event_timeout", w.eventTimeout),
	)

	deliveries, err := w.consumer.Consume(w.workerID)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	// In-flight events finish under their own timeout after shutdown begins
	w.spawnWorkerPool(context.WithoutCancel(ctx))

	w.dispatch(ctx, deliveries)

	close(w.events)
	w.wg.Wait()

	w.logger.Info("Worker stopped", slog.String("worker_id", w.workerID))
	return nil
}
