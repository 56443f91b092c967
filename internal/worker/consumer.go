package worker

import (
	"context"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/worker/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// dispatch decodes deliveries and hands valid events to the worker pool
func (w *Worker) dispatch(ctx context.Context, deliveries <-chan amqp.Delivery) {
	w.logger.Info("Message dispatcher started",
		slog.String("worker_id", w.workerID),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Message dispatcher stopped - context canceled")
			return

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return
			}

			event, err := domain.DecodeJobEvent(delivery.Body)
			if err != nil {
				w.logger.Error("Discarding malformed job event",
					slog.String("error", err.Error()),
					slog.String("body", string(delivery.Body)),
				)
				// Malformed messages never become valid; dead-letter them
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK malformed message",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			msg := &eventMessage{
				event:       event,
				deliveryTag: delivery.DeliveryTag,
				ack:         delivery.Acknowledger,
			}

			select {
			case w.events <- msg:
				w.logger.Debug("Job event dispatched to worker pool",
					slog.String("event_id", event.EventID),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
				)
			case <-ctx.Done():
				w.logger.Info("Message dispatcher stopped while dispatching event")
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					w.logger.Error("Failed to NACK message on shutdown",
						slog.String("error", nackErr.Error()),
					)
				}
				return
			}
		}
	}
}
