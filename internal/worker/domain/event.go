package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobEvent is a job change event consumed from RabbitMQ
type JobEvent struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	JobID      int             `json:"job_id"`
	Job        json.RawMessage `json:"job,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// DecodeJobEvent parses and validates a message body
func DecodeJobEvent(body []byte) (*JobEvent, error) {
	var event JobEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if _, err := uuid.Parse(event.EventID); err != nil {
		return nil, fmt.Errorf("%w: event_id %q is not a UUID", ErrInvalidEvent, event.EventID)
	}

	if !IsKnownEventType(event.Type) {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, event.Type)
	}

	if event.JobID <= 0 {
		return nil, fmt.Errorf("%w: job_id must be positive", ErrInvalidEvent)
	}

	if event.OccurredAt.IsZero() {
		return nil, fmt.Errorf("%w: occurred_at is required", ErrInvalidEvent)
	}

	return &event, nil
}
