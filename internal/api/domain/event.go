package domain

import (
	"time"

	"github.com/google/uuid"
)

// Job event types published after a successful mutation
const (
	EventJobCreated = "job.created"
	EventJobUpdated = "job.updated"
	EventJobDeleted = "job.deleted"
)

// JobEvent is the message published to RabbitMQ when a job changes
type JobEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	JobID      int       `json:"job_id"`
	Job        any       `json:"job,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewJobEvent creates an event with a fresh id
func NewJobEvent(eventType string, jobID int, job any) *JobEvent {
	return &JobEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		JobID:      jobID,
		Job:        job,
		OccurredAt: time.Now().UTC(),
	}
}
