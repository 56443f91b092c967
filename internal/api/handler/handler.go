package handler

import (
	"context"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/api/auth"
	"github.com/cuongbtq/jobs-api/internal/api/model"
	"github.com/cuongbtq/jobs-api/internal/api/storage"
	"github.com/cuongbtq/jobs-api/shared/sqlbuilder"
)

// JobStore is the job access layer consumed by the handlers
type JobStore interface {
	CreateJob(ctx context.Context, input *model.NewJobInput) (*model.Job, error)
	ListJobs(ctx context.Context, filter storage.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, id int) (*model.JobWithCompany, error)
	UpdateJob(ctx context.Context, id int, data []sqlbuilder.Assignment) (*model.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// EventPublisher delivers job change events, routed by event type
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// HealthChecker reports whether the database is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger      *slog.Logger
	Jobs        JobStore
	Events      EventPublisher
	Health      HealthChecker
	Auth        *auth.Authenticator
	ServiceName string
	CORSOrigins []string
}

// JobHandler handles job-related HTTP requests
type JobHandler struct {
	logger *slog.Logger
	jobs   JobStore
	events EventPublisher
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
		events: deps.Events,
	}
}
