package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/worker/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// RecordEvent appends event to job_events. Redelivered events are ignored,
// reported by a false return. Transient failures come back wrapped in a
// domain.RetryableError.
func (s *Storage) RecordEvent(ctx context.Context, event *domain.JobEvent) (bool, error) {
	query := `
		INSERT INTO job_events (event_id, event_type, job_id, job, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`

	// Sent as text; lib/pq would encode []byte as bytea
	var job any
	if len(event.Job) > 0 {
		job = string(event.Job)
	}

	result, err := s.db.ExecContext(ctx, query, event.EventID, event.Type, event.JobID, job, event.OccurredAt)
	if err != nil {
		err = fmt.Errorf("failed to record job event: %w", err)
		if isTransient(err) {
			return false, domain.NewRetryableError(err)
		}
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		s.logger.Warn("Job event already recorded",
			slog.String("event_id", event.EventID),
			slog.Int("job_id", event.JobID),
		)
		return false, nil
	}

	s.logger.Info("Job event recorded",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.Int("job_id", event.JobID),
	)

	return true, nil
}

// transientClasses are the SQLSTATE classes worth retrying: connection
// exceptions, transaction rollbacks, insufficient resources and operator
// intervention.
var transientClasses = map[pq.ErrorClass]bool{
	"08": true,
	"40": true,
	"53": true,
	"57": true,
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return transientClasses[pqErr.Code.Class()]
	}

	return false
}
