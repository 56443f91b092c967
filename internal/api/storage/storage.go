package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobs-api/internal/api/domain"
	"github.com/cuongbtq/jobs-api/internal/api/model"
	"github.com/cuongbtq/jobs-api/shared/sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	jobColumns     = "id, title, salary, equity, company_handle"
	companyColumns = "handle, name, description, num_employees, logo_url"

	pqForeignKeyViolation = "23503"
)

// jobFields translates external job field names to columns. Only title,
// salary and equity may be written by a partial update.
var jobFields = sqlbuilder.NewColumns(
	sqlbuilder.ColumnMap{
		"companyHandle": "company_handle",
	},
	"title", "salary", "equity",
)

// Storage is the job access layer over PostgreSQL
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

// CreateJob inserts a job and returns the stored row including its id.
// A companyHandle without a matching company fails with the driver error.
func (s *Storage) CreateJob(ctx context.Context, input *model.NewJobInput) (*model.Job, error) {
	query := `INSERT INTO jobs (title, salary, equity, company_handle) VALUES ($1, $2, $3, $4) RETURNING ` + jobColumns

	var job model.Job
	err := s.db.GetContext(ctx, &job, query,
		input.Title,
		input.Salary,
		input.Equity,
		input.CompanyHandle,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			s.logger.Warn("Job references unknown company",
				slog.String("company_handle", input.CompanyHandle),
				slog.String("constraint", pqErr.Constraint),
			)
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.logger.Info("Job created",
		slog.Int("job_id", job.ID),
		slog.String("company_handle", job.CompanyHandle),
	)

	return &job, nil
}

// ListJobs returns the jobs matching filter in store order
func (s *Storage) ListJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	where := BuildFilterClause(filter)

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if where.SQL != "" {
		query += " WHERE " + where.SQL
	}

	jobs := []model.Job{}
	err := s.db.SelectContext(ctx, &jobs, query, where.Args.Values()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// GetJob returns a job together with its company. The two reads are not
// wrapped in a transaction, so a company removed in between yields a nil
// Company.
func (s *Storage) GetJob(ctx context.Context, id int) (*model.JobWithCompany, error) {
	var job model.Job
	err := s.db.GetContext(ctx, &job, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	result := &model.JobWithCompany{
		ID:     job.ID,
		Title:  job.Title,
		Salary: job.Salary,
		Equity: job.Equity,
	}

	var company model.Company
	err = s.db.GetContext(ctx, &company, `SELECT `+companyColumns+` FROM companies WHERE handle = $1`, job.CompanyHandle)
	switch {
	case err == nil:
		result.Company = &company
	case errors.Is(err, sql.ErrNoRows):
		s.logger.Warn("Company missing for job",
			slog.Int("job_id", job.ID),
			slog.String("company_handle", job.CompanyHandle),
		)
	default:
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return result, nil
}

// UpdateJob applies a partial update and returns the updated row. The id is
// bound after the SET values.
func (s *Storage) UpdateJob(ctx context.Context, id int, data []sqlbuilder.Assignment) (*model.Job, error) {
	set, err := sqlbuilder.BuildSetClause(data, jobFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}

	idPlaceholder := set.Args.Add(id)
	query := `UPDATE jobs SET ` + set.SQL + ` WHERE id = ` + idPlaceholder + ` RETURNING ` + jobColumns

	var job model.Job
	err = s.db.GetContext(ctx, &job, query, set.Args.Values()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	s.logger.Info("Job updated",
		slog.Int("job_id", job.ID),
		slog.Int("fields", len(data)),
	)

	return &job, nil
}

// DeleteJob removes a job by id
func (s *Storage) DeleteJob(ctx context.Context, id int) error {
	var deleted int
	err := s.db.GetContext(ctx, &deleted, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: id %d", domain.ErrJobNotFound, id)
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.logger.Info("Job deleted", slog.Int("job_id", deleted))
	return nil
}
