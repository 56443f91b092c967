package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/jobs-api/internal/api/domain"
	"github.com/cuongbtq/jobs-api/internal/api/dto"
	"github.com/cuongbtq/jobs-api/internal/api/storage"
	"github.com/gin-gonic/gin"
)

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondError(c, "Failed to create job", err)
		return
	}

	h.publish(c.Request.Context(), domain.NewJobEvent(domain.EventJobCreated, job.ID, dto.NewJobDTO(job)))

	c.JSON(http.StatusCreated, dto.JobResponse{Job: dto.NewJobDTO(job)})
}

// ListJobs handles GET /jobs
// Unknown query parameters are ignored.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	filter := storage.JobFilter{
		Title:     req.Title,
		MinSalary: req.MinSalary,
		HasEquity: req.HasEquity,
	}

	jobs, err := h.jobs.ListJobs(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, "Failed to list jobs", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListJobsResponse(jobs))
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	job, err := h.jobs.GetJob(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "Failed to get job", err)
		return
	}

	c.JSON(http.StatusOK, dto.JobDetailResponse{Job: dto.NewJobDetailDTO(job)})
}

// UpdateJob handles PATCH /jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body",
			slog.Int("job_id", id),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), id, req.Assignments())
	if err != nil {
		h.respondError(c, "Failed to update job", err)
		return
	}

	h.publish(c.Request.Context(), domain.NewJobEvent(domain.EventJobUpdated, job.ID, dto.NewJobDTO(job)))

	c.JSON(http.StatusOK, dto.JobResponse{Job: dto.NewJobDTO(job)})
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := h.jobID(c)
	if !ok {
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), id); err != nil {
		h.respondError(c, "Failed to delete job", err)
		return
	}

	h.publish(c.Request.Context(), domain.NewJobEvent(domain.EventJobDeleted, id, nil))

	c.JSON(http.StatusOK, dto.DeleteJobResponse{Deleted: id})
}

// jobID parses the :id path parameter. An id that is not a 32-bit integer
// cannot match a SERIAL row, so it is answered like a missing job.
func (h *JobHandler) jobID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		h.logger.Warn("Invalid job id", slog.String("id", raw))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrJobNotFound.Error()})
		return 0, false
	}
	return int(id), true
}

// respondError maps err to a status code: bad request 400, not found 404,
// anything else 500 without leaking the cause.
func (h *JobHandler) respondError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error(msg, slog.String("error", err.Error()))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
}

// publish sends event after a committed mutation. Failures are logged only.
func (h *JobHandler) publish(ctx context.Context, event *domain.JobEvent) {
	if h.events == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to encode job event",
			slog.String("event_type", event.Type),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.events.Publish(ctx, event.Type, body); err != nil {
		h.logger.Error("Failed to publish job event",
			slog.String("event_id", event.EventID),
			slog.String("event_type", event.Type),
			slog.Int("job_id", event.JobID),
			slog.String("error", err.Error()),
		)
	}
}
