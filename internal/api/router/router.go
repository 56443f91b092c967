package router

import (
	"context"
	"net/http"
	"time"

	"github.com/cuongbtq/jobs-api/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes.
// dto.ConfigureBinding must have succeeded before requests are served.
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware(deps.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if deps.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Health.HealthCheck(ctx); err != nil {
				status, code = "unhealthy", http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": deps.ServiceName,
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	admin := RequireAdmin(deps.Auth, deps.Logger)

	jobs := r.Group("/jobs")
	{
		// POST /jobs - Create a job (admin)
		jobs.POST("", admin, jobHandler.CreateJob)

		// GET /jobs - List jobs filtered by title, minSalary, hasEquity
		jobs.GET("", jobHandler.ListJobs)

		// GET /jobs/:id - Job with its company
		jobs.GET("/:id", jobHandler.GetJob)

		// PATCH /jobs/:id - Partial update (admin)
		jobs.PATCH("/:id", admin, jobHandler.UpdateJob)

		// DELETE /jobs/:id - Delete a job (admin)
		jobs.DELETE("/:id", admin, jobHandler.DeleteJob)
	}

	return r
}
