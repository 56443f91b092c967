package dto

import (
	"github.com/cuongbtq/jobs-api/internal/api/model"
	"github.com/cuongbtq/jobs-api/shared/sqlbuilder"
)

// CreateJobRequest is the POST /jobs body. Salary bounds follow the INTEGER column.
type CreateJobRequest struct {
	Title         string  `json:"title" binding:"required"`
	Salary        *int    `json:"salary" binding:"omitempty,min=0,max=2147483647"`
	Equity        *string `json:"equity" binding:"omitempty,equity"`
	CompanyHandle string  `json:"companyHandle" binding:"required"`
}

// ToInput converts the request into a storage insert
func (r *CreateJobRequest) ToInput() *model.NewJobInput {
	return &model.NewJobInput{
		Title:         r.Title,
		Salary:        r.Salary,
		Equity:        r.Equity,
		CompanyHandle: r.CompanyHandle,
	}
}

// UpdateJobRequest is a partial update. Absent and null fields are left unchanged.
type UpdateJobRequest struct {
	Title  *string `json:"title" binding:"omitempty,min=1"`
	Salary *int    `json:"salary" binding:"omitempty,min=0,max=2147483647"`
	Equity *string `json:"equity" binding:"omitempty,equity"`
}

// Assignments lists the supplied fields in the order title, salary, equity
func (r *UpdateJobRequest) Assignments() []sqlbuilder.Assignment {
	var out []sqlbuilder.Assignment
	if r.Title != nil {
		out = append(out, sqlbuilder.Assignment{Field: "title", Value: *r.Title})
	}
	if r.Salary != nil {
		out = append(out, sqlbuilder.Assignment{Field: "salary", Value: *r.Salary})
	}
	if r.Equity != nil {
		out = append(out, sqlbuilder.Assignment{Field: "equity", Value: *r.Equity})
	}
	return out
}

type ListJobsRequest struct {
	Title     *string `form:"title"`
	MinSalary *int    `form:"minSalary" binding:"omitempty,min=0,max=2147483647"`
	HasEquity *bool   `form:"hasEquity"`
}

type JobDTO struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

type CompanyDTO struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

type JobDetailDTO struct {
	ID      int         `json:"id"`
	Title   string      `json:"title"`
	Salary  *int        `json:"salary"`
	Equity  *string     `json:"equity"`
	Company *CompanyDTO `json:"company"`
}

type JobResponse struct {
	Job JobDTO `json:"job"`
}

type JobDetailResponse struct {
	Job JobDetailDTO `json:"job"`
}

type ListJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}

type DeleteJobResponse struct {
	Deleted int `json:"deleted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewJobDTO(job *model.Job) JobDTO {
	return JobDTO{
		ID:            job.ID,
		Title:         job.Title,
		Salary:        job.Salary,
		Equity:        job.Equity,
		CompanyHandle: job.CompanyHandle,
	}
}

func NewJobDetailDTO(job *model.JobWithCompany) JobDetailDTO {
	out := JobDetailDTO{
		ID:     job.ID,
		Title:  job.Title,
		Salary: job.Salary,
		Equity: job.Equity,
	}
	if job.Company != nil {
		out.Company = &CompanyDTO{
			Handle:       job.Company.Handle,
			Name:         job.Company.Name,
			Description:  job.Company.Description,
			NumEmployees: job.Company.NumEmployees,
			LogoURL:      job.Company.LogoURL,
		}
	}
	return out
}

func NewListJobsResponse(jobs []model.Job) ListJobsResponse {
	out := make([]JobDTO, len(jobs))
	for i := range jobs {
		out[i] = NewJobDTO(&jobs[i])
	}
	return ListJobsResponse{Jobs: out}
}
