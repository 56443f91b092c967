package model

// Job is a row of the jobs table
type Job struct {
	ID            int     `db:"id"`
	Title         string  `db:"title"`
	Salary        *int    `db:"salary"`
	Equity        *string `db:"equity"`
	CompanyHandle string  `db:"company_handle"`
}

// Company is a row of the companies table
type Company struct {
	Handle       string  `db:"handle"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	NumEmployees *int    `db:"num_employees"`
	LogoURL      *string `db:"logo_url"`
}

// JobWithCompany is a job with its owning company in place of the handle.
// Company is nil when the company row could not be read.
type JobWithCompany struct {
	ID      int
	Title   string
	Salary  *int
	Equity  *string
	Company *Company
}

// NewJobInput holds the fields required to insert a job
type NewJobInput struct {
	Title         string
	Salary        *int
	Equity        *string
	CompanyHandle string
}
