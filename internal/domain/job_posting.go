package domain

import (
	"context"
	"time"
)

const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

type JobPosting struct {
	ID           int64     `json:"id"`
	EmployerID   int64     `json:"employer_id"`
	MediatorID   *string   `json:"mediator_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	SalaryMin    float64   `json:"salary_min"`
	SalaryMax    float64   `json:"salary_max"`
	PaymentWei   *string   `json:"payment_wei"`
	Tags         []string  `json:"tags"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined
	CompanyName *string `json:"company_name,omitempty"`
}

// HasCoordinates reports whether the posting can back a GPS payment.
func (j *JobPosting) HasCoordinates() bool {
	return j.Latitude != nil && j.Longitude != nil
}

type JobPostingInput struct {
	Title        string   `json:"title" validate:"required,min=3,max=200"`
	Description  string   `json:"description" validate:"required,max=20000"`
	Location     string   `json:"location" validate:"required,max=200"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusMeters int      `json:"radius_meters" validate:"min=0,max=100000"`
	SalaryMin    float64  `json:"salary_min" validate:"min=0"`
	SalaryMax    float64  `json:"salary_max" validate:"min=0,gtefield=SalaryMin"`
	PaymentWei   string   `json:"payment_wei" validate:"omitempty,wei"`
	MediatorID   string   `json:"mediator_id" validate:"omitempty,uuid"`
	Tags         []string `json:"tags" validate:"max=20,dive,min=1,max=40"`
}

type JobPostingFilter struct {
	Status     string
	EmployerID int64
	Tag        string
	Query      string
	Limit      int
	Offset     int
}

type JobPostingRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	List(ctx context.Context, filter JobPostingFilter) ([]JobPosting, int64, error)
	Update(ctx context.Context, job *JobPosting) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type JobPostingUsecase interface {
	Create(ctx context.Context, actor Actor, in *JobPostingInput) (*JobPosting, error)
	Get(ctx context.Context, id int64) (*JobPosting, error)
	ListOpen(ctx context.Context, tag, query string, page, pageSize int) ([]JobPosting, int64, error)
	ListMine(ctx context.Context, actor Actor, page, pageSize int) ([]JobPosting, int64, error)
	Update(ctx context.Context, actor Actor, id int64, in *JobPostingInput) (*JobPosting, error)
	Close(ctx context.Context, actor Actor, id int64) error
	Delete(ctx context.Context, actor Actor, id int64) error
	Export(ctx context.Context, actor Actor, format string) (*ExportFile, error)
}

// ExportFile is a generated download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
