package domain

import (
	"context"
	"time"
)

// SavedJob bookmarks a posting for an employee. The (employee, posting) pair
// is unique and rows disappear with their posting.
type SavedJob struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	JobPostingID int64     `json:"job_posting_id"`
	SavedAt      time.Time `json:"saved_at"`

	// Joined
	JobTitle    *string `json:"job_title,omitempty"`
	JobLocation *string `json:"job_location,omitempty"`
	JobStatus   *string `json:"job_status,omitempty"`
}

type SavedJobRepository interface {
	Create(ctx context.Context, s *SavedJob) error
	Get(ctx context.Context, employeeID, jobPostingID int64) (*SavedJob, error)
	ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]SavedJob, int64, error)
	Delete(ctx context.Context, employeeID, jobPostingID int64) error
}

type SavedJobUsecase interface {
	Save(ctx context.Context, actor Actor, jobPostingID int64) (*SavedJob, error)
	ListMine(ctx context.Context, actor Actor, page, pageSize int) ([]SavedJob, int64, error)
	IsSaved(ctx context.Context, actor Actor, jobPostingID int64) (bool, error)
	Unsave(ctx context.Context, actor Actor, jobPostingID int64) error
}
