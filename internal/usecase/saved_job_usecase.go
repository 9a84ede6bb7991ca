package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedRepo    domain.SavedJobRepository
	employeeRepo domain.EmployeeRepository
	jobRepo      domain.JobPostingRepository
}

func NewSavedJobUsecase(
	savedRepo domain.SavedJobRepository,
	employeeRepo domain.EmployeeRepository,
	jobRepo domain.JobPostingRepository,
) domain.SavedJobUsecase {
	return &savedJobUsecase{savedRepo: savedRepo, employeeRepo: employeeRepo, jobRepo: jobRepo}
}

func (u *savedJobUsecase) employeeID(ctx context.Context, actor domain.Actor) (int64, error) {
	if err := requireUser(actor); err != nil {
		return 0, err
	}
	employee, err := u.employeeRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return 0, notFoundAs(err, "Employee profile not found. Please create your profile first.")
	}
	return employee.ID, nil
}

// Save bookmarks a posting. Saving the same posting twice is a 409; the
// unique constraint decides, not a prior lookup.
func (u *savedJobUsecase) Save(ctx context.Context, actor domain.Actor, jobPostingID int64) (*domain.SavedJob, error) {
	if jobPostingID <= 0 {
		return nil, apperror.BadRequest("Invalid job posting ID")
	}
	employeeID, err := u.employeeID(ctx, actor)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		return nil, notFoundAs(err, "Job posting not found")
	}

	saved := &domain.SavedJob{
		EmployeeID:   employeeID,
		JobPostingID: jobPostingID,
		SavedAt:      time.Now(),
		JobTitle:     &job.Title,
		JobLocation:  &job.Location,
		JobStatus:    &job.Status,
	}
	if err := u.savedRepo.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (u *savedJobUsecase) ListMine(ctx context.Context, actor domain.Actor, page, pageSize int) ([]domain.SavedJob, int64, error) {
	employeeID, err := u.employeeID(ctx, actor)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := paginate(page, pageSize)
	return u.savedRepo.ListByEmployee(ctx, employeeID, limit, offset)
}

func (u *savedJobUsecase) IsSaved(ctx context.Context, actor domain.Actor, jobPostingID int64) (bool, error) {
	employeeID, err := u.employeeID(ctx, actor)
	if err != nil {
		return false, err
	}
	_, err = u.savedRepo.Get(ctx, employeeID, jobPostingID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (u *savedJobUsecase) Unsave(ctx context.Context, actor domain.Actor, jobPostingID int64) error {
	employeeID, err := u.employeeID(ctx, actor)
	if err != nil {
		return err
	}
	return notFoundAs(u.savedRepo.Delete(ctx, employeeID, jobPostingID), "Saved job not found")
}
