package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSavedJobFixture() (*MockSavedJobRepo, *MockEmployeeRepo, *MockJobPostingRepo, domain.SavedJobUsecase) {
	saved := new(MockSavedJobRepo)
	employees := new(MockEmployeeRepo)
	jobs := new(MockJobPostingRepo)
	return saved, employees, jobs, usecase.NewSavedJobUsecase(saved, employees, jobs)
}

func TestSaveJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save for the caller's employee profile", func(t *testing.T) {
		saved, employees, jobs, uc := newSavedJobFixture()
		employees.On("GetByUserID", ctx, employeeActor.UserID).Return(&domain.Employee{ID: 5}, nil)
		jobs.On("GetByID", ctx, int64(9)).Return(&domain.JobPosting{ID: 9, Title: "Picker", Status: "open"}, nil)
		saved.On("Create", ctx, mock.MatchedBy(func(s *domain.SavedJob) bool {
			return s.EmployeeID == 5 && s.JobPostingID == 9 && !s.SavedAt.IsZero()
		})).Return(nil)

		s, err := uc.Save(ctx, employeeActor, 9)
		require.NoError(t, err)
		assert.Equal(t, "Picker", *s.JobTitle)
	})

	t.Run("Should reject duplicate save with 409", func(t *testing.T) {
		saved, employees, jobs, uc := newSavedJobFixture()
		employees.On("GetByUserID", ctx, employeeActor.UserID).Return(&domain.Employee{ID: 5}, nil)
		jobs.On("GetByID", ctx, int64(9)).Return(&domain.JobPosting{ID: 9}, nil)
		saved.On("Create", ctx, mock.Anything).Return(apperror.Conflict("Job already saved"))

		_, err := uc.Save(ctx, employeeActor, 9)
		assert.Equal(t, 409, apperror.CodeOf(err))
		assert.EqualError(t, err, "Job already saved")
	})

	t.Run("Should 404 for missing posting", func(t *testing.T) {
		saved, employees, jobs, uc := newSavedJobFixture()
		employees.On("GetByUserID", ctx, employeeActor.UserID).Return(&domain.Employee{ID: 5}, nil)
		jobs.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.Save(ctx, employeeActor, 404)
		assert.Equal(t, 404, apperror.CodeOf(err))
		saved.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require an employee profile", func(t *testing.T) {
		_, employees, _, uc := newSavedJobFixture()
		employees.On("GetByUserID", ctx, employerActor.UserID).Return(nil, domain.ErrNotFound)

		_, err := uc.Save(ctx, employerActor, 9)
		assert.Equal(t, 404, apperror.CodeOf(err))
	})

	t.Run("Should require authentication", func(t *testing.T) {
		_, _, _, uc := newSavedJobFixture()
		_, err := uc.Save(ctx, domain.Actor{}, 9)
		assert.Equal(t, 401, apperror.CodeOf(err))
	})
}

func TestIsSavedAndUnsave(t *testing.T) {
	ctx := context.Background()
	saved, employees, _, uc := newSavedJobFixture()
	employees.On("GetByUserID", ctx, employeeActor.UserID).Return(&domain.Employee{ID: 5}, nil)
	saved.On("Get", ctx, int64(5), int64(1)).Return(&domain.SavedJob{ID: 1}, nil)
	saved.On("Get", ctx, int64(5), int64(2)).Return(nil, domain.ErrNotFound)
	saved.On("Delete", ctx, int64(5), int64(2)).Return(domain.ErrNotFound)

	ok, err := uc.IsSaved(ctx, employeeActor, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsSaved(ctx, employeeActor, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	err = uc.Unsave(ctx, employeeActor, 2)
	assert.Equal(t, 404, apperror.CodeOf(err))
}
