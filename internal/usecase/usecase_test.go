package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminActor    = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin, RequestID: "req-admin"}
	employerActor = domain.Actor{UserID: "employer-1", Role: domain.RoleEmployer, RequestID: "req-employer"}
	employeeActor = domain.Actor{UserID: "employee-1", Role: domain.RoleEmployee, RequestID: "req-employee"}
)

func TestEnsureUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return stored user with stored role", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo)
		stored := &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleEmployer}
		repo.On("GetByID", ctx, "u1").Return(stored, nil)

		user, err := uc.EnsureUserExists(ctx, &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, user.Role)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should provision unknown subject as employee", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo)
		repo.On("GetByID", ctx, "u2").Return(nil, domain.ErrNotFound).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ID == "u2" && u.Role == domain.RoleEmployee
		})).Return(nil)
		repo.On("GetByID", ctx, "u2").Return(&domain.User{ID: "u2", Role: domain.RoleEmployee}, nil).Once()

		user, err := uc.EnsureUserExists(ctx, &domain.User{ID: "u2", Email: "new@b.com", Role: domain.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleEmployee, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("Should surface database errors", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo)
		repo.On("GetByID", ctx, "u3").Return(nil, errors.New("connection refused"))

		_, err := uc.EnsureUserExists(ctx, &domain.User{ID: "u3"})
		assert.Error(t, err)
	})
}

func TestAuthPrivilege(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		err := uc.AssignRole(ctx, employerActor, "target_user", domain.RoleAdmin)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("Should fail safe for anonymous actor", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		err := uc.AssignRole(ctx, domain.Actor{}, "target_user", domain.RoleAdmin)
		assert.Equal(t, 403, apperror.CodeOf(err))
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo))
		err := uc.AssignRole(ctx, adminActor, "target_user", "recruiter")
		assert.Equal(t, 400, apperror.CodeOf(err))
	})

	t.Run("Should map missing user to 404", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo)
		repo.On("UpdateRole", ctx, "ghost", domain.RoleMediator).Return(domain.ErrNotFound)

		err := uc.AssignRole(ctx, adminActor, "ghost", domain.RoleMediator)
		assert.Equal(t, 404, apperror.CodeOf(err))
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("degraded when redis fails", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(nil, func(context.Context) error { return errors.New("down") })
		result := uc.Check(context.Background())
		assert.Equal(t, "degraded", result["status"])
		assert.Equal(t, "unavailable", result["redis"])
		assert.Equal(t, "disabled", result["database"])
	})

	t.Run("ok without redis", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(nil, nil)
		result := uc.Check(context.Background())
		assert.Equal(t, "ok", result["status"])
		assert.Equal(t, "disabled", result["redis"])
	})
}
