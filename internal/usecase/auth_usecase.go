package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists returns the stored user for the token subject, creating it
// with the employee role on first sight. The stored role always wins over
// anything carried in the token.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	created := &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		Role:      domain.RoleEmployee,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Create is idempotent on id, so a concurrent first request is harmless.
	if err := u.userRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	logger.Log.Info("provisioned user", "user_id", created.ID)

	stored, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return created, nil
	}
	return stored, nil
}

func (u *authUsecase) AssignRole(ctx context.Context, actor domain.Actor, userID string, role string) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("Only admins can assign roles")
	}
	if !domain.ValidRoles[role] {
		return apperror.BadRequest("Invalid role")
	}
	if err := u.userRepo.UpdateRole(ctx, userID, role); err != nil {
		return notFoundAs(err, "User not found")
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User not found")
	}
	return user, nil
}
