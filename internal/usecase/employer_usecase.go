package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	repo     domain.EmployerRepository
	validate *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{repo: repo, validate: validate}
}

func (u *employerUsecase) GetMyProfile(ctx context.Context, actor domain.Actor) (*domain.Employer, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	e, err := u.repo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundAs(err, "Employer profile not found")
	}
	return e, nil
}

// UpsertMyProfile always writes the caller's own row; UserID in the body is ignored.
func (u *employerUsecase) UpsertMyProfile(ctx context.Context, actor domain.Actor, e *domain.Employer) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.HasRole(domain.RoleEmployer) {
		return apperror.Forbidden("Only employers can maintain a company profile")
	}

	e.UserID = actor.UserID
	e.CompanyName = strings.TrimSpace(e.CompanyName)
	if err := u.validate.Struct(e); err != nil {
		return validationError(err)
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Upsert(ctx, e)
}

func (u *employerUsecase) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Employer not found")
	}
	return e, nil
}
