package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employeeUsecase struct {
	repo     domain.EmployeeRepository
	validate *validator.Validate
}

func NewEmployeeUsecase(repo domain.EmployeeRepository, validate *validator.Validate) domain.EmployeeUsecase {
	return &employeeUsecase{repo: repo, validate: validate}
}

func (u *employeeUsecase) GetMyProfile(ctx context.Context, actor domain.Actor) (*domain.Employee, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	e, err := u.repo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundAs(err, "Employee profile not found")
	}
	return e, nil
}

// UpsertMyProfile always writes the caller's own row; UserID in the body is ignored.
func (u *employeeUsecase) UpsertMyProfile(ctx context.Context, actor domain.Actor, e *domain.Employee) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.HasRole(domain.RoleEmployee) {
		return apperror.Forbidden("Only employees can maintain an employee profile")
	}

	e.UserID = actor.UserID
	e.Names = strings.TrimSpace(e.Names)
	e.Email = strings.ToLower(strings.TrimSpace(e.Email))
	if e.Skills == nil {
		e.Skills = []string{}
	}
	if err := u.validate.Struct(e); err != nil {
		return validationError(err)
	}

	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Upsert(ctx, e)
}

func (u *employeeUsecase) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Employee not found")
	}
	return e, nil
}
