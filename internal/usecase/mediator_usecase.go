package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type mediatorUsecase struct {
	repo     domain.MediatorRepository
	validate *validator.Validate
	audit    *audit.Logger
}

func NewMediatorUsecase(repo domain.MediatorRepository, validate *validator.Validate, auditLogger *audit.Logger) domain.MediatorUsecase {
	if auditLogger == nil {
		auditLogger = audit.Default()
	}
	return &mediatorUsecase{repo: repo, validate: validate, audit: auditLogger}
}

func canManageMediators(actor domain.Actor) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.HasRole(domain.RoleMediator) {
		return apperror.Forbidden("Only admins and mediators can manage mediators")
	}
	return nil
}

// normaliseMediatorInput trims in place so validation sees the stored form.
func normaliseMediatorInput(in *domain.MediatorInput) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Names = strings.TrimSpace(in.Names)
	in.WalletAddress = strings.TrimSpace(in.WalletAddress)
}

func (u *mediatorUsecase) Create(ctx context.Context, actor domain.Actor, in *domain.MediatorInput) (*domain.Mediator, error) {
	if err := canManageMediators(actor); err != nil {
		return nil, err
	}
	normaliseMediatorInput(in)
	if err := u.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	now := time.Now()
	m := &domain.Mediator{
		ID:            uuid.NewString(),
		Email:         in.Email,
		PhoneNumber:   optionalString(in.PhoneNumber),
		Names:         in.Names,
		WalletAddress: optionalString(in.WalletAddress),
		Status:        domain.MediatorStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *mediatorUsecase) Get(ctx context.Context, id string) (*domain.Mediator, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.BadRequest("Invalid mediator ID")
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Mediator not found")
	}
	return m, nil
}

func (u *mediatorUsecase) List(ctx context.Context, status string, page, pageSize int) ([]domain.Mediator, int64, error) {
	if status != "" && !domain.ValidMediatorStatuses[status] {
		return nil, 0, apperror.BadRequest("Invalid mediator status")
	}
	limit, offset := paginate(page, pageSize)
	return u.repo.List(ctx, domain.MediatorFilter{Status: status, Limit: limit, Offset: offset})
}

func (u *mediatorUsecase) Update(ctx context.Context, actor domain.Actor, id string, in *domain.MediatorInput) (*domain.Mediator, error) {
	if err := canManageMediators(actor); err != nil {
		return nil, err
	}
	normaliseMediatorInput(in)
	if err := u.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Email = in.Email
	m.PhoneNumber = optionalString(in.PhoneNumber)
	m.Names = in.Names
	m.WalletAddress = optionalString(in.WalletAddress)
	m.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, m); err != nil {
		return nil, notFoundAs(err, "Mediator not found")
	}
	return m, nil
}

func (u *mediatorUsecase) SetStatus(ctx context.Context, actor domain.Actor, id string, status string) error {
	if err := canManageMediators(actor); err != nil {
		return err
	}
	if !domain.ValidMediatorStatuses[status] {
		return apperror.BadRequest("Invalid mediator status")
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Invalid mediator ID")
	}
	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		return notFoundAs(err, "Mediator not found")
	}

	u.audit.Log(ctx, audit.Event{
		Event:        audit.EventMediatorStatus,
		SubjectType:  "user_id",
		SubjectValue: actor.UserID,
		RequestID:    actor.RequestID,
		Details:      map[string]interface{}{"mediator_id": id, "status": status},
	})
	return nil
}

func (u *mediatorUsecase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return apperror.Forbidden("Only admins can delete mediators")
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest("Invalid mediator ID")
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, "Mediator not found")
	}
	return nil
}
