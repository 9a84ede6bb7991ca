package domain

import (
	"context"
	"time"
)

// Employee is a job seeker's profile, one per user.
type Employee struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Names         string    `json:"names" validate:"required,min=2,max=200,valid_name,no_emoji"`
	Email         string    `json:"email" validate:"required,email"`
	PhoneNumber   *string   `json:"phone_number" validate:"omitempty,valid_phone"`
	WalletAddress *string   `json:"wallet_address" validate:"omitempty,wallet_address"`
	Skills        []string  `json:"skills" validate:"max=30,dive,min=1,max=50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByUserID(ctx context.Context, userID string) (*Employee, error)
	Upsert(ctx context.Context, e *Employee) error
}

type EmployeeUsecase interface {
	GetMyProfile(ctx context.Context, actor Actor) (*Employee, error)
	UpsertMyProfile(ctx context.Context, actor Actor, e *Employee) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
}
