package domain

import (
	"context"
	"time"
)

// Employer is a company account that publishes job postings.
type Employer struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	CompanyName   string    `json:"company_name" validate:"required,min=2,max=200,no_emoji"`
	Website       *string   `json:"website" validate:"omitempty,url"`
	LogoURL       *string   `json:"logo_url" validate:"omitempty,url"`
	WalletAddress *string   `json:"wallet_address" validate:"omitempty,wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	GetByID(ctx context.Context, id int64) (*Employer, error)
	GetByUserID(ctx context.Context, userID string) (*Employer, error)
	Upsert(ctx context.Context, e *Employer) error
}

type EmployerUsecase interface {
	GetMyProfile(ctx context.Context, actor Actor) (*Employer, error)
	UpsertMyProfile(ctx context.Context, actor Actor, e *Employer) error
	GetByID(ctx context.Context, id int64) (*Employer, error)
}
