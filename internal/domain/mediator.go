package domain

import (
	"context"
	"time"
)

const (
	MediatorStatusActive    = "active"
	MediatorStatusInactive  = "inactive"
	MediatorStatusSuspended = "suspended"
)

var ValidMediatorStatuses = map[string]bool{
	MediatorStatusActive:    true,
	MediatorStatusInactive:  true,
	MediatorStatusSuspended: true,
}

// Mediator brokers job postings between employers and employees and may
// receive on-chain payments at WalletAddress.
type Mediator struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PhoneNumber   *string   `json:"phone_number"`
	Names         string    `json:"names"`
	WalletAddress *string   `json:"wallet_address"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MediatorInput struct {
	Email         string `json:"email" validate:"required,email,max=254"`
	PhoneNumber   string `json:"phone_number" validate:"omitempty,valid_phone"`
	Names         string `json:"names" validate:"required,min=2,max=200,valid_name,no_emoji"`
	WalletAddress string `json:"wallet_address" validate:"omitempty,wallet_address"`
}

type MediatorFilter struct {
	Status string
	Limit  int
	Offset int
}

type MediatorRepository interface {
	Create(ctx context.Context, m *Mediator) error
	GetByID(ctx context.Context, id string) (*Mediator, error)
	List(ctx context.Context, filter MediatorFilter) ([]Mediator, int64, error)
	Update(ctx context.Context, m *Mediator) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type MediatorUsecase interface {
	Create(ctx context.Context, actor Actor, in *MediatorInput) (*Mediator, error)
	Get(ctx context.Context, id string) (*Mediator, error)
	List(ctx context.Context, status string, page, pageSize int) ([]Mediator, int64, error)
	Update(ctx context.Context, actor Actor, id string, in *MediatorInput) (*Mediator, error)
	SetStatus(ctx context.Context, actor Actor, id string, status string) error
	Delete(ctx context.Context, actor Actor, id string) error
}
