package domain

import (
	"context"
	"math/big"

	"go-jobboard-backend/pkg/chain"
)

// ChainGateway is the contract surface used by the chain usecase; *chain.Client implements it.
type ChainGateway interface {
	Status(ctx context.Context) (*chain.Status, error)
	GetLocation(ctx context.Context, device string) (*chain.Location, error)
	UpdateLocation(ctx context.Context, device string, latitude, longitude float64) (*chain.TxResult, error)
	GetPayment(ctx context.Context, id *big.Int) (*chain.Payment, error)
	CreatePayment(ctx context.Context, in chain.CreatePaymentInput) (*chain.TxResult, error)
	ReleasePayment(ctx context.Context, id *big.Int) (*chain.TxResult, error)
}

type LocationUpdateInput struct {
	Device    string  `json:"device" validate:"required,wallet_address"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type PaymentInput struct {
	Worker       string  `json:"worker" validate:"required,wallet_address"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusMeters uint64  `json:"radius_meters" validate:"required,max=100000"`
	AmountWei    string  `json:"amount_wei" validate:"required,wei"`
}

type ChainUsecase interface {
	Status(ctx context.Context) (*chain.Status, error)
	GetLocation(ctx context.Context, device string) (*chain.Location, error)
	UpdateLocation(ctx context.Context, actor Actor, in *LocationUpdateInput) (*chain.TxResult, error)
	GetPayment(ctx context.Context, id string) (*chain.Payment, error)
	CreatePayment(ctx context.Context, actor Actor, in *PaymentInput) (*chain.TxResult, error)
	ReleasePayment(ctx context.Context, actor Actor, id string) (*chain.TxResult, error)
	FundJobPosting(ctx context.Context, actor Actor, jobPostingID int64, worker string) (*chain.TxResult, error)
}
