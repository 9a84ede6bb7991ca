package usecase

import (
	"context"
	"errors"
	"math/big"
	"net/http"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/chain"
	"go-jobboard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const noWalletProvider = "No wallet provider configured"

type chainUsecase struct {
	gateway      domain.ChainGateway
	jobRepo      domain.JobPostingRepository
	employerRepo domain.EmployerRepository
	validate     *validator.Validate
	audit        *audit.Logger
}

// NewChainUsecase accepts a nil gateway; every operation then reports a
// missing wallet provider without touching the network.
func NewChainUsecase(
	gateway domain.ChainGateway,
	jobRepo domain.JobPostingRepository,
	employerRepo domain.EmployerRepository,
	validate *validator.Validate,
	auditLogger *audit.Logger,
) domain.ChainUsecase {
	if auditLogger == nil {
		auditLogger = audit.Default()
	}
	return &chainUsecase{
		gateway:      gateway,
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		validate:     validate,
		audit:        auditLogger,
	}
}

// mapChainError converts chain client errors into HTTP-aware errors.
func mapChainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, chain.ErrNotConfigured),
		errors.Is(err, chain.ErrReadOnly),
		errors.Is(err, chain.ErrContractNotConfigured):
		return apperror.ServiceUnavailable(noWalletProvider, err)
	case errors.Is(err, chain.ErrInvalidAddress):
		return apperror.New(http.StatusBadRequest, "Invalid address", err)
	default:
		return apperror.New(http.StatusBadGateway, "Blockchain request failed", err)
	}
}

func (u *chainUsecase) ready() error {
	if u.gateway == nil {
		logger.Log.Warn("chain call skipped", "reason", "no wallet provider configured")
		return apperror.ServiceUnavailable(noWalletProvider, chain.ErrNotConfigured)
	}
	return nil
}

func (u *chainUsecase) canTransact(actor domain.Actor) error {
	if err := requireUser(actor); err != nil {
		return err
	}
	if !actor.HasRole(domain.RoleEmployer) {
		return apperror.Forbidden("Only employers and admins can submit transactions")
	}
	return u.ready()
}

// submitted audits the outcome of a transaction attempt and maps its error.
func (u *chainUsecase) submitted(ctx context.Context, actor domain.Actor, contract, method string, tx *chain.TxResult, err error) (*chain.TxResult, error) {
	if err != nil {
		u.audit.ChainTxFailed(ctx, actor.UserID, actor.RequestID, contract, method, err)
		return nil, mapChainError(err)
	}
	u.audit.ChainTxSubmitted(ctx, actor.UserID, actor.RequestID, contract, method, tx.Hash)
	return tx, nil
}

func (u *chainUsecase) Status(ctx context.Context) (*chain.Status, error) {
	if u.gateway == nil {
		return &chain.Status{}, nil
	}
	st, err := u.gateway.Status(ctx)
	if err != nil {
		// Partial status still tells the client which contracts are bound.
		logger.Log.Warn("chain status unavailable", "error", err)
		if st != nil {
			return st, nil
		}
		return nil, mapChainError(err)
	}
	return st, nil
}

func (u *chainUsecase) GetLocation(ctx context.Context, device string) (*chain.Location, error) {
	if err := u.ready(); err != nil {
		return nil, err
	}
	loc, err := u.gateway.GetLocation(ctx, device)
	if err != nil {
		return nil, mapChainError(err)
	}
	return loc, nil
}

func (u *chainUsecase) UpdateLocation(ctx context.Context, actor domain.Actor, in *domain.LocationUpdateInput) (*chain.TxResult, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	if err := u.canTransact(actor); err != nil {
		return nil, err
	}
	tx, err := u.gateway.UpdateLocation(ctx, in.Device, in.Latitude, in.Longitude)
	return u.submitted(ctx, actor, chain.ContractGPSOracle, "updateLocation", tx, err)
}

func parsePaymentID(id string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(id, 10)
	if !ok || n.Sign() < 0 {
		return nil, apperror.BadRequest("Invalid payment ID")
	}
	return n, nil
}

func (u *chainUsecase) GetPayment(ctx context.Context, id string) (*chain.Payment, error) {
	n, err := parsePaymentID(id)
	if err != nil {
		return nil, err
	}
	if err := u.ready(); err != nil {
		return nil, err
	}
	p, err := u.gateway.GetPayment(ctx, n)
	if err != nil {
		return nil, mapChainError(err)
	}
	return p, nil
}

func (u *chainUsecase) CreatePayment(ctx context.Context, actor domain.Actor, in *domain.PaymentInput) (*chain.TxResult, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	amount, ok := new(big.Int).SetString(in.AmountWei, 10)
	if !ok || amount.Sign() <= 0 {
		return nil, apperror.BadRequest("amount_wei must be a positive integer")
	}
	if err := u.canTransact(actor); err != nil {
		return nil, err
	}

	tx, err := u.gateway.CreatePayment(ctx, chain.CreatePaymentInput{
		Worker:       in.Worker,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: in.RadiusMeters,
		AmountWei:    amount,
	})
	return u.submitted(ctx, actor, chain.ContractGPSPayment, "createPayment", tx, err)
}

func (u *chainUsecase) ReleasePayment(ctx context.Context, actor domain.Actor, id string) (*chain.TxResult, error) {
	n, err := parsePaymentID(id)
	if err != nil {
		return nil, err
	}
	if err := u.canTransact(actor); err != nil {
		return nil, err
	}
	tx, err := u.gateway.ReleasePayment(ctx, n)
	return u.submitted(ctx, actor, chain.ContractGPSPayment, "releasePayment", tx, err)
}

// FundJobPosting escrows the posting's payment_wei for worker, bound to the
// posting's coordinates and radius.
func (u *chainUsecase) FundJobPosting(ctx context.Context, actor domain.Actor, jobPostingID int64, worker string) (*chain.TxResult, error) {
	if err := u.canTransact(actor); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		return nil, notFoundAs(err, "Job posting not found")
	}
	if !actor.IsAdmin() {
		employer, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, notFoundAs(err, "Employer profile not found")
		}
		if employer.ID != job.EmployerID {
			return nil, apperror.Forbidden("You can only fund your own job postings")
		}
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("Job posting is closed")
	}
	if !job.HasCoordinates() || job.RadiusMeters <= 0 {
		return nil, apperror.BadRequest("Job posting has no GPS area")
	}
	if job.PaymentWei == nil {
		return nil, apperror.BadRequest("Job posting has no payment amount")
	}

	return u.CreatePayment(ctx, actor, &domain.PaymentInput{
		Worker:       worker,
		Latitude:     *job.Latitude,
		Longitude:    *job.Longitude,
		RadiusMeters: uint64(job.RadiusMeters),
		AmountWei:    *job.PaymentWei,
	})
}
