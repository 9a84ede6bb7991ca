package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/chain"
	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testWorker = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"

type chainFixture struct {
	gateway   *MockChainGateway
	jobs      *MockJobPostingRepo
	employers *MockEmployerRepo
	logs      *observer.ObservedLogs
	uc        domain.ChainUsecase
}

func newChainFixture() *chainFixture {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &chainFixture{
		gateway:   new(MockChainGateway),
		jobs:      new(MockJobPostingRepo),
		employers: new(MockEmployerRepo),
		logs:      logs,
	}
	f.uc = usecase.NewChainUsecase(f.gateway, f.jobs, f.employers, validation.New(), audit.New(zap.New(core), "test", "test"))
	return f
}

func TestChainWithoutProvider(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewChainUsecase(nil, nil, nil, validation.New(), nil)

	st, err := uc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.Connected)

	_, err = uc.GetLocation(ctx, testWorker)
	assert.Equal(t, 503, apperror.CodeOf(err))
	assert.EqualError(t, err, "No wallet provider configured")

	_, err = uc.ReleasePayment(ctx, employerActor, "1")
	assert.Equal(t, 503, apperror.CodeOf(err))
}

func TestChainErrorMapping(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"read only", chain.ErrReadOnly, 503},
		{"missing contract", chain.ErrContractNotConfigured, 503},
		{"bad address", chain.ErrInvalidAddress, 400},
		{"rpc failure", errors.New("execution reverted"), 502},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newChainFixture()
			f.gateway.On("GetLocation", ctx, testWorker).Return(nil, tc.err)
			_, err := f.uc.GetLocation(ctx, testWorker)
			assert.Equal(t, tc.code, apperror.CodeOf(err))
		})
	}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	in := &domain.PaymentInput{
		Worker: testWorker, Latitude: -6.2, Longitude: 106.8, RadiusMeters: 150, AmountWei: "1000",
	}

	t.Run("Should submit and audit", func(t *testing.T) {
		f := newChainFixture()
		f.gateway.On("CreatePayment", ctx, chain.CreatePaymentInput{
			Worker: testWorker, Latitude: -6.2, Longitude: 106.8, RadiusMeters: 150, AmountWei: big.NewInt(1000),
		}).Return(&chain.TxResult{Hash: "0xabc", Method: "createPayment"}, nil)

		tx, err := f.uc.CreatePayment(ctx, employerActor, in)
		require.NoError(t, err)
		assert.Equal(t, "0xabc", tx.Hash)
		require.Equal(t, 1, f.logs.Len())
		assert.Equal(t, string(audit.EventChainTxSubmitted), f.logs.All()[0].Message)
	})

	t.Run("Should audit failures", func(t *testing.T) {
		f := newChainFixture()
		f.gateway.On("CreatePayment", ctx, mock.Anything).Return(nil, errors.New("insufficient funds"))

		_, err := f.uc.CreatePayment(ctx, employerActor, in)
		assert.Equal(t, 502, apperror.CodeOf(err))
		require.Equal(t, 1, f.logs.Len())
		assert.Equal(t, string(audit.EventChainTxFailed), f.logs.All()[0].Message)
	})

	t.Run("Should forbid employees", func(t *testing.T) {
		f := newChainFixture()
		_, err := f.uc.CreatePayment(ctx, employeeActor, in)
		assert.Equal(t, 403, apperror.CodeOf(err))
	})

	t.Run("Should reject zero amount", func(t *testing.T) {
		f := newChainFixture()
		bad := *in
		bad.AmountWei = "0"
		_, err := f.uc.CreatePayment(ctx, employerActor, &bad)
		assert.Equal(t, 400, apperror.CodeOf(err))
		f.gateway.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})
}

func TestGetPaymentParsesID(t *testing.T) {
	ctx := context.Background()
	f := newChainFixture()

	_, err := f.uc.GetPayment(ctx, "abc")
	assert.Equal(t, 400, apperror.CodeOf(err))

	f.gateway.On("GetPayment", ctx, big.NewInt(12)).Return(&chain.Payment{ID: "12"}, nil)
	p, err := f.uc.GetPayment(ctx, "12")
	require.NoError(t, err)
	assert.Equal(t, "12", p.ID)
}

func TestFundJobPosting(t *testing.T) {
	ctx := context.Background()
	wei := "5000"
	job := &domain.JobPosting{
		ID: 3, EmployerID: 7, Status: domain.JobStatusOpen,
		Latitude: floatPtr(-6.2), Longitude: floatPtr(106.8), RadiusMeters: 250, PaymentWei: &wei,
	}

	t.Run("Should use posting coordinates and amount", func(t *testing.T) {
		f := newChainFixture()
		f.jobs.On("GetByID", ctx, int64(3)).Return(job, nil)
		f.employers.On("GetByUserID", ctx, employerActor.UserID).Return(&domain.Employer{ID: 7}, nil)
		f.gateway.On("CreatePayment", ctx, chain.CreatePaymentInput{
			Worker: testWorker, Latitude: -6.2, Longitude: 106.8, RadiusMeters: 250, AmountWei: big.NewInt(5000),
		}).Return(&chain.TxResult{Hash: "0xdef"}, nil)

		tx, err := f.uc.FundJobPosting(ctx, employerActor, 3, testWorker)
		require.NoError(t, err)
		assert.Equal(t, "0xdef", tx.Hash)
	})

	t.Run("Should forbid funding another employer's posting", func(t *testing.T) {
		f := newChainFixture()
		f.jobs.On("GetByID", ctx, int64(3)).Return(job, nil)
		f.employers.On("GetByUserID", ctx, employerActor.UserID).Return(&domain.Employer{ID: 8}, nil)

		_, err := f.uc.FundJobPosting(ctx, employerActor, 3, testWorker)
		assert.Equal(t, 403, apperror.CodeOf(err))
	})

	t.Run("Should require a GPS area", func(t *testing.T) {
		f := newChainFixture()
		noCoords := *job
		noCoords.Latitude = nil
		f.jobs.On("GetByID", ctx, int64(3)).Return(&noCoords, nil)

		_, err := f.uc.FundJobPosting(ctx, adminActor, 3, testWorker)
		assert.Equal(t, 400, apperror.CodeOf(err))
	})
}
