package usecase_test

import (
	"context"
	"math/big"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/chain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id string, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

type MockMediatorRepo struct {
	mock.Mock
}

func (m *MockMediatorRepo) Create(ctx context.Context, med *domain.Mediator) error {
	return m.Called(ctx, med).Error(0)
}
func (m *MockMediatorRepo) GetByID(ctx context.Context, id string) (*domain.Mediator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mediator), args.Error(1)
}
func (m *MockMediatorRepo) List(ctx context.Context, filter domain.MediatorFilter) ([]domain.Mediator, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Mediator), args.Get(1).(int64), args.Error(2)
}
func (m *MockMediatorRepo) Update(ctx context.Context, med *domain.Mediator) error {
	return m.Called(ctx, med).Error(0)
}
func (m *MockMediatorRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockMediatorRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Upsert(ctx context.Context, e *domain.Employee) error {
	return m.Called(ctx, e).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.Employer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerRepo) Upsert(ctx context.Context, e *domain.Employer) error {
	return m.Called(ctx, e).Error(0)
}

type MockJobPostingRepo struct {
	mock.Mock
}

func (m *MockJobPostingRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobPostingRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobPostingRepo) List(ctx context.Context, filter domain.JobPostingFilter) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobPostingRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobPostingRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockJobPostingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Create(ctx context.Context, s *domain.SavedJob) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockSavedJobRepo) Get(ctx context.Context, employeeID, jobPostingID int64) (*domain.SavedJob, error) {
	args := m.Called(ctx, employeeID, jobPostingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedJob), args.Error(1)
}
func (m *MockSavedJobRepo) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]domain.SavedJob, int64, error) {
	args := m.Called(ctx, employeeID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.SavedJob), args.Get(1).(int64), args.Error(2)
}
func (m *MockSavedJobRepo) Delete(ctx context.Context, employeeID, jobPostingID int64) error {
	return m.Called(ctx, employeeID, jobPostingID).Error(0)
}

type MockChainGateway struct {
	mock.Mock
}

func (m *MockChainGateway) Status(ctx context.Context) (*chain.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Status), args.Error(1)
}
func (m *MockChainGateway) GetLocation(ctx context.Context, device string) (*chain.Location, error) {
	args := m.Called(ctx, device)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Location), args.Error(1)
}
func (m *MockChainGateway) UpdateLocation(ctx context.Context, device string, latitude, longitude float64) (*chain.TxResult, error) {
	args := m.Called(ctx, device, latitude, longitude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.TxResult), args.Error(1)
}
func (m *MockChainGateway) GetPayment(ctx context.Context, id *big.Int) (*chain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Payment), args.Error(1)
}
func (m *MockChainGateway) CreatePayment(ctx context.Context, in chain.CreatePaymentInput) (*chain.TxResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.TxResult), args.Error(1)
}
func (m *MockChainGateway) ReleasePayment(ctx context.Context, id *big.Int) (*chain.TxResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.TxResult), args.Error(1)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
