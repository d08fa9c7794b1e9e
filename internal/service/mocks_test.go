package service

import (
	"context"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepo
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) GetByIDForParty(ctx context.Context, id, profileID int64) (*domain.Contract, error) {
	args := m.Called(ctx, id, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListActiveByParty(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) FindUnpaidForParty(ctx context.Context, profileID int64) ([]domain.Job, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FindWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithContract), args.Error(1)
}
func (m *MockJobRepo) PaidInWindow(ctx context.Context, start, end time.Time) ([]domain.PaidJobRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaidJobRow), args.Error(1)
}

// MockLedgerTx
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) IncrementBalance(ctx context.Context, profileID, amountCents int64) error {
	args := m.Called(ctx, profileID, amountCents)
	return args.Error(0)
}
func (m *MockLedgerTx) DecrementBalance(ctx context.Context, profileID, amountCents int64) error {
	args := m.Called(ctx, profileID, amountCents)
	return args.Error(0)
}
func (m *MockLedgerTx) MarkJobPaid(ctx context.Context, jobID int64, paymentDate time.Time) error {
	args := m.Called(ctx, jobID, paymentDate)
	return args.Error(0)
}
func (m *MockLedgerTx) UnpaidTotalCentsForParty(ctx context.Context, profileID int64) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

// stubTxRunner hands the callback a mock transaction. It mimics the real
// runner's contract: the callback error comes back unchanged.
type stubTxRunner struct {
	tx       repository.LedgerTx
	beginErr error
}

func (s *stubTxRunner) InTransaction(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	if s.beginErr != nil {
		return s.beginErr
	}
	return fn(s.tx)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, toEmail, toName, jobDescription string, amountCents int64) error {
	args := m.Called(ctx, toEmail, toName, jobDescription, amountCents)
	return args.Error(0)
}
