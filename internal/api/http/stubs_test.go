package http

import (
	"context"
	"time"

	"gigledger-backend/internal/domain"
)

// Function-valued stubs keep each test case's behavior next to the request
// it drives.

type stubContracts struct {
	get  func(ctx context.Context, actor *domain.Profile, id int64) (*domain.Contract, error)
	list func(ctx context.Context, actor *domain.Profile) ([]domain.Contract, error)
}

func (s *stubContracts) GetContract(ctx context.Context, actor *domain.Profile, id int64) (*domain.Contract, error) {
	return s.get(ctx, actor, id)
}
func (s *stubContracts) ListContracts(ctx context.Context, actor *domain.Profile) ([]domain.Contract, error) {
	return s.list(ctx, actor)
}

type stubJobs struct {
	listUnpaid func(ctx context.Context, actor *domain.Profile) ([]domain.Job, error)
}

func (s *stubJobs) ListUnpaidJobs(ctx context.Context, actor *domain.Profile) ([]domain.Job, error) {
	return s.listUnpaid(ctx, actor)
}

type stubBalances struct {
	deposit func(ctx context.Context, actor *domain.Profile, targetID, amountCents int64) error
}

func (s *stubBalances) Deposit(ctx context.Context, actor *domain.Profile, targetID, amountCents int64) error {
	return s.deposit(ctx, actor, targetID, amountCents)
}

type stubPayments struct {
	pay func(ctx context.Context, actor *domain.Profile, jobID int64) error
}

func (s *stubPayments) PayJob(ctx context.Context, actor *domain.Profile, jobID int64) error {
	return s.pay(ctx, actor, jobID)
}

type stubReports struct {
	bestProfession func(ctx context.Context, start, end time.Time) (string, error)
	bestClients    func(ctx context.Context, start, end time.Time, limit int) ([]domain.BestClient, error)
}

func (s *stubReports) BestProfession(ctx context.Context, start, end time.Time) (string, error) {
	return s.bestProfession(ctx, start, end)
}
func (s *stubReports) BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.BestClient, error) {
	return s.bestClients(ctx, start, end, limit)
}

type stubProfiles struct {
	byID  func(ctx context.Context, id int64) (*domain.Profile, error)
	byIDs func(ctx context.Context, ids []int64) ([]domain.Profile, error)
}

func (s *stubProfiles) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return s.byID(ctx, id)
}
func (s *stubProfiles) GetByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	return s.byIDs(ctx, ids)
}
