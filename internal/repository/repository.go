package repository

import (
	"context"
	"time"

	"gigledger-backend/internal/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error)
}

type ContractRepository interface {
	// GetByIDForParty returns the contract only if the profile is its
	// client or its contractor.
	GetByIDForParty(ctx context.Context, id, profileID int64) (*domain.Contract, error)
	ListActiveByParty(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

type JobRepository interface {
	// FindUnpaidForParty returns unpaid jobs on non-terminated contracts
	// where the profile is client or contractor.
	FindUnpaidForParty(ctx context.Context, profileID int64) ([]domain.Job, error)
	FindWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error)
	// PaidInWindow returns paid jobs with payment_date in [start, end],
	// inclusive on both ends.
	PaidInWindow(ctx context.Context, start, end time.Time) ([]domain.PaidJobRow, error)
}

// LedgerTx is the set of mutations available inside a store transaction.
// The balance guards live in the statements themselves: a decrement that
// would drive a balance negative and a mark-paid on an already paid job
// both affect zero rows and surface as domain errors.
type LedgerTx interface {
	IncrementBalance(ctx context.Context, profileID, amountCents int64) error
	DecrementBalance(ctx context.Context, profileID, amountCents int64) error
	MarkJobPaid(ctx context.Context, jobID int64, paymentDate time.Time) error
	UnpaidTotalCentsForParty(ctx context.Context, profileID int64) (int64, error)
}

// TxRunner scopes a function to a single store transaction. Rollback is
// guaranteed on error or panic, commit otherwise.
type TxRunner interface {
	InTransaction(ctx context.Context, fn func(tx LedgerTx) error) error
}
