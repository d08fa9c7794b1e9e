package service

import (
	"context"
	"time"

	"gigledger-backend/internal/domain"
)

type BalanceService interface {
	// Deposit adds amountCents to the target profile's balance, capped at
	// 25% of the target's currently unpaid job total.
	Deposit(ctx context.Context, actor *domain.Profile, targetProfileID, amountCents int64) error
}

type PaymentService interface {
	// PayJob moves the job's price from the client's balance to the
	// contractor's balance and marks the job paid, atomically.
	PayJob(ctx context.Context, actor *domain.Profile, jobID int64) error
}

type ReportingService interface {
	// BestProfession returns the profession that earned the most over paid
	// jobs in the inclusive window. Zero start/end default to the epoch
	// and now.
	BestProfession(ctx context.Context, start, end time.Time) (string, error)
	// BestClients returns the top clients by amount paid in the window,
	// ordered descending, truncated to limit.
	BestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.BestClient, error)
}

type ContractService interface {
	GetContract(ctx context.Context, actor *domain.Profile, id int64) (*domain.Contract, error)
	ListContracts(ctx context.Context, actor *domain.Profile) ([]domain.Contract, error)
}

type JobService interface {
	ListUnpaidJobs(ctx context.Context, actor *domain.Profile) ([]domain.Job, error)
}

type EmailService interface {
	SendPaymentReceipt(ctx context.Context, toEmail, toName, jobDescription string, amountCents int64) error
}
