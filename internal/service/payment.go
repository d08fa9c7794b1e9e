package service

import (
	"context"
	"fmt"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository"
)

type paymentService struct {
	jobRepo     repository.JobRepository
	profileRepo repository.ProfileRepository
	txRunner    repository.TxRunner
	emailSvc    EmailService // nil disables receipts
}

func NewPaymentService(
	jobRepo repository.JobRepository,
	profileRepo repository.ProfileRepository,
	txRunner repository.TxRunner,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		txRunner:    txRunner,
		emailSvc:    emailSvc,
	}
}

func (s *paymentService) PayJob(ctx context.Context, actor *domain.Profile, jobID int64) error {
	if jobID <= 0 {
		return fmt.Errorf("%w: job id must be positive", domain.ErrValidation)
	}

	jc, err := s.jobRepo.FindWithContract(ctx, jobID)
	if err != nil {
		return err
	}
	// A job the actor is not party to looks identical to a missing one.
	if jc.ClientID != actor.ID && jc.ContractorID != actor.ID {
		return domain.ErrNotFound
	}
	if jc.ContractStatus == domain.ContractStatusTerminated {
		return domain.ErrNotFound
	}
	if jc.Paid {
		return domain.ErrAlreadyPaid
	}

	client, err := s.profileRepo.GetByID(ctx, jc.ClientID)
	if err != nil {
		return err
	}
	if client.BalanceCents < jc.PriceCents {
		return domain.ErrInsufficientFunds
	}

	// The pre-checks above give friendly errors; correctness under
	// concurrent calls comes from the guarded statements inside the
	// transaction. Debit, credit and the paid flag commit together or
	// not at all.
	paymentDate := time.Now().UTC()
	err = s.txRunner.InTransaction(ctx, func(tx repository.LedgerTx) error {
		if err := tx.DecrementBalance(ctx, jc.ClientID, jc.PriceCents); err != nil {
			return err
		}
		if err := tx.IncrementBalance(ctx, jc.ContractorID, jc.PriceCents); err != nil {
			return err
		}
		return tx.MarkJobPaid(ctx, jobID, paymentDate)
	})
	if err != nil {
		return err
	}

	logger.Info("Job paid", "jobID", jobID, "clientID", jc.ClientID,
		"contractorID", jc.ContractorID, "amountCents", jc.PriceCents)

	s.sendReceipt(ctx, jc)
	return nil
}

// sendReceipt emails the contractor best-effort; delivery failures never
// affect an already committed payment.
func (s *paymentService) sendReceipt(ctx context.Context, jc *domain.JobWithContract) {
	if s.emailSvc == nil {
		return
	}
	contractor, err := s.profileRepo.GetByID(ctx, jc.ContractorID)
	if err != nil || contractor.Email == "" {
		return
	}
	if err := s.emailSvc.SendPaymentReceipt(ctx, contractor.Email, contractor.FullName(), jc.Description, jc.PriceCents); err != nil {
		logger.Warn("Payment receipt delivery failed", "jobID", jc.ID, "contractorID", jc.ContractorID, "error", err)
	}
}
