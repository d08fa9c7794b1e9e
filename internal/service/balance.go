package service

import (
	"context"
	"fmt"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository"
)

type balanceService struct {
	profileRepo repository.ProfileRepository
	txRunner    repository.TxRunner
}

func NewBalanceService(profileRepo repository.ProfileRepository, txRunner repository.TxRunner) BalanceService {
	return &balanceService{profileRepo: profileRepo, txRunner: txRunner}
}

func (s *balanceService) Deposit(ctx context.Context, actor *domain.Profile, targetProfileID, amountCents int64) error {
	if targetProfileID <= 0 {
		return fmt.Errorf("%w: target profile id must be positive", domain.ErrValidation)
	}
	if amountCents <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive", domain.ErrValidation)
	}

	if _, err := s.profileRepo.GetByID(ctx, targetProfileID); err != nil {
		return err
	}

	// The unpaid total and the increment share one transaction so
	// concurrent deposits are evaluated against a snapshot no older than
	// the mutation they guard.
	err := s.txRunner.InTransaction(ctx, func(tx repository.LedgerTx) error {
		totalDue, err := tx.UnpaidTotalCentsForParty(ctx, targetProfileID)
		if err != nil {
			return err
		}
		// Cap is 25% of the amount currently due; compare in integer
		// cents to avoid float rounding.
		if amountCents*4 > totalDue {
			return domain.ErrLimitExceeded
		}
		return tx.IncrementBalance(ctx, targetProfileID, amountCents)
	})
	if err != nil {
		return err
	}

	logger.Info("Deposit applied", "actorID", actor.ID, "targetID", targetProfileID, "amountCents", amountCents)
	return nil
}
