package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository"
)

type txRunner struct {
	db *sql.DB
}

func NewTxRunner(db *sql.DB) repository.TxRunner {
	return &txRunner{db: db}
}

// InTransaction runs fn inside a single database transaction. The
// transaction is rolled back when fn returns an error or panics, and
// committed otherwise. A rollback failure is logged but never replaces
// the error that caused it.
func (r *txRunner) InTransaction(ctx context.Context, fn func(tx repository.LedgerTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Error("Rollback after panic failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(&ledgerTx{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.Error("Transaction rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

type ledgerTx struct {
	tx *sql.Tx
}

func (t *ledgerTx) IncrementBalance(ctx context.Context, profileID, amountCents int64) error {
	query := `UPDATE profiles SET balance_cents = balance_cents + $2 WHERE id = $1`
	res, err := t.tx.ExecContext(ctx, query, profileID, amountCents)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementBalance refuses to drive a balance negative: the guard sits in
// the WHERE clause so concurrent debits serialize on the row.
func (t *ledgerTx) DecrementBalance(ctx context.Context, profileID, amountCents int64) error {
	query := `UPDATE profiles SET balance_cents = balance_cents - $2 WHERE id = $1 AND balance_cents >= $2`
	res, err := t.tx.ExecContext(ctx, query, profileID, amountCents)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// MarkJobPaid flips the paid flag exactly once. A second attempt matches
// zero rows and reports the job as already paid.
func (t *ledgerTx) MarkJobPaid(ctx context.Context, jobID int64, paymentDate time.Time) error {
	query := `UPDATE jobs SET paid = TRUE, payment_date = $2 WHERE id = $1 AND COALESCE(paid, FALSE) = FALSE`
	res, err := t.tx.ExecContext(ctx, query, jobID, paymentDate)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyPaid
	}
	return nil
}

func (t *ledgerTx) UnpaidTotalCentsForParty(ctx context.Context, profileID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(j.price_cents), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE (c.client_id = $1 OR c.contractor_id = $1)
		  AND c.status <> 'terminated'
		  AND COALESCE(j.paid, FALSE) = FALSE
	`
	var total int64
	err := t.tx.QueryRowContext(ctx, query, profileID).Scan(&total)
	return total, err
}
