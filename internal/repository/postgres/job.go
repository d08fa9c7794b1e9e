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

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) FindUnpaidForParty(ctx context.Context, profileID int64) ([]domain.Job, error) {
	logger.EnterMethod("jobRepository.FindUnpaidForParty", "profileID", profileID)

	// paid may be NULL on legacy rows; both NULL and FALSE count as unpaid.
	query := `
		SELECT j.id, j.contract_id, COALESCE(j.description, ''), j.price_cents,
		       COALESCE(j.paid, FALSE), j.payment_date
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE (c.client_id = $1 OR c.contractor_id = $1)
		  AND c.status <> 'terminated'
		  AND COALESCE(j.paid, FALSE) = FALSE
		ORDER BY j.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		logger.ExitMethodWithError("jobRepository.FindUnpaidForParty", err, "profileID", profileID)
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		var paymentDate sql.NullTime
		if err := rows.Scan(&j.ID, &j.ContractID, &j.Description, &j.PriceCents, &j.Paid, &paymentDate); err != nil {
			logger.ExitMethodWithError("jobRepository.FindUnpaidForParty", err, "profileID", profileID)
			return nil, err
		}
		if paymentDate.Valid {
			j.PaymentDate = &paymentDate.Time
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("jobRepository.FindUnpaidForParty", "profileID", profileID, "count", len(jobs))
	return jobs, nil
}

func (r *jobRepository) FindWithContract(ctx context.Context, jobID int64) (*domain.JobWithContract, error) {
	logger.EnterMethod("jobRepository.FindWithContract", "jobID", jobID)

	query := `
		SELECT j.id, j.contract_id, COALESCE(j.description, ''), j.price_cents,
		       COALESCE(j.paid, FALSE), j.payment_date,
		       c.client_id, c.contractor_id, c.status
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1
	`

	jc := &domain.JobWithContract{}
	var paymentDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, jobID).Scan(
		&jc.ID, &jc.ContractID, &jc.Description, &jc.PriceCents, &jc.Paid, &paymentDate,
		&jc.ClientID, &jc.ContractorID, &jc.ContractStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("jobRepository.FindWithContract", err, "jobID", jobID)
		return nil, err
	}
	if paymentDate.Valid {
		jc.PaymentDate = &paymentDate.Time
	}

	logger.ExitMethod("jobRepository.FindWithContract", "jobID", jobID)
	return jc, nil
}

func (r *jobRepository) PaidInWindow(ctx context.Context, start, end time.Time) ([]domain.PaidJobRow, error) {
	logger.EnterMethod("jobRepository.PaidInWindow", "start", start, "end", end)

	// BETWEEN keeps both bounds inclusive.
	query := `
		SELECT j.price_cents, c.contractor_id, c.client_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = TRUE AND j.payment_date BETWEEN $1 AND $2
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		logger.ExitMethodWithError("jobRepository.PaidInWindow", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.PaidJobRow{}
	for rows.Next() {
		var row domain.PaidJobRow
		if err := rows.Scan(&row.PriceCents, &row.ContractorID, &row.ClientID); err != nil {
			logger.ExitMethodWithError("jobRepository.PaidInWindow", err)
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("jobRepository.PaidInWindow", "count", len(result))
	return result, nil
}
