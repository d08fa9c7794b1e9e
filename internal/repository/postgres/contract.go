package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetByIDForParty(ctx context.Context, id, profileID int64) (*domain.Contract, error) {
	logger.EnterMethod("contractRepository.GetByIDForParty", "contractID", id, "profileID", profileID)

	query := `
		SELECT id, client_id, contractor_id, COALESCE(terms, ''), status
		FROM contracts
		WHERE id = $1 AND (client_id = $2 OR contractor_id = $2)
	`

	c := &domain.Contract{}
	err := r.db.QueryRowContext(ctx, query, id, profileID).Scan(
		&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &c.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("contractRepository.GetByIDForParty", err, "contractID", id)
		return nil, err
	}

	logger.ExitMethod("contractRepository.GetByIDForParty", "contractID", id)
	return c, nil
}

func (r *contractRepository) ListActiveByParty(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	logger.EnterMethod("contractRepository.ListActiveByParty", "profileID", profileID)

	query := `
		SELECT id, client_id, contractor_id, COALESCE(terms, ''), status
		FROM contracts
		WHERE (client_id = $1 OR contractor_id = $1) AND status <> 'terminated'
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		logger.ExitMethodWithError("contractRepository.ListActiveByParty", err, "profileID", profileID)
		return nil, err
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &c.Status); err != nil {
			logger.ExitMethodWithError("contractRepository.ListActiveByParty", err, "profileID", profileID)
			return nil, err
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("contractRepository.ListActiveByParty", "profileID", profileID, "count", len(contracts))
	return contracts, nil
}
