package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gigledger-backend/internal/domain"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository"

	"github.com/lib/pq"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	logger.EnterMethod("profileRepository.GetByID", "profileID", id)

	query := `
		SELECT id, type, first_name, last_name, COALESCE(profession, ''), COALESCE(email, ''), balance_cents
		FROM profiles WHERE id = $1
	`

	p := &domain.Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Type, &p.FirstName, &p.LastName, &p.Profession, &p.Email, &p.BalanceCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("profileRepository.GetByID", err, "profileID", id)
		return nil, err
	}

	logger.ExitMethod("profileRepository.GetByID", "profileID", id)
	return p, nil
}

func (r *profileRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	logger.EnterMethod("profileRepository.GetByIDs", "count", len(ids))

	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, type, first_name, last_name, COALESCE(profession, ''), COALESCE(email, ''), balance_cents
		FROM profiles WHERE id = ANY($1)
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		logger.ExitMethodWithError("profileRepository.GetByIDs", err, "count", len(ids))
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Type, &p.FirstName, &p.LastName, &p.Profession, &p.Email, &p.BalanceCents); err != nil {
			logger.ExitMethodWithError("profileRepository.GetByIDs", err, "count", len(ids))
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("profileRepository.GetByIDs", "found", len(profiles))
	return profiles, nil
}
