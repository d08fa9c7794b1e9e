package postgres

import (
	"context"
	"testing"
	"time"

	"gigledger-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestJobRepository_FindUnpaidForParty(t *testing.T) {
	ctx := context.Background()

	t.Run("NULL and FALSE both count as unpaid", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewJobRepository(db)

		mock.ExpectQuery(`COALESCE\(j\.paid, FALSE\) = FALSE`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "contract_id", "description", "price_cents", "paid", "payment_date"}).
				AddRow(1, 1, "work", 20000, false, nil).
				AddRow(2, 2, "work", 20100, false, nil))

		jobs, err := repo.FindUnpaidForParty(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.False(t, jobs[0].Paid)
		assert.Nil(t, jobs[0].PaymentDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No unpaid work yields an empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewJobRepository(db)

		mock.ExpectQuery(`COALESCE\(j\.paid, FALSE\) = FALSE`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "contract_id", "description", "price_cents", "paid", "payment_date"}))

		jobs, err := repo.FindUnpaidForParty(ctx, 4)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobRepository_FindWithContract(t *testing.T) {
	ctx := context.Background()

	t.Run("Joins contract parties and status", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewJobRepository(db)

		paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)
		mock.ExpectQuery(`WHERE j\.id = \$1`).
			WithArgs(int64(6)).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "contract_id", "description", "price_cents", "paid", "payment_date",
				"client_id", "contractor_id", "status",
			}).AddRow(6, 2, "work", 2100, true, paidAt, 1, 6, "in_progress"))

		jc, err := repo.FindWithContract(ctx, 6)
		assert.NoError(t, err)
		assert.True(t, jc.Paid)
		assert.Equal(t, paidAt, *jc.PaymentDate)
		assert.Equal(t, int64(1), jc.ClientID)
		assert.Equal(t, int64(6), jc.ContractorID)
		assert.Equal(t, domain.ContractStatusInProgress, jc.ContractStatus)
	})

	t.Run("Unknown job maps to not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewJobRepository(db)

		mock.ExpectQuery(`WHERE j\.id = \$1`).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err = repo.FindWithContract(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestJobRepository_PaidInWindow(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewJobRepository(db)

	start := time.Date(2020, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`j\.payment_date BETWEEN \$1 AND \$2`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"price_cents", "contractor_id", "client_id"}).
			AddRow(2100, 6, 1).
			AddRow(2100, 6, 2))

	rows, err := repo.PaidInWindow(ctx, start, end)
	assert.NoError(t, err)
	assert.Equal(t, []domain.PaidJobRow{
		{PriceCents: 2100, ContractorID: 6, ClientID: 1},
		{PriceCents: 2100, ContractorID: 6, ClientID: 2},
	}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
