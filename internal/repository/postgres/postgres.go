package postgres

import (
	"database/sql"

	"gigledger-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ProfileRepository
	repository.ContractRepository
	repository.JobRepository
	repository.TxRunner
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ProfileRepository:  NewProfileRepository(db),
		ContractRepository: NewContractRepository(db),
		JobRepository:      NewJobRepository(db),
		TxRunner:           NewTxRunner(db),
	}
}
