package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	"gigledger-backend/internal/config"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type Profile struct {
	Type         string `yaml:"type"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	Profession   string `yaml:"profession"`
	Email        string `yaml:"email"`
	BalanceCents int64  `yaml:"balance_cents"`
}

type Contract struct {
	Client     int    `yaml:"client"`     // 1-based index into profiles
	Contractor int    `yaml:"contractor"` // 1-based index into profiles
	Terms      string `yaml:"terms"`
	Status     string `yaml:"status"`
}

type Job struct {
	Contract    int    `yaml:"contract"` // 1-based index into contracts
	Description string `yaml:"description"`
	PriceCents  int64  `yaml:"price_cents"`
	Paid        bool   `yaml:"paid"`
	PaymentDate string `yaml:"payment_date"` // RFC 3339, empty for unpaid
}

type SeedData struct {
	Profiles  []Profile  `yaml:"profiles"`
	Contracts []Contract `yaml:"contracts"`
	Jobs      []Job      `yaml:"jobs"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "config/seed.dev.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed, err := readSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := populate(db, seed); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("Seed data successfully loaded")
}

func readSeedFile(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// populate loads the whole fixture in one transaction so a partial seed
// never survives a failure.
func populate(db *sql.DB, seed *SeedData) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	profileIDs := make([]int64, len(seed.Profiles))
	for i, p := range seed.Profiles {
		err := tx.QueryRow(
			`INSERT INTO profiles (type, first_name, last_name, profession, email, balance_cents)
			 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6) RETURNING id`,
			p.Type, p.FirstName, p.LastName, p.Profession, p.Email, p.BalanceCents,
		).Scan(&profileIDs[i])
		if err != nil {
			return err
		}
	}

	contractIDs := make([]int64, len(seed.Contracts))
	for i, c := range seed.Contracts {
		err := tx.QueryRow(
			`INSERT INTO contracts (client_id, contractor_id, terms, status)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			profileIDs[c.Client-1], profileIDs[c.Contractor-1], c.Terms, c.Status,
		).Scan(&contractIDs[i])
		if err != nil {
			return err
		}
	}

	for _, j := range seed.Jobs {
		var paymentDate *time.Time
		if j.PaymentDate != "" {
			t, err := time.Parse(time.RFC3339, j.PaymentDate)
			if err != nil {
				return err
			}
			paymentDate = &t
		}
		_, err := tx.Exec(
			`INSERT INTO jobs (contract_id, description, price_cents, paid, payment_date)
			 VALUES ($1, $2, $3, $4, $5)`,
			contractIDs[j.Contract-1], j.Description, j.PriceCents, j.Paid, paymentDate,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
