package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "gigledger-backend/internal/api/http"
	"gigledger-backend/internal/config"
	"gigledger-backend/internal/jobs"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/repository/postgres"
	"gigledger-backend/internal/scheduler"
	"gigledger-backend/internal/security"
	"gigledger-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GigLedger backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TokenExpiryMinutes)*time.Minute)

	// Payment receipts are optional: no API key, no emails
	var emailSvc service.EmailService
	if cfg.Email.SendGridAPIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
		logger.Info("Payment receipt emails enabled", "from", cfg.Email.FromEmail)
	}

	// Initialize Services
	contractSvc := service.NewContractService(store.ContractRepository)
	jobSvc := service.NewJobService(store.JobRepository)
	balanceSvc := service.NewBalanceService(store.ProfileRepository, store.TxRunner)
	paymentSvc := service.NewPaymentService(store.JobRepository, store.ProfileRepository, store.TxRunner, emailSvc)
	reportingSvc := service.NewReportingService(store.JobRepository, store.ProfileRepository)

	// Initialize HTTP layer
	resolver := httpapi.NewActorResolver(store.ProfileRepository, tokenManager)
	handler := httpapi.NewHandler(contractSvc, jobSvc, balanceSvc, paymentSvc, reportingSvc)
	router := httpapi.NewRouter(handler, resolver)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(reportingSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
