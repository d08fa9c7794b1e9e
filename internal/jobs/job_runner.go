package jobs

import (
	"gigledger-backend/internal/config"
	"gigledger-backend/internal/logger"
	"gigledger-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	reports service.ReportingService
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(reports service.ReportingService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		reports: reports,
		config:  cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
