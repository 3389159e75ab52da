package jobs

import (
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs. It works against the repository
// interfaces so jobs behave the same on every inventory backend.
type JobRunner struct {
	agreements repository.AgreementRepository
	config     *config.Config
}

func NewJobRunner(agreements repository.AgreementRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		agreements: agreements,
		config:     cfg,
	}
}

// Config returns the configuration the runner was built with
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
