package jobs

import (
	"database/sql"

	"toolkeeper-backend/internal/config"
	"toolkeeper-backend/internal/logger"
	"toolkeeper-backend/internal/metrics"
	"toolkeeper-backend/internal/repository/postgres"
	"toolkeeper-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db       *sql.DB
	store    *postgres.Store
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email service.EmailService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:       db,
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func() error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.IncJobRun(jobName, "panic")
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(); err != nil {
		metrics.IncJobRun(jobName, "error")
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	metrics.IncJobRun(jobName, "success")
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.MarkOverdueBookings()
	jr.SendMaintenanceReminders()
	jr.SendLowStockReport()
}
