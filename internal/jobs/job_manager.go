package jobs

import (
	"fmt"
	"log/slog"

	"lastmile/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	otpCleanupJob *OTPCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeExpiredOTPsHandler commands.PurgeExpiredOTPsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		otpCleanupJob: NewOTPCleanupJob(purgeExpiredOTPsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.otpCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start OTP cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.otpCleanupJob.Stop()
}
