package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/tracking"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sweepJob *SubscriberSweepJob
	statsJob *TrackingStatsJob
}

// NewJobManager creates the jobs that maintain the order tracking connections.
func NewJobManager(
	registry *tracking.Registry,
	manager *tracking.Manager,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sweepJob: NewSubscriberSweepJob(manager, logger),
		statsJob: NewTrackingStatsJob(registry, manager, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start subscriber sweep job: %w", err)
	}

	if err := jm.statsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sweepJob.Stop()
		return fmt.Errorf("failed to start tracking stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.statsJob.Stop()
	jm.sweepJob.Stop()
}
