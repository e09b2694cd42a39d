package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/tracking"

	"github.com/robfig/cron/v3"
)

type (
	registryStats interface {
		Stats() tracking.Stats
	}

	connectionCounter interface {
		ActiveCount() int
	}
)

// TrackingStatsJob logs how many orders are being watched and by how many
// connections.
type TrackingStatsJob struct {
	registry registryStats
	manager  connectionCounter
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTrackingStatsJob(registry registryStats, manager connectionCounter, logger *slog.Logger) *TrackingStatsJob {
	return &TrackingStatsJob{
		registry: registry,
		manager:  manager,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracking_stats_job"),
	}
}

// Start logs the statistics at the top of every minute.
func (j *TrackingStatsJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking stats job started (running every minute)")
	return nil
}

func (j *TrackingStatsJob) run() {
	stats := j.registry.Stats()
	j.logger.InfoContext(context.Background(), "Tracking stats",
		"watched_orders", stats.Topics,
		"subscriptions", stats.Subscribers,
		"connections", j.manager.ActiveCount(),
	)
}

func (j *TrackingStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracking stats job stopped")
}
