package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

type subscriberSweeper interface {
	Sweep(now time.Time) int
}

// SubscriberSweepJob closes tracking connections that went quiet without a
// proper close, e.g. clients whose network dropped.
type SubscriberSweepJob struct {
	sweeper subscriberSweeper
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

func NewSubscriberSweepJob(sweeper subscriberSweeper, logger *slog.Logger) *SubscriberSweepJob {
	return &SubscriberSweepJob{
		sweeper: sweeper,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "subscriber_sweep_job"),
		now:     time.Now,
	}
}

// Start runs the sweep every 10 seconds.
func (j *SubscriberSweepJob) Start() error {
	if _, err := j.cron.AddFunc("*/10 * * * * *", j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscriber sweep job started (running every 10 seconds)")
	return nil
}

func (j *SubscriberSweepJob) run() {
	if closed := j.sweeper.Sweep(j.now()); closed > 0 {
		j.logger.InfoContext(context.Background(), "Closed idle subscribers", "count", closed)
	}
}

func (j *SubscriberSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Subscriber sweep job stopped")
}
