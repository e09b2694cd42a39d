// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to maintain the order tracking websocket connections.
//
// # Available Jobs
//
// 1. SubscriberSweepJob - Runs every 10 seconds and closes subscribers that
// sent neither a frame nor a pong within the idle timeout
// 2. TrackingStatsJob - Runs every minute and logs the number of watched
// orders, subscriptions and open connections
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, manager, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Cron expressions use the six-field form with seconds: "*/10 * * * * *" for
// the sweep and "0 * * * * *" for the statistics.
package jobs
