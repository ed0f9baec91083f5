// Package jobs provides scheduled background tasks for canteen order
// fulfillment, implemented with github.com/robfig/cron/v3.
//
// KitchenStatsJob runs every thirty seconds, computes order and item counts
// per status plus the average preparation time, and broadcasts the result as
// a kitchen stats event. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(statsHandler, publisher, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
