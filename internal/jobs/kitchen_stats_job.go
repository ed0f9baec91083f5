package jobs

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/events"
	"canteen/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// KitchenStatsJob periodically computes fulfillment statistics and broadcasts
// them on the event stream, so kitchen and admin dashboards stay current
// without polling.
type KitchenStatsJob struct {
	handler   queries.GetOrderStatsQueryHandler
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewKitchenStatsJob creates a new job for broadcasting kitchen statistics.
func NewKitchenStatsJob(
	handler queries.GetOrderStatsQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *KitchenStatsJob {
	return &KitchenStatsJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "kitchen_stats_job"),
	}
}

// Start begins the statistics broadcast, running every thirty seconds.
func (j *KitchenStatsJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen stats job failed", "error", err)
			return
		}

		payload := map[string]any{
			"orders_by_status": stats.OrdersByStatus,
			"items_by_status":  stats.ItemsByStatus,
		}
		if stats.AvgPreparationSeconds != nil {
			payload["avg_preparation_seconds"] = *stats.AvgPreparationSeconds
		}

		j.publisher.Publish(events.Event{
			Name:       events.KitchenStats,
			OccurredAt: time.Now().UTC(),
			Payload:    payload,
		})
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen stats job started (running every 30 seconds)")
	return nil
}

// Stop stops the kitchen stats job.
func (j *KitchenStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen stats job stopped")
}
