package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReportSender delivers an error report to the external monitoring
// endpoint. Implemented by infra.MonitorClient.
type ReportSender interface {
	SendReport(ctx context.Context, report ErrorReport) error
}

// StartPool launches numWorkers goroutines consuming the error-report
// queue. Each goroutine blocks on BRPOP — zero CPU when idle. Delivery
// is best-effort: a failed send is logged and the job dropped, never
// retried, matching the fire-and-forget contract.
func StartPool(ctx context.Context, rdb *redis.Client, sender ReportSender, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, sender, i)
	}
	log.Info().Msgf("error-report worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, sender ReportSender, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueErrorReports).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, sender, result[1])
		}
	}
}

func processJob(ctx context.Context, sender ReportSender, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	var report ErrorReport
	if err := json.Unmarshal(job.Payload, &report); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal error report")
		return
	}
	if err := sender.SendReport(ctx, report); err != nil {
		// Best-effort: drop the report, keep the register running.
		log.Warn().Err(err).Str("kind", string(report.Kind)).Msg("error report delivery failed")
	}
}
