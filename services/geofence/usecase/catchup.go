package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratama/zonewatch/internal/pkg/logger"
	"github.com/pratama/zonewatch/internal/pkg/models"
)

// CatchupEvaluator is the batch path. It pages through unprocessed location
// samples oldest first, re-runs the same detection pipeline as the fast
// path, and advances the processed watermark. It exists to recover from
// fast-path failures and to evaluate zones created after a sample was
// recorded.
type CatchupEvaluator struct {
	uc  *GeofenceUsecase
	cfg models.GeofenceConfig
}

// NewCatchupEvaluator creates the catch-up runner sharing the fast path's
// pipeline
func NewCatchupEvaluator(uc *GeofenceUsecase, cfg models.GeofenceConfig) *CatchupEvaluator {
	return &CatchupEvaluator{uc: uc, cfg: cfg}
}

// Run drains the unprocessed backlog in batches of at most BatchSize.
// Zones are loaded once per tenant per run, not once per sample. Samples
// older than the lookback window are considered stale and never fetched.
//
// The watermark is advanced only after a batch's hits are durably recorded;
// a fetch or watermark failure aborts the run and leaves the batch
// unmarked, safe to retry on the next scheduled run.
func (c *CatchupEvaluator) Run(ctx context.Context) (models.RunStats, error) {
	stats := models.RunStats{}
	since := models.Now().Add(-time.Duration(c.cfg.LookbackMinutes) * time.Minute)

	// Per-run zone cache, keyed by tenant
	zonesByTenant := make(map[string][]models.GeofenceZone)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		samples, err := c.uc.samples.FetchUnprocessed(ctx, since, c.cfg.BatchSize)
		if err != nil {
			return stats, fmt.Errorf("failed to fetch unprocessed batch: %w", err)
		}
		if len(samples) == 0 {
			return stats, nil
		}
		stats.Batches++

		ids := make([]uuid.UUID, 0, len(samples))
		for i := range samples {
			sample := &samples[i]
			ids = append(ids, sample.ID)

			zones, ok := zonesByTenant[sample.Tenant]
			if !ok {
				zones, err = c.uc.zones.FindActiveZones(ctx, sample.Tenant)
				if err != nil {
					// The sample still gets marked processed below: a tenant
					// whose zones cannot be loaded must not stall the
					// watermark for everyone else.
					logger.Error("Failed to load zones for tenant",
						logger.String("tenant", sample.Tenant),
						logger.Err(err))
					zones = nil
				}
				zonesByTenant[sample.Tenant] = zones
			}

			hits := c.uc.evaluateZones(ctx, sample, zones, models.DetectionCatchup)
			stats.HitsDetected += len(hits)
		}

		// Every fetched sample is marked processed, hit or no hit; a sample
		// with no transition is still handled, and a poison sample must not
		// block the queue.
		if err := c.uc.samples.MarkProcessed(ctx, ids, models.Now()); err != nil {
			return stats, fmt.Errorf("failed to advance processed watermark: %w", err)
		}
		stats.SamplesProcessed += len(ids)

		if len(samples) < c.cfg.BatchSize {
			return stats, nil
		}
	}
}
