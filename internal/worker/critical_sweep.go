package worker

// critical_sweep.go
// Background goroutine that periodically scans raw materials below their
// minimum and queues a stock alert for each. Alerts are deduplicated per
// material by the dispatcher, so repeated sweeps do not re-send.

import (
	"context"
	"time"

	"supplychainx/internal/engine"
	"supplychainx/internal/model"

	"github.com/rs/zerolog/log"
)

// CriticalLister is satisfied by repository.RawMaterialRepository.
type CriticalLister interface {
	ListBelowMinimum(ctx context.Context) ([]model.RawMaterial, error)
}

// AlertEnqueuer is satisfied by *Dispatcher.
type AlertEnqueuer interface {
	EnqueueStockAlert(ctx context.Context, alert StockAlert) (bool, error)
}

type SweepConfig struct {
	Materials CriticalLister
	Alerts    AlertEnqueuer
	Interval  time.Duration
}

// StartCriticalSweep ticks every cfg.Interval until ctx is cancelled.
func StartCriticalSweep(ctx context.Context, cfg SweepConfig) {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("critical_sweep: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("critical_sweep: shutting down")
				return
			case <-ticker.C:
				sweepCritical(ctx, cfg)
			}
		}
	}()
}

// sweepCritical returns how many alerts were queued.
func sweepCritical(ctx context.Context, cfg SweepConfig) int {
	materials, err := cfg.Materials.ListBelowMinimum(ctx)
	if err != nil {
		log.Error().Err(err).Msg("critical_sweep: failed to list materials")
		return 0
	}

	queued := 0
	for _, m := range engine.ListCritical(materials) {
		ok, err := cfg.Alerts.EnqueueStockAlert(ctx, AlertFor(m))
		if err != nil {
			log.Error().Err(err).Int64("material_id", m.ID).Msg("critical_sweep: enqueue failed")
			continue
		}
		if ok {
			queued++
		}
	}
	if queued > 0 {
		log.Info().Int("queued", queued).Msg("critical_sweep: stock alerts queued")
	}
	return queued
}

// AlertFor builds the alert payload for a critical material.
func AlertFor(m model.RawMaterial) StockAlert {
	a := StockAlert{MaterialID: m.ID, MaterialName: m.Name, Unit: m.Unit}
	if m.Stock != nil {
		a.Stock = *m.Stock
	}
	if m.StockMin != nil {
		a.StockMin = *m.StockMin
	}
	return a
}
