package service

import (
	"context"

	"supplychainx/internal/engine"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/worker"

	"github.com/rs/zerolog/log"
)

// StockAlerter is satisfied by *worker.Dispatcher.
type StockAlerter interface {
	EnqueueStockAlert(ctx context.Context, alert worker.StockAlert) (bool, error)
	ClearStockAlert(ctx context.Context, materialID int64) error
}

// publishLifecycle emits a lifecycle event after a guarded mutation.
// Publishing is best effort: failures are logged and never undo the change.
func publishLifecycle(ctx context.Context, pub infra.EventPublisher, entity string, id int64, action string) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, infra.NewLifecycleEvent(entity, id, action)); err != nil {
		log.Warn().Err(err).Str("entity", entity).Int64("id", id).Str("action", action).Msg("lifecycle event not published")
	}
}

// syncStockAlert queues an alert for a material that is critical and clears
// the dedup marker of one that is not.
func syncStockAlert(ctx context.Context, alerts StockAlerter, m model.RawMaterial) {
	if alerts == nil {
		return
	}
	if !engine.IsCritical(m) {
		if err := alerts.ClearStockAlert(ctx, m.ID); err != nil {
			log.Warn().Err(err).Int64("material_id", m.ID).Msg("stock alert marker not cleared")
		}
		return
	}
	queued, err := alerts.EnqueueStockAlert(ctx, worker.AlertFor(m))
	if err != nil {
		log.Warn().Err(err).Int64("material_id", m.ID).Msg("stock alert not queued")
		return
	}
	if queued {
		log.Info().Int64("material_id", m.ID).Str("name", m.Name).Msg("stock alert queued")
	}
}
