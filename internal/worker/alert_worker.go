package worker

// alert_worker.go
// Processes QueueStockAlert jobs: one email per critical material, sent
// through the SMTP circuit breaker.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"supplychainx/internal/infra"

	"github.com/rs/zerolog/log"
)

// StockAlert is the payload of a QueueStockAlert job.
type StockAlert struct {
	MaterialID   int64  `json:"material_id"`
	MaterialName string `json:"material_name"`
	Unit         string `json:"unit"`
	Stock        int64  `json:"stock"`
	StockMin     int64  `json:"stock_min"`
}

// Sender is the mail transport used by AlertWorker.
type Sender interface {
	Send(to []string, subject, body string) error
}

type AlertWorker struct {
	sender     Sender
	cb         *infra.CircuitBreaker
	recipients []string
}

// NewAlertWorker builds a worker mailing recipients (comma-separated).
func NewAlertWorker(sender Sender, cb *infra.CircuitBreaker, recipients string) *AlertWorker {
	var to []string
	for _, r := range strings.Split(recipients, ",") {
		if r = strings.TrimSpace(r); r != "" {
			to = append(to, r)
		}
	}
	return &AlertWorker{sender: sender, cb: cb, recipients: to}
}

func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var alert StockAlert
	if err := json.Unmarshal(raw, &alert); err != nil {
		// malformed payloads are never retried
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return nil
	}
	if len(w.recipients) == 0 {
		log.Warn().Int64("material_id", alert.MaterialID).Msg("alert_worker: no recipients configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("[SupplyChainX] Critical stock: %s", alert.MaterialName)
	body := fmt.Sprintf(
		"Raw material %q (id %d) is below its minimum stock.\n\nOn hand: %d %s\nMinimum: %d %s\nMissing: %d %s\n",
		alert.MaterialName, alert.MaterialID,
		alert.Stock, alert.Unit,
		alert.StockMin, alert.Unit,
		alert.StockMin-alert.Stock, alert.Unit,
	)

	err := w.cb.Execute(func() error {
		return w.sender.Send(w.recipients, subject, body)
	})
	if err != nil {
		return fmt.Errorf("alert_worker: send: %w", err)
	}
	log.Info().Int64("material_id", alert.MaterialID).Strs("to", w.recipients).Msg("alert_worker: stock alert sent")
	return nil
}
