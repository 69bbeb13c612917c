package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueStockAlert = "jobs:stock_alert"

	JobStockAlert = "stock_alert"

	// MaxJobAttempts is how many times a job runs before it is moved to the DLQ.
	MaxJobAttempts = 3

	alertDedupPrefix = "alerted:material:"
	alertDedupTTL    = 6 * time.Hour
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes one job payload. A non-nil error schedules a retry.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueStockAlert pushes an alert for a critical material, at most once per
// material every alertDedupTTL. It reports whether a job was queued.
func (d *Dispatcher) EnqueueStockAlert(ctx context.Context, alert StockAlert) (bool, error) {
	key := fmt.Sprintf("%s%d", alertDedupPrefix, alert.MaterialID)
	fresh, err := d.rdb.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), alertDedupTTL).Result()
	if err != nil {
		return false, err
	}
	if !fresh {
		return false, nil
	}
	if err := d.enqueue(ctx, QueueStockAlert, Job{Type: JobStockAlert}, alert); err != nil {
		_ = d.rdb.Del(ctx, key).Err()
		return false, err
	}
	return true, nil
}

// ClearStockAlert forgets the dedup marker once a material is replenished.
func (d *Dispatcher) ClearStockAlert(ctx context.Context, materialID int64) error {
	return d.rdb.Del(ctx, fmt.Sprintf("%s%d", alertDedupPrefix, materialID)).Err()
}

func (d *Dispatcher) enqueue(ctx context.Context, queue string, job Job, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job.Payload = data
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP and exits when ctx is cancelled.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop: waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueStockAlert).Result()
			if err != nil || len(result) < 2 {
				continue
			}
			queue, raw := result[0], result[1]
			job, outcome := processJob(ctx, handlers, raw)
			switch outcome {
			case outcomeRetry:
				job.Attempts++
				if encoded, err := json.Marshal(job); err == nil {
					_ = rdb.LPush(ctx, queue, encoded).Err()
				}
			case outcomeDead:
				job.Attempts++
				park(ctx, rdb, queue, job, "max attempts exceeded")
			}
		}
	}
}

type outcome int

const (
	outcomeDone outcome = iota
	outcomeRetry
	outcomeDead
)

// processJob decodes and runs a job, deciding what happens to it next.
func processJob(ctx context.Context, handlers map[string]Handler, raw string) (Job, outcome) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return job, outcomeDone
	}
	h, ok := handlers[job.Type]
	if !ok {
		log.Warn().Str("type", job.Type).Msg("no handler for job type")
		return job, outcomeDone
	}
	if err := h.Process(ctx, job.Payload); err != nil {
		log.Warn().Err(err).Str("type", job.Type).Int("attempt", job.Attempts+1).Msg("job failed")
		if job.Attempts+1 >= MaxJobAttempts {
			return job, outcomeDead
		}
		return job, outcomeRetry
	}
	return job, outcomeDone
}
