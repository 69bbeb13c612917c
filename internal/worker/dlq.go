package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DeadLetterKey names the list where jobs from queue are parked once they
// run out of attempts.
func DeadLetterKey(queue string) string { return "dlq:" + queue }

// DeadJob is a parked job. MaterialID is set for stock alerts so an operator
// can tell which material never got its email.
type DeadJob struct {
	Queue      string          `json:"queue"`
	JobType    string          `json:"job_type"`
	MaterialID int64           `json:"material_id,omitempty"`
	Payload    json.RawMessage `json:"payload"`
	Reason     string          `json:"reason"`
	Attempts   int             `json:"attempts"`
	FailedAt   time.Time       `json:"failed_at"`
}

func newDeadJob(queue string, job Job, reason string) DeadJob {
	dead := DeadJob{
		Queue:    queue,
		JobType:  job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		Attempts: job.Attempts,
		FailedAt: time.Now().UTC(),
	}
	if job.Type == JobStockAlert {
		var alert StockAlert
		if err := json.Unmarshal(job.Payload, &alert); err == nil {
			dead.MaterialID = alert.MaterialID
		}
	}
	return dead
}

// park pushes job onto its dead letter list; failures are only logged.
func park(ctx context.Context, rdb *redis.Client, queue string, job Job, reason string) {
	dead := newDeadJob(queue, job, reason)
	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: encode failed")
		return
	}
	if err := rdb.LPush(ctx, DeadLetterKey(queue), data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Int64("material_id", dead.MaterialID).Msg("dlq: push failed")
		return
	}
	log.Warn().
		Str("job_type", job.Type).
		Int64("material_id", dead.MaterialID).
		Int("attempts", job.Attempts).
		Str("reason", reason).
		Msg("dlq: stock alert given up")
}

// DeadLetterDepth is the number of jobs parked for queue.
func DeadLetterDepth(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DeadLetterKey(queue)).Result()
}
