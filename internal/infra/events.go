package infra

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Lifecycle actions published after a guarded mutation succeeds.
const (
	ActionDeleted   = "deleted"
	ActionCancelled = "cancelled"
)

// LifecycleEvent records that a guarded delete/cancel went through.
type LifecycleEvent struct {
	ID       string    `json:"id"`
	Entity   string    `json:"entity"`
	EntityID int64     `json:"entity_id"`
	Action   string    `json:"action"`
	At       time.Time `json:"at"`
}

// NewLifecycleEvent stamps an event with a fresh id and the current time.
func NewLifecycleEvent(entity string, id int64, action string) LifecycleEvent {
	return LifecycleEvent{
		ID:       uuid.NewString(),
		Entity:   entity,
		EntityID: id,
		Action:   action,
		At:       time.Now().UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, ev LifecycleEvent) error
	Close() error
}

// NewEventPublisher returns a Kafka-backed publisher, or a no-op one when
// no brokers are configured.
func NewEventPublisher(brokers []string, topic string) EventPublisher {
	if len(brokers) == 0 {
		log.Info().Msg("kafka: no brokers configured, lifecycle events disabled")
		return NopPublisher{}
	}
	log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("kafka: lifecycle publisher ready")
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
			Async:    true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				log.Error().Msgf("kafka: "+msg, args...)
			}),
		},
	}
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// Publish keys messages by entity/id so events for one record stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, ev LifecycleEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Entity + ":" + strconv.FormatInt(ev.EntityID, 10)),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, LifecycleEvent) error { return nil }
func (NopPublisher) Close() error                                  { return nil }
