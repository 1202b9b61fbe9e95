package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finhogar/loan-engine/internal/domain/event"
	"github.com/finhogar/loan-engine/pkg/kafka"
)

// KafkaEventPublisher implements port.EventPublisher by writing events to Kafka.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given brokers and topic.
func NewKafkaEventPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: kafka.NewProducer(brokers),
		topic:    topic,
		logger:   logger,
	}
}

// Publish serialises and sends domain events, keyed by aggregate id so that
// all events of one loan land on the same partition.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		p.logger.Info("publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"owner_id", evt.OwnerID(),
			"topic", p.topic,
		)

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
			},
		})
	}

	return p.producer.Publish(ctx, p.topic, messages...)
}

// Close releases the underlying producer.
func (p *KafkaEventPublisher) Close() error {
	return p.producer.Close()
}
