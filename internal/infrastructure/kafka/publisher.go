package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string, topic string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(ctx context.Context, msgs ...domain.Message) error {
	km := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
		})
	}

	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ...domain.Message) error { return nil }

func (NoopPublisher) Close() error { return nil }

// OrderEventPublisher encodes order events as JSON keyed by order id, so all
// events of one order land on the same partition.
type OrderEventPublisher struct {
	port domain.PublisherPort
}

func NewOrderEventPublisher(port domain.PublisherPort) *OrderEventPublisher {
	return &OrderEventPublisher{port: port}
}

func (p *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	return p.port.Publish(ctx, domain.Message{Key: []byte(event.OrderID), Value: v})
}
