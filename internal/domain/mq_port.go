package domain

import (
	"context"
	"time"
)

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(ctx context.Context, msgs ...Message) error
	Close() error
}

type OrderEventType string

const (
	OrderEventCreated OrderEventType = "order.created"
	OrderEventUpdated OrderEventType = "order.updated"
	OrderEventDeleted OrderEventType = "order.deleted"
)

type OrderEvent struct {
	EventID    string         `json:"event_id"`
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	Status     string         `json:"status,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
