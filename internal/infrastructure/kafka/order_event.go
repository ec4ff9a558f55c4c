package publisher

import (
	"time"

	"github.com/google/uuid"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
)

func NewOrderEvent(eventType domain.OrderEventType, orderID string, status domain.OrderStatus) domain.OrderEvent {
	return domain.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		OrderID:    orderID,
		Status:     string(status),
		OccurredAt: time.Now().UTC(),
	}
}
