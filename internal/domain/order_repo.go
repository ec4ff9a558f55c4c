package domain

import "context"

// OrderRepository is the single-table order store.
// Lookups return (nil, nil) when the row does not exist.
type OrderRepository interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrdersByTelegramUserID(ctx context.Context, telegramUserID int64) ([]*Order, error)
	GetAllOrders(ctx context.Context) ([]*Order, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int, search string) ([]*Order, int64, error)
	UpdateOrder(ctx context.Context, orderID string, patch UpdateOrderRequest) (*Order, error)
	DeleteOrder(ctx context.Context, orderID string) (bool, error)
}
