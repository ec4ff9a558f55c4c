package domain

import "context"

// CreateOrderInput is the raw, unvalidated order payload assembled by a front end.
type CreateOrderInput struct {
	TelegramChatID     int64
	TelegramUserID     int64
	TelegramUsername   string
	FirstName          string
	LastName           string
	Device             string
	Country            string
	Email              string
	FullName           string
	ConsentGroupInvite bool
	Meta               map[string]any
}

type UpdateOrderInput struct {
	Status *string
	Meta   map[string]any
}

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrdersByTelegramUserID(ctx context.Context, telegramUserID int64) ([]*Order, error)
	GetAllOrders(ctx context.Context) ([]*Order, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int, search string) ([]*Order, int64, error)
	UpdateOrder(ctx context.Context, orderID string, input UpdateOrderInput) (*Order, error)
	DeleteOrder(ctx context.Context, orderID string) (bool, error)
}
