package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
)

var errStoreDown = errors.New("store unavailable")

type mockOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	err    error
	calls  int
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now().UTC()
	order := &domain.Order{
		ID:                 domain.NewOrderID(),
		TelegramChatID:     req.TelegramChatID,
		TelegramUserID:     req.TelegramUserID,
		TelegramUsername:   req.TelegramUsername,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Device:             req.Device,
		Country:            req.Country,
		Email:              req.Email,
		FullName:           req.FullName,
		ConsentGroupInvite: req.ConsentGroupInvite,
		Status:             domain.StatusNew,
		CreatedAt:          now,
		UpdatedAt:          now,
		Meta:               req.Meta,
	}
	m.orders[order.ID] = order
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	order, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) GetOrdersByTelegramUserID(ctx context.Context, telegramUserID int64) ([]*domain.Order, error) {
	all, err := m.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	var result []*domain.Order
	for _, order := range all {
		if order.TelegramUserID == telegramUserID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (m *mockOrderRepository) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*domain.Order, 0, len(m.orders))
	for _, order := range m.orders {
		copied := *order
		result = append(result, &copied)
	}
	// ULIDs sort by creation time
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockOrderRepository) GetOrdersPaginated(ctx context.Context, page, pageSize int, search string) ([]*domain.Order, int64, error) {
	all, err := m.GetAllOrders(ctx)
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	term := strings.ToLower(strings.TrimSpace(search))
	var filtered []*domain.Order
	for _, order := range all {
		if term == "" || strings.Contains(strings.ToLower(order.ID), term) || strings.Contains(strings.ToLower(order.Email), term) {
			filtered = append(filtered, order)
		}
	}
	offset := (page - 1) * pageSize
	if offset >= len(filtered) {
		return []*domain.Order{}, int64(len(filtered)), nil
	}
	end := offset + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], int64(len(filtered)), nil
}

func (m *mockOrderRepository) UpdateOrder(ctx context.Context, orderID string, patch domain.UpdateOrderRequest) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	order, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.Meta != nil {
		order.Meta = patch.Meta
	}
	order.UpdatedAt = time.Now().UTC()
	copied := *order
	return &copied, nil
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.orders[orderID]; !ok {
		return false, nil
	}
	delete(m.orders, orderID)
	return true, nil
}

func (m *mockOrderRepository) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockOrderRepository) setErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

type mockEventPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
	err    error
}

func (p *mockEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *mockEventPublisher) published() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.OrderEvent(nil), p.events...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOrderUsecase(repo domain.OrderRepository, pub domain.OrderEventPublisher) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(repo, pub, metrics.NewOrderMetrics(prometheus.NewRegistry()), discardLogger())
}

func validInput() domain.CreateOrderInput {
	return domain.CreateOrderInput{
		TelegramChatID:     1001,
		TelegramUserID:     2002,
		TelegramUsername:   "jdoe",
		FirstName:          "John",
		Device:             "iPhone",
		Country:            " Canada ",
		Email:              " John.Doe@Example.COM ",
		FullName:           "John Doe",
		ConsentGroupInvite: true,
	}
}
