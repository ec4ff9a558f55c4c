package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	publisher "github.com/LavaJover/shvark-order-intake/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-order-intake/internal/validation"
)

type DefaultOrderUsecase struct {
	orderRepo domain.OrderRepository
	publisher domain.OrderEventPublisher
	metrics   *metrics.OrderMetrics
	logger    *slog.Logger
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	publisher domain.OrderEventPublisher,
	metrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		orderRepo: orderRepo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// CreateOrder validates the raw input and persists it as a new order.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	req, err := validation.ValidateCreate(input)
	if err != nil {
		uc.metrics.RecordError("create", "validation")
		return nil, err
	}

	start := time.Now()
	order, err := uc.orderRepo.CreateOrder(ctx, req)
	uc.metrics.RecordStoreDuration("create", time.Since(start).Seconds())
	if err != nil {
		uc.recordStoreError("create", err)
		return nil, err
	}

	uc.metrics.RecordOrderCreated(string(order.Device))
	uc.publish(ctx, publisher.NewOrderEvent(domain.OrderEventCreated, order.ID, order.Status))

	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	start := time.Now()
	order, err := uc.orderRepo.GetOrderByID(ctx, orderID)
	uc.metrics.RecordStoreDuration("get", time.Since(start).Seconds())
	if err != nil {
		uc.recordStoreError("get", err)
		return nil, err
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrdersByTelegramUserID(ctx context.Context, telegramUserID int64) ([]*domain.Order, error) {
	orders, err := uc.orderRepo.GetOrdersByTelegramUserID(ctx, telegramUserID)
	if err != nil {
		uc.recordStoreError("list_by_user", err)
		return nil, err
	}
	return orders, nil
}

func (uc *DefaultOrderUsecase) GetAllOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := uc.orderRepo.GetAllOrders(ctx)
	if err != nil {
		uc.recordStoreError("list_all", err)
		return nil, err
	}
	return orders, nil
}

func (uc *DefaultOrderUsecase) GetOrdersPaginated(ctx context.Context, page, pageSize int, search string) ([]*domain.Order, int64, error) {
	start := time.Now()
	orders, total, err := uc.orderRepo.GetOrdersPaginated(ctx, page, pageSize, search)
	uc.metrics.RecordStoreDuration("list_paginated", time.Since(start).Seconds())
	if err != nil {
		uc.recordStoreError("list_paginated", err)
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateOrder applies a validated status/meta patch. A missing order yields (nil, nil).
func (uc *DefaultOrderUsecase) UpdateOrder(ctx context.Context, orderID string, input domain.UpdateOrderInput) (*domain.Order, error) {
	patch, err := validation.ValidateUpdate(input)
	if err != nil {
		uc.metrics.RecordError("update", "validation")
		return nil, err
	}

	start := time.Now()
	order, err := uc.orderRepo.UpdateOrder(ctx, orderID, patch)
	uc.metrics.RecordStoreDuration("update", time.Since(start).Seconds())
	if err != nil {
		uc.recordStoreError("update", err)
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	if patch.Status != nil {
		uc.metrics.RecordStatusUpdate(string(*patch.Status))
	}
	uc.publish(ctx, publisher.NewOrderEvent(domain.OrderEventUpdated, order.ID, order.Status))

	return order, nil
}

func (uc *DefaultOrderUsecase) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	start := time.Now()
	deleted, err := uc.orderRepo.DeleteOrder(ctx, orderID)
	uc.metrics.RecordStoreDuration("delete", time.Since(start).Seconds())
	if err != nil {
		uc.recordStoreError("delete", err)
		return false, err
	}

	if deleted {
		uc.metrics.RecordOrderDeleted()
		uc.publish(ctx, publisher.NewOrderEvent(domain.OrderEventDeleted, orderID, ""))
	}
	return deleted, nil
}

func (uc *DefaultOrderUsecase) recordStoreError(operation string, err error) {
	errorType := "store"
	if errors.Is(err, domain.ErrOrderNotCreated) {
		errorType = "not_created"
	}
	uc.metrics.RecordError(operation, errorType)
	uc.logger.Error("order store operation failed", "operation", operation, "error", err.Error())
}

func (uc *DefaultOrderUsecase) publish(ctx context.Context, event domain.OrderEvent) {
	if err := uc.publisher.PublishOrderEvent(ctx, event); err != nil {
		uc.logger.Error("failed to publish order event", "type", event.Type, "order_id", event.OrderID, "error", err.Error())
	}
}
