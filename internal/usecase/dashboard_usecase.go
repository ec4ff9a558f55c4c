package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	orderdto "github.com/LavaJover/shvark-order-intake/internal/usecase/dto/order"
	"github.com/LavaJover/shvark-order-intake/internal/validation"
)

type DashboardUsecase struct {
	orders   domain.OrderUsecase
	pageSize int
	logger   *slog.Logger
}

func NewDashboardUsecase(orders domain.OrderUsecase, pageSize int, logger *slog.Logger) *DashboardUsecase {
	if pageSize < 1 {
		pageSize = 10
	}
	return &DashboardUsecase{
		orders:   orders,
		pageSize: pageSize,
		logger:   logger,
	}
}

func (uc *DashboardUsecase) PageSize() int {
	return uc.pageSize
}

// ListOrders always returns a renderable page. On a store failure the page is
// empty and the error is returned alongside it.
func (uc *DashboardUsecase) ListOrders(ctx context.Context, page int, search string) (*orderdto.OrdersPage, error) {
	if page < 1 {
		page = 1
	}
	if maxPage := orderdto.MaxPage(uc.pageSize); page > maxPage {
		page = maxPage
	}
	search = strings.TrimSpace(search)

	result := &orderdto.OrdersPage{
		Orders:   []*domain.Order{},
		Page:     page,
		PageSize: uc.pageSize,
		Search:   search,
	}

	orders, total, err := uc.orders.GetOrdersPaginated(ctx, page, uc.pageSize, search)
	if err != nil {
		uc.logger.Error("failed to list orders", "page", page, "search", search, "error", err.Error())
		return result, err
	}

	if orders != nil {
		result.Orders = orders
	}
	result.Total = total
	result.TotalPages = orderdto.TotalPages(total, uc.pageSize)
	result.Stats = orderdto.NewPageStats(result.Orders, total)
	return result, nil
}

func (uc *DashboardUsecase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if validation.ValidateOrderID(orderID) != nil {
		return nil, domain.ErrOrderNotFound
	}
	order, err := uc.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (uc *DashboardUsecase) UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, domain.ErrStatusRequired
	}
	return uc.UpdateOrder(ctx, orderID, domain.UpdateOrderInput{Status: &status})
}

func (uc *DashboardUsecase) UpdateOrder(ctx context.Context, orderID string, input domain.UpdateOrderInput) (*domain.Order, error) {
	if _, err := validation.ValidateUpdate(input); err != nil {
		return nil, err
	}
	if validation.ValidateOrderID(orderID) != nil {
		return nil, domain.ErrOrderNotFound
	}

	order, err := uc.orders.UpdateOrder(ctx, orderID, input)
	if err != nil {
		if !errors.Is(err, validation.ErrInvalidInput) {
			uc.logger.Error("failed to update order", "order_id", orderID, "error", err.Error())
		}
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	uc.logger.Info("order updated", "order_id", order.ID, "status", order.Status)
	return order, nil
}

// DeleteOrder reports false for an unknown id.
func (uc *DashboardUsecase) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	if validation.ValidateOrderID(orderID) != nil {
		return false, nil
	}
	deleted, err := uc.orders.DeleteOrder(ctx, orderID)
	if err != nil {
		uc.logger.Error("failed to delete order", "order_id", orderID, "error", err.Error())
		return false, err
	}
	if deleted {
		uc.logger.Info("order deleted", "order_id", orderID)
	}
	return deleted, nil
}
