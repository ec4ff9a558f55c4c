package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/dto/order/request"
	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/dto/order/response"
	"github.com/LavaJover/shvark-order-intake/internal/domain"
	orderdto "github.com/LavaJover/shvark-order-intake/internal/usecase/dto/order"
)

type DashboardService interface {
	ListOrders(ctx context.Context, page int, search string) (*orderdto.OrdersPage, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID string, input domain.UpdateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) (bool, error)
}

type OrderHandler struct {
	dashboard DashboardService
	logger    *slog.Logger
}

func NewOrderHandler(dashboard DashboardService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// GET /api/orders?page=&search=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, err := h.dashboard.ListOrders(c.Request.Context(), pageParam(c), c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrdersPage(page))
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.dashboard.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// PATCH /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   codeInvalidRequestBody,
			Message: err.Error(),
		})
		return
	}

	order, err := h.dashboard.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// PATCH /api/orders/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Error:   codeInvalidRequestBody,
			Message: err.Error(),
		})
		return
	}

	order, err := h.dashboard.UpdateOrder(c.Request.Context(), c.Param("id"), domain.UpdateOrderInput{
		Status: req.Status,
		Meta:   req.Meta,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.dashboard.DeleteOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, domain.ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{ID: id, Deleted: true})
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
