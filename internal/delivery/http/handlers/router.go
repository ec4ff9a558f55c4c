package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LavaJover/shvark-order-intake/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
)

type RouterDeps struct {
	Handler  *OrderHandler
	Metrics  *metrics.OrderMetrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}
	requestID, err := middleware.RequestID()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		gin.Recovery(),
		requestID,
		middleware.AccessLog(deps.Logger),
		middleware.Metrics(deps.Metrics),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	h := deps.Handler
	r.GET("/", h.Dashboard)
	r.POST("/orders/:id/status", h.SubmitStatus)
	r.POST("/orders/:id/delete", h.SubmitDelete)

	api := r.Group("/api/orders")
	{
		api.GET("", h.ListOrders)
		api.GET("/:id", h.GetOrder)
		api.PATCH("/:id/status", h.UpdateOrderStatus)
		api.PATCH("/:id", h.UpdateOrder)
		api.DELETE("/:id", h.DeleteOrder)
	}

	return r, nil
}
