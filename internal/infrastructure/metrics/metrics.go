package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics содержит метрики заказов, диалога и дашборда
type OrderMetrics struct {
	// Созданные заказы
	OrdersCreatedTotal prometheus.CounterVec

	// Изменения статусов
	OrderStatusUpdatesTotal prometheus.CounterVec

	// Удаления
	OrdersDeletedTotal prometheus.Counter

	// Ошибки по операциям
	OrderErrorsTotal prometheus.CounterVec

	// Время выполнения операций стора
	StoreOperationDuration prometheus.HistogramVec

	// Сессии диалога по исходам
	ConversationSessionsTotal prometheus.CounterVec

	// Повторные запросы устройства
	DevicePromptRetriesTotal prometheus.Counter

	// Активные сессии диалога
	ConversationActiveSessions prometheus.Gauge

	// HTTP
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec
}

// NewOrderMetrics регистрирует метрики в reg
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)

	return &OrderMetrics{
		OrdersCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Общее количество созданных заказов",
			},
			[]string{"device"},
		),

		OrderStatusUpdatesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_status_updates_total",
				Help: "Количество изменений статуса заказов",
			},
			[]string{"status"},
		),

		OrdersDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_deleted_total",
				Help: "Количество удаленных заказов",
			},
		),

		OrderErrorsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Общее количество ошибок при работе с заказами",
			},
			[]string{"operation", "error_type"},
		),

		StoreOperationDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_store_operation_duration_seconds",
				Help:    "Время выполнения операций с хранилищем заказов",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms, 2ms, 4ms...
			},
			[]string{"operation"},
		),

		ConversationSessionsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversation_sessions_total",
				Help: "Сессии диалога по исходам (started/done/failed)",
			},
			[]string{"outcome"},
		),

		DevicePromptRetriesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "conversation_device_retries_total",
				Help: "Количество повторных запросов устройства",
			},
		),

		ConversationActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "conversation_active_sessions",
				Help: "Количество незавершенных сессий диалога",
			},
		),

		HTTPRequestsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),

		HTTPRequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
	}
}

// RecordOrderCreated записывает созданный заказ
func (m *OrderMetrics) RecordOrderCreated(device string) {
	m.OrdersCreatedTotal.WithLabelValues(device).Inc()
}

// RecordStatusUpdate записывает смену статуса
func (m *OrderMetrics) RecordStatusUpdate(status string) {
	m.OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
}

func (m *OrderMetrics) RecordOrderDeleted() {
	m.OrdersDeletedTotal.Inc()
}

// RecordError записывает ошибку
func (m *OrderMetrics) RecordError(operation, errorType string) {
	m.OrderErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

func (m *OrderMetrics) RecordStoreDuration(operation string, durationSeconds float64) {
	m.StoreOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// RecordSession записывает исход сессии диалога
func (m *OrderMetrics) RecordSession(outcome string) {
	m.ConversationSessionsTotal.WithLabelValues(outcome).Inc()
}

func (m *OrderMetrics) RecordDeviceRetry() {
	m.DevicePromptRetriesTotal.Inc()
}

func (m *OrderMetrics) SetActiveSessions(n int) {
	m.ConversationActiveSessions.Set(float64(n))
}

func (m *OrderMetrics) RecordHTTPRequest(handler, method, status string, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(handler, method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(handler, method).Observe(durationSeconds)
}
