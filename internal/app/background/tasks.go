package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
)

const sessionGaugeInterval = 15 * time.Second

type SessionCounter interface {
	ActiveSessions() int
}

type BackgroundTasks struct {
	Sessions SessionCounter
	Metrics  *metrics.OrderMetrics
	Logger   *slog.Logger
}

func NewBackgroundTasks(sessions SessionCounter, metrics *metrics.OrderMetrics, logger *slog.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		Sessions: sessions,
		Metrics:  metrics,
		Logger:   logger,
	}
}

// StartAll launches the periodic tasks; they stop with ctx.
func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startSessionGaugeUpdate(ctx, sessionGaugeInterval)
}

func (bt *BackgroundTasks) startSessionGaugeUpdate(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bt.updateSessionGauge()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.updateSessionGauge()
		}
	}
}

func (bt *BackgroundTasks) updateSessionGauge() {
	n := bt.Sessions.ActiveSessions()
	bt.Metrics.SetActiveSessions(n)
	bt.Logger.Debug("conversation sessions", "active", n)
}
