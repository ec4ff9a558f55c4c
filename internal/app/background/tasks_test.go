package background

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
)

type fakeSessions struct {
	n atomic.Int64
}

func (f *fakeSessions) ActiveSessions() int { return int(f.n.Load()) }

func TestSessionGaugeUpdate(t *testing.T) {
	sessions := &fakeSessions{}
	sessions.n.Store(3)
	m := metrics.NewOrderMetrics(prometheus.NewRegistry())
	bt := NewBackgroundTasks(sessions, m, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bt.startSessionGaugeUpdate(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for testutil.ToFloat64(m.ConversationActiveSessions) != 3 {
		if time.Now().After(deadline) {
			t.Fatal("gauge never updated")
		}
		time.Sleep(time.Millisecond)
	}

	sessions.n.Store(1)
	for testutil.ToFloat64(m.ConversationActiveSessions) != 1 {
		if time.Now().After(deadline) {
			t.Fatal("gauge not refreshed on tick")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not stop on cancel")
	}
}
