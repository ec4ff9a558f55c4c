package conversation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/LavaJover/shvark-order-intake/internal/domain"
	"github.com/LavaJover/shvark-order-intake/internal/infrastructure/metrics"
)

// Responder delivers a text reply to a chat.
type Responder interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error)
}

// Manager owns the in-memory sessions keyed by user id. Callers must not
// invoke Handle concurrently for the same user; Dispatcher guarantees that.
type Manager struct {
	orders    OrderCreator
	responder Responder
	metrics   *metrics.OrderMetrics
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewManager(orders OrderCreator, responder Responder, metrics *metrics.OrderMetrics, logger *slog.Logger) *Manager {
	return &Manager{
		orders:    orders,
		responder: responder,
		metrics:   metrics,
		logger:    logger,
		sessions:  make(map[int64]*Session),
	}
}

func (m *Manager) Handle(ctx context.Context, msg Message) {
	if isStartCommand(msg.Text) {
		m.start(ctx, msg)
		return
	}

	if msg.From == nil {
		m.reply(ctx, msg.ChatID, msgStartHint)
		return
	}

	session := m.session(msg.From.ID)
	if session == nil {
		m.reply(ctx, msg.ChatID, msgStartHint)
		return
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.state.Terminal() {
		m.reply(ctx, msg.ChatID, msgStartHint)
		return
	}

	replies, submit, retry := session.step(msg.Text)
	if retry {
		m.metrics.RecordDeviceRetry()
	}
	m.reply(ctx, session.chatID, replies...)

	if submit {
		m.submit(ctx, session)
	}
}

// ActiveSessions returns the number of sessions still waiting for input.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) start(ctx context.Context, msg Message) {
	if msg.From == nil {
		m.metrics.RecordSession("failed")
		m.reply(ctx, msg.ChatID, msgUnidentified)
		return
	}

	session := newSession(msg.ChatID, *msg.From)

	m.mu.Lock()
	if _, replaced := m.sessions[msg.From.ID]; replaced {
		m.logger.Info("replacing in-flight conversation", "user_id", msg.From.ID)
	}
	m.sessions[msg.From.ID] = session
	m.mu.Unlock()

	m.metrics.RecordSession("started")

	session.mu.Lock()
	defer session.mu.Unlock()
	m.reply(ctx, session.chatID, session.start()...)
}

func (m *Manager) submit(ctx context.Context, session *Session) {
	order, err := m.orders.CreateOrder(ctx, session.draft)
	if err != nil {
		session.state = StateFailed
		m.finish(session)
		m.metrics.RecordSession("failed")
		m.logger.Error("failed to create order from conversation",
			"user_id", session.user.ID,
			"chat_id", session.chatID,
			"error", err.Error(),
		)
		m.reply(ctx, session.chatID, msgSubmitFailed)
		return
	}

	session.state = StateDone
	m.finish(session)
	m.metrics.RecordSession("done")
	m.logger.Info("order submitted", "order_id", order.ID, "user_id", session.user.ID)
	m.reply(ctx, session.chatID, submittedMessage(order.ID))
}

func (m *Manager) session(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// finish drops the session unless /start has already replaced it.
func (m *Manager) finish(session *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions[session.user.ID] == session {
		delete(m.sessions, session.user.ID)
	}
}

func (m *Manager) reply(ctx context.Context, chatID int64, texts ...string) {
	for _, text := range texts {
		if err := m.responder.Send(ctx, chatID, text); err != nil {
			m.logger.Error("failed to send reply", "chat_id", chatID, "error", err.Error())
		}
	}
}
