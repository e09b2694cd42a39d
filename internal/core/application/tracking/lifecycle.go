package tracking

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"
)

const maxOrderIDLength = 128

// OrderIDValidator accepts or rejects an order id taken from the connection
// target, after the built-in checks for emptiness and shape.
type OrderIDValidator func(orderID string) error

type ManagerOption func(*Manager)

// WithOrderIDValidator adds a format check on order ids, for instance
// requiring a UUID.
func WithOrderIDValidator(v OrderIDValidator) ManagerOption {
	return func(m *Manager) {
		m.validate = v
	}
}

// Manager owns every live subscriber: it registers new connections, serves
// them until they disconnect and removes them from the registry exactly once.
type Manager struct {
	registry *Registry
	cfg      Config
	validate OrderIDValidator
	logger   *slog.Logger

	mu   sync.Mutex
	live map[string]*Subscriber
}

// NewManager panics on an invalid cfg; configuration is checked at startup.
func NewManager(registry *Registry, cfg Config, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	m := &Manager{
		registry: registry,
		cfg:      cfg,
		logger:   logger.With("component", "tracking_manager"),
		live:     make(map[string]*Subscriber),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidateOrderID runs the handshake checks without touching any connection,
// so callers can reject a request before upgrading it.
func (m *Manager) ValidateOrderID(raw string) (string, error) {
	orderID := strings.TrimSpace(raw)
	if orderID == "" {
		return "", &HandshakeError{Reason: "order id is required"}
	}
	if len(orderID) > maxOrderIDLength || strings.ContainsFunc(orderID, func(r rune) bool {
		return r == '/' || unicode.IsSpace(r) || unicode.IsControl(r)
	}) {
		return "", &HandshakeError{OrderID: orderID, Reason: "order id is malformed"}
	}
	if m.validate != nil {
		if err := m.validate(orderID); err != nil {
			return "", &HandshakeError{OrderID: orderID, Reason: "order id is malformed", Cause: err}
		}
	}
	return orderID, nil
}

// Connect subscribes conn to the order named by rawOrderID. On error the
// caller still owns conn.
func (m *Manager) Connect(rawOrderID string, conn Conn) (*Subscriber, error) {
	orderID, err := m.ValidateOrderID(rawOrderID)
	if err != nil {
		return nil, err
	}

	sub := newSubscriber(TopicID(orderID), conn, m.cfg, m.logger, m.release)

	m.mu.Lock()
	m.live[sub.ID()] = sub
	m.mu.Unlock()

	if err = m.registry.Subscribe(sub.Topic(), sub); err != nil {
		m.mu.Lock()
		delete(m.live, sub.ID())
		m.mu.Unlock()
		return nil, err
	}

	go sub.writeLoop()
	sub.markSubscribed()

	m.logger.Info("subscriber connected", "subscriber_id", sub.ID(), "order_id", orderID)
	return sub, nil
}

// release is run once by Subscriber.Close.
func (m *Manager) release(sub *Subscriber) {
	m.registry.Unsubscribe(sub.Topic(), sub)

	m.mu.Lock()
	delete(m.live, sub.ID())
	m.mu.Unlock()
}

// Serve blocks until the client disconnects or ctx is cancelled, then closes
// sub. When Serve returns the registry no longer holds sub.
func (m *Manager) Serve(ctx context.Context, sub *Subscriber) {
	stop := context.AfterFunc(ctx, sub.Close)
	defer stop()

	err := sub.readLoop()
	sub.Close()
	<-sub.writerDone

	m.logger.Info("subscriber disconnected", "subscriber_id", sub.ID(), "order_id", string(sub.Topic()), "cause", err)
}

// Sweep closes subscribers idle for longer than the configured IdleTimeout
// and returns how many were closed.
func (m *Manager) Sweep(now time.Time) int {
	if m.cfg.IdleTimeout == 0 {
		return 0
	}

	var idle []*Subscriber
	m.mu.Lock()
	for _, sub := range m.live {
		if now.Sub(sub.LastSeen()) > m.cfg.IdleTimeout {
			idle = append(idle, sub)
		}
	}
	m.mu.Unlock()

	for _, sub := range idle {
		m.logger.Info("closing idle subscriber", "subscriber_id", sub.ID(), "last_seen", sub.LastSeen())
		sub.Close()
	}
	return len(idle)
}

// Shutdown closes every live subscriber.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	subs := make([]*Subscriber, 0, len(m.live))
	for _, sub := range m.live {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	m.logger.Info("all subscribers closed", "count", len(subs))
}

func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}
