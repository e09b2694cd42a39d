package tracking

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn is the part of *websocket.Conn a subscriber needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// State of a subscriber connection.
type State int32

const (
	StateConnecting State = iota
	StateSubscribed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateSubscribed:
		return "subscribed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Subscriber is one websocket client watching one order.
//
// Events are queued by Send and written by a dedicated writer goroutine in
// the order they were queued. A full queue means the client cannot keep up;
// the subscriber is then closed rather than allowed to fall further behind.
type Subscriber struct {
	id      string
	topic   TopicID
	conn    Conn
	cfg     Config
	logger  *slog.Logger
	release func(*Subscriber)

	queue      chan StatusEvent
	done       chan struct{}
	writerDone chan struct{}

	state     atomic.Int32
	lastSeen  atomic.Int64
	closeOnce sync.Once
}

func newSubscriber(topic TopicID, conn Conn, cfg Config, logger *slog.Logger, release func(*Subscriber)) *Subscriber {
	s := &Subscriber{
		id:         uuid.NewString(),
		topic:      topic,
		conn:       conn,
		cfg:        cfg,
		release:    release,
		queue:      make(chan StatusEvent, cfg.QueueSize),
		done:       make(chan struct{}),
		writerDone: make(chan struct{}),
	}
	s.logger = logger.With("subscriber_id", s.id, "order_id", string(topic))
	s.state.Store(int32(StateConnecting))
	s.touch(time.Now())

	conn.SetPongHandler(func(string) error {
		s.touch(time.Now())
		return nil
	})
	return s
}

func (s *Subscriber) ID() string {
	return s.id
}

func (s *Subscriber) Topic() TopicID {
	return s.topic
}

func (s *Subscriber) State() State {
	return State(s.state.Load())
}

// LastSeen is the time of the last inbound frame or pong.
func (s *Subscriber) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

// Done is closed when the subscriber is closed.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// Send queues event for the writer without blocking.
func (s *Subscriber) Send(event StatusEvent) error {
	if s.State() == StateClosed {
		return s.failure(ErrSubscriberClosed)
	}

	select {
	case s.queue <- event:
		return nil
	default:
		s.logger.Warn("subscriber queue is full, closing", "queue_size", cap(s.queue))
		s.closeWith(ErrQueueFull)
		return s.failure(ErrQueueFull)
	}
}

func (s *Subscriber) failure(cause error) error {
	return &DeliveryFailure{SubscriberID: s.id, Topic: s.topic, Cause: cause}
}

func (s *Subscriber) touch(t time.Time) {
	s.lastSeen.Store(t.UnixNano())
}

func (s *Subscriber) markSubscribed() bool {
	return s.state.CompareAndSwap(int32(StateConnecting), int32(StateSubscribed))
}

// Close tears the subscriber down: it is removed from the registry before
// Close returns, its writer stops and the connection is closed. Only the
// first call has an effect; concurrent callers wait for it to finish.
func (s *Subscriber) Close() {
	s.closeWith(nil)
}

func (s *Subscriber) closeWith(reason error) {
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateClosed))
		close(s.done)

		if s.release != nil {
			s.release(s)
		}

		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(closeCode(reason), ""),
			time.Now().Add(s.cfg.WriteTimeout),
		)
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("closing connection", "error", err)
		}
		s.logger.Debug("subscriber closed", "reason", reason)
	})
}

func closeCode(reason error) int {
	if reason == nil {
		return websocket.CloseNormalClosure
	}
	return websocket.ClosePolicyViolation
}

// writeLoop drains the queue in order and keeps the connection alive with
// pings. Any write error closes the subscriber.
func (s *Subscriber) writeLoop() {
	defer close(s.writerDone)

	ticker := time.NewTicker(s.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return

		case event := <-s.queue:
			if err := s.write(event); err != nil {
				s.logger.Info("write failed, closing subscriber", "error", err)
				s.closeWith(err)
				return
			}

		case <-ticker.C:
			deadline := time.Now().Add(s.cfg.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Info("ping failed, closing subscriber", "error", err)
				s.closeWith(err)
				return
			}
		}
	}
}

func (s *Subscriber) write(event StatusEvent) error {
	payload, err := json.Marshal(newStatusFrame(event))
	if err != nil {
		return err
	}
	if err = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// readLoop accepts and discards every inbound frame until the connection
// fails. The channel is push-only; reading is how a disconnect is noticed.
func (s *Subscriber) readLoop() error {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return err
		}
		s.touch(time.Now())
	}
}
