package tracking_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/core/application/tracking"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var errConnClosed = errors.New("use of closed network connection")

// fakeConn stands in for *websocket.Conn. Frames written by the server end
// up in written; the client side is driven with inbound and Close.
type fakeConn struct {
	inbound chan []byte
	written chan []byte
	entered chan struct{}
	closed  chan struct{}
	gate    chan struct{}

	closeOnce sync.Once
	mu        sync.Mutex
	pong      func(string) error
	controls  []int
	writeErr  error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		inbound: make(chan []byte),
		written: make(chan []byte, 128),
		entered: make(chan struct{}, 128),
		closed:  make(chan struct{}),
	}
}

// newGatedConn blocks every WriteMessage until the connection is closed.
func newGatedConn() *fakeConn {
	c := newFakeConn()
	c.gate = make(chan struct{})
	return c
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	select {
	case msg := <-c.inbound:
		return websocket.TextMessage, msg, nil
	case <-c.closed:
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.entered <- struct{}{}
	if c.gate != nil {
		select {
		case <-c.gate:
		case <-c.closed:
			return errConnClosed
		}
	}

	c.mu.Lock()
	err := c.writeErr
	c.mu.Unlock()
	if err != nil {
		return err
	}

	select {
	case <-c.closed:
		return errConnClosed
	default:
	}
	c.written <- append([]byte(nil), data...)
	return nil
}

func (c *fakeConn) WriteControl(messageType int, _ []byte, _ time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controls = append(c.controls, messageType)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error {
	return nil
}

func (c *fakeConn) SetPongHandler(h func(string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pong = h
}

func (c *fakeConn) Close() error {
	c.closeOnce.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) failWrites(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeErr = err
}

func (c *fakeConn) sendPong() {
	c.mu.Lock()
	h := c.pong
	c.mu.Unlock()
	if h != nil {
		_ = h("")
	}
}

func (c *fakeConn) controlCount(messageType int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, mt := range c.controls {
		if mt == messageType {
			n++
		}
	}
	return n
}

type receivedFrame struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id"`
	Event   struct {
		Type       string    `json:"type"`
		Status     string    `json:"status"`
		OccurredAt time.Time `json:"occurred_at"`
	} `json:"event"`
}

func (c *fakeConn) nextFrame(t *testing.T) receivedFrame {
	t.Helper()
	select {
	case raw := <-c.written:
		var f receivedFrame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame written")
		return receivedFrame{}
	}
}

func (c *fakeConn) requireNoFrame(t *testing.T) {
	t.Helper()
	select {
	case raw := <-c.written:
		t.Fatalf("unexpected frame %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

// recordingHandle is a Handle that remembers what it was sent.
type recordingHandle struct {
	id    string
	topic tracking.TopicID
	fail  error

	mu     sync.Mutex
	events []tracking.StatusEvent
}

func newRecordingHandle(id string, topic tracking.TopicID) *recordingHandle {
	return &recordingHandle{id: id, topic: topic}
}

func (h *recordingHandle) ID() string              { return h.id }
func (h *recordingHandle) Topic() tracking.TopicID { return h.topic }

func (h *recordingHandle) Send(event tracking.StatusEvent) error {
	if h.fail != nil {
		return &tracking.DeliveryFailure{SubscriberID: h.id, Topic: h.topic, Cause: h.fail}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandle) statuses() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Status)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startRegistry(t *testing.T) (*tracking.Registry, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	registry := tracking.NewRegistry()
	go registry.Run(ctx)
	t.Cleanup(cancel)
	return registry, cancel
}

func testConfig() tracking.Config {
	return tracking.Config{
		QueueSize:    8,
		WriteTimeout: time.Second,
		PingInterval: time.Hour,
		IdleTimeout:  2 * time.Hour,
	}
}

// harness wires a registry, a manager and a notifier the way the server does.
type harness struct {
	registry *tracking.Registry
	manager  *tracking.Manager
	notifier *tracking.Notifier
}

func newHarness(t *testing.T, cfg tracking.Config, opts ...tracking.ManagerOption) *harness {
	t.Helper()
	registry, _ := startRegistry(t)
	logger := discardLogger()
	h := &harness{
		registry: registry,
		manager:  tracking.NewManager(registry, cfg, logger, opts...),
		notifier: tracking.NewNotifier(tracking.NewPublisher(registry, logger)),
	}
	t.Cleanup(h.manager.Shutdown)
	return h
}

// connect subscribes conn to orderID and serves it in the background. The
// returned channel is closed when Serve returns.
func (h *harness) connect(t *testing.T, orderID string, conn *fakeConn) (*tracking.Subscriber, <-chan struct{}) {
	t.Helper()
	sub, err := h.manager.Connect(orderID, conn)
	require.NoError(t, err)

	served := make(chan struct{})
	go func() {
		defer close(served)
		h.manager.Serve(context.Background(), sub)
	}()
	return sub, served
}

func waitClosed(t *testing.T, served <-chan struct{}) {
	t.Helper()
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}
