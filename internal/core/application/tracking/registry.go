package tracking

import (
	"context"
	"sync"
)

// Handle is one subscriber as seen by the registry and the publisher.
type Handle interface {
	// ID is unique per physical connection.
	ID() string
	Topic() TopicID
	// Send hands the event to the subscriber without blocking. A non-nil
	// error is a *DeliveryFailure.
	Send(event StatusEvent) error
}

// Stats is a point-in-time view of the registry.
type Stats struct {
	Topics      int
	Subscribers int
}

// topicTable is the registry state. Only the Run goroutine touches it.
type topicTable struct {
	topics  map[TopicID]map[string]Handle
	topicOf map[string]TopicID
}

func (t *topicTable) subscribe(topic TopicID, h Handle) {
	id := h.ID()
	if current, ok := t.topicOf[id]; ok {
		if current == topic {
			return
		}
		t.unsubscribe(current, h)
	}

	set, ok := t.topics[topic]
	if !ok {
		set = make(map[string]Handle)
		t.topics[topic] = set
	}
	set[id] = h
	t.topicOf[id] = topic
}

func (t *topicTable) unsubscribe(topic TopicID, h Handle) {
	id := h.ID()
	set, ok := t.topics[topic]
	if !ok {
		return
	}
	if _, ok = set[id]; !ok {
		return
	}

	delete(set, id)
	delete(t.topicOf, id)
	if len(set) == 0 {
		delete(t.topics, topic)
	}
}

func (t *topicTable) snapshot(topic TopicID) []Handle {
	set := t.topics[topic]
	handles := make([]Handle, 0, len(set))
	for _, h := range set {
		handles = append(handles, h)
	}
	return handles
}

// Registry maps topics to their subscribers. All state lives in the goroutine
// running Run; the exported methods send it a request and wait for the
// answer, so they are safe to call from any goroutine.
//
// Run must be started before the registry is used. Once Run has returned,
// Subscribe fails with ErrRegistryStopped, Unsubscribe does nothing and
// Subscribers returns nil.
type Registry struct {
	ops     chan func(*topicTable)
	stopped chan struct{}
	runOnce sync.Once
}

func NewRegistry() *Registry {
	return &Registry{
		ops:     make(chan func(*topicTable)),
		stopped: make(chan struct{}),
	}
}

// Run serves registry requests until ctx is cancelled. Calling Run more than
// once returns immediately.
func (r *Registry) Run(ctx context.Context) {
	r.runOnce.Do(func() {
		defer close(r.stopped)

		table := &topicTable{
			topics:  make(map[TopicID]map[string]Handle),
			topicOf: make(map[string]TopicID),
		}
		for {
			select {
			case <-ctx.Done():
				return
			case op := <-r.ops:
				op(table)
			}
		}
	})
}

// Done is closed once Run has returned.
func (r *Registry) Done() <-chan struct{} {
	return r.stopped
}

func (r *Registry) do(op func(*topicTable)) error {
	done := make(chan struct{})
	wrapped := func(t *topicTable) {
		defer close(done)
		op(t)
	}

	select {
	case r.ops <- wrapped:
	case <-r.stopped:
		return ErrRegistryStopped
	}
	<-done
	return nil
}

// Subscribe adds h to topic, creating the topic on first use. Subscribing a
// handle twice under the same topic is a no-op; subscribing it under another
// topic moves it.
func (r *Registry) Subscribe(topic TopicID, h Handle) error {
	return r.do(func(t *topicTable) {
		t.subscribe(topic, h)
	})
}

// Unsubscribe removes h from topic and drops the topic once it is empty.
// Unknown topics and handles are ignored.
func (r *Registry) Unsubscribe(topic TopicID, h Handle) {
	_ = r.do(func(t *topicTable) {
		t.unsubscribe(topic, h)
	})
}

// Subscribers returns a snapshot of topic's handles, empty for an unknown
// topic. It performs no I/O.
func (r *Registry) Subscribers(topic TopicID) []Handle {
	var handles []Handle
	if err := r.do(func(t *topicTable) {
		handles = t.snapshot(topic)
	}); err != nil {
		return nil
	}
	return handles
}

func (r *Registry) Stats() Stats {
	var stats Stats
	_ = r.do(func(t *topicTable) {
		stats.Topics = len(t.topics)
		stats.Subscribers = len(t.topicOf)
	})
	return stats
}
