package tracking

import (
	"context"
	"log/slog"
	"time"
)

// subscriberIndex is the part of Registry the publisher uses.
type subscriberIndex interface {
	Subscribers(topic TopicID) []Handle
	Unsubscribe(topic TopicID, h Handle)
}

// Publisher fans status events out to the subscribers of an order.
type Publisher struct {
	index  subscriberIndex
	logger *slog.Logger
	now    func() time.Time
}

func NewPublisher(index subscriberIndex, logger *slog.Logger) *Publisher {
	return &Publisher{
		index:  index,
		logger: logger.With("component", "tracking_publisher"),
		now:    time.Now,
	}
}

// PublishEvent hands {orderID, newStatus} to every current subscriber of
// orderID and returns how many accepted it. A subscriber that fails is logged
// and unsubscribed; the others are unaffected and nothing is reported to the
// caller. Events published for one order reach each subscriber in call order.
func (p *Publisher) PublishEvent(ctx context.Context, orderID string, newStatus string) int {
	event := StatusEvent{OrderID: orderID, Status: newStatus, OccurredAt: p.now().UTC()}
	topic := event.Topic()

	delivered := 0
	for _, h := range p.index.Subscribers(topic) {
		if err := h.Send(event); err != nil {
			p.logger.WarnContext(ctx, "status event not delivered",
				"order_id", orderID, "status", newStatus, "subscriber_id", h.ID(), "error", err)
			p.index.Unsubscribe(topic, h)
			continue
		}
		delivered++
	}

	p.logger.DebugContext(ctx, "status event published",
		"order_id", orderID, "status", newStatus, "delivered", delivered)
	return delivered
}
