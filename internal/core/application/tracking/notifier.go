package tracking

import (
	"context"
)

// Notifier implements ports.StatusNotifier by publishing to the local
// subscribers of this process.
type Notifier struct {
	publisher *Publisher
}

func NewNotifier(publisher *Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

func (n *Notifier) OnStatusChanged(ctx context.Context, orderID string, newStatus string) {
	n.publisher.PublishEvent(ctx, orderID, newStatus)
}
