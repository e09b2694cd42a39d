package tracking

import "time"

// TopicID names the set of subscribers watching one order. It is the order id
// itself; the registry does not interpret it.
type TopicID string

// StatusEvent is produced once per committed status change.
type StatusEvent struct {
	OrderID    string
	Status     string
	OccurredAt time.Time
}

// Topic returns the topic the event is published on.
func (e StatusEvent) Topic() TopicID {
	return TopicID(e.OrderID)
}

// statusFrame is the JSON text frame written to clients:
//
//	{"status":"confirmed","order_id":"...","event":{"type":"notify_order_status","status":"confirmed","occurred_at":"..."}}
type statusFrame struct {
	Status  string      `json:"status"`
	OrderID string      `json:"order_id"`
	Event   eventDetail `json:"event"`
}

type eventDetail struct {
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

const eventTypeStatusChanged = "notify_order_status"

func newStatusFrame(e StatusEvent) statusFrame {
	return statusFrame{
		Status:  e.Status,
		OrderID: e.OrderID,
		Event: eventDetail{
			Type:       eventTypeStatusChanged,
			Status:     e.Status,
			OccurredAt: e.OccurredAt,
		},
	}
}
