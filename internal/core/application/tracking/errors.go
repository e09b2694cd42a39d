package tracking

import (
	"errors"
	"fmt"
)

var (
	ErrHandshake        = errors.New("handshake rejected")
	ErrDeliveryFailure  = errors.New("delivery failed")
	ErrSubscriberClosed = errors.New("subscriber is closed")
	ErrQueueFull        = errors.New("subscriber queue is full")
	ErrRegistryStopped  = errors.New("topic registry is stopped")
)

// HandshakeError rejects a connection before it reaches the Subscribed state,
// typically because the order id in the request path is missing or malformed.
type HandshakeError struct {
	OrderID string
	Reason  string
	Cause   error
}

func (e *HandshakeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrHandshake, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrHandshake, e.Reason)
}

func (e *HandshakeError) Unwrap() error {
	return ErrHandshake
}

// DeliveryFailure reports an event that could not be handed to one subscriber.
// It matches both ErrDeliveryFailure and its Cause with errors.Is.
type DeliveryFailure struct {
	SubscriberID string
	Topic        TopicID
	Cause        error
}

func (e *DeliveryFailure) Error() string {
	return fmt.Sprintf("%s: subscriber %s on %s: %v", ErrDeliveryFailure, e.SubscriberID, e.Topic, e.Cause)
}

func (e *DeliveryFailure) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrDeliveryFailure}
	}
	return []error{ErrDeliveryFailure, e.Cause}
}
