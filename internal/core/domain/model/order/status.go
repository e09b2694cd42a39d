package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparation ──> Dispatched ──> Delivered
//
// Only the next step is allowed; going back or skipping a step is rejected.
// The string codes ("pending", "confirmed", ...) are used on the wire, in
// persistence and in the frames pushed to order watchers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed order.
	Pending

	// Confirmed means the restaurant accepted the order.
	Confirmed

	// Preparation means the kitchen is working on the order.
	Preparation

	// Dispatched means the order left the restaurant.
	Dispatched

	// Delivered is final.
	Delivered
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Pending:     "pending",
		Confirmed:   "confirmed",
		Preparation: "preparation",
		Dispatched:  "dispatched",
		Delivered:   "delivered",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		Pending:     "Pending",
		Confirmed:   "Confirmed",
		Preparation: "In Preparation",
		Dispatched:  "Dispatched",
		Delivered:   "Delivered",
	}
}

// AllStatuses returns the valid statuses in workflow order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparation, Dispatched, Delivered}
}

// ParseStatus converts a status code such as "preparation" into a Status.
// Matching ignores case and surrounding whitespace.
func ParseStatus(code string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return Unknown, errs.NewValueIsRequiredError("status")
	}
	for _, s := range AllStatuses() {
		if s.String() == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a known status", code))
}

// Validate checks if the Status value is one of the workflow statuses.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, or "unknown" for invalid values.
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// Label returns the human-readable name, e.g. "In Preparation".
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the status that follows s in the workflow.
// The second result is false for Delivered and for invalid statuses.
func (s Status) Next() (Status, bool) {
	if s.Validate() != nil || s.IsFinal() {
		return Unknown, false
	}
	return s + 1, true
}

// CanTransitionTo reports whether target is the next step after s.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

// TransitionTo returns target when the move from s is allowed.
//
//	newStatus, err := o.Status().TransitionTo(order.Confirmed)
//	if err != nil {
//	    // skipped a step, went back, or the order is already delivered
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot change status from %s to %s", s.String(), target.String()),
		)
	}
	return target, nil
}
