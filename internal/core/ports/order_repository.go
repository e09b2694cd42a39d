// Package ports defines the contracts between the application core and its
// adapters: repositories bound to a unit of work, and the status notifier
// used to push order status changes to live watchers.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its menu item references.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
