package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update returns an ObjectNotFoundError when the restaurant does not exist.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Delete removes the restaurant and, by cascade, its menu items and orders.
	// Returns an ObjectNotFoundError when the restaurant does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, item *restaurant.MenuItem) error

	// Delete returns an ObjectNotFoundError when the item does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)

	// GetMany returns the items with the given ids. Unknown ids are reported
	// with an ObjectNotFoundError naming the first missing id.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*restaurant.MenuItem, error)
}
