package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

// UpdateRestaurantCommand replaces the editable attributes of a restaurant.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	details      restaurant.Details

	guard guard.ConstructorGuard
}

func NewUpdateRestaurantCommand(restaurantID kernel.UUID, details restaurant.Details) (UpdateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c UpdateRestaurantCommand) Details() restaurant.Details {
	return c.details
}
