package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant.
//
// Example:
//
//	cmd, err := NewCreateRestaurantCommand(kernel.NewUUID(), restaurant.Details{
//	    Name:    "Trattoria Roma",
//	    Address: "12 Via Appia",
//	    Email:   "hello@roma.example",
//	})
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	details      restaurant.Details

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand validates the identifier; the details are
// validated by the Restaurant aggregate.
func NewCreateRestaurantCommand(restaurantID kernel.UUID, details restaurant.Details) (CreateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		restaurantID: restaurantID,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) Details() restaurant.Details {
	return c.details
}
