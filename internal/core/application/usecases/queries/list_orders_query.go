package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// ListOrdersQuery lists the viewer's orders, or every order for staff,
// newest first.
type ListOrdersQuery struct {
	viewer       Viewer
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. A nil restaurantID lists orders from
// all restaurants.
func NewListOrdersQuery(viewer Viewer, restaurantID *kernel.UUID) (ListOrdersQuery, error) {
	var restaurantErr error
	if restaurantID != nil {
		restaurantErr = restaurantID.Validate()
	}
	if err := errors.Join(viewer.validate(), restaurantErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{viewer: viewer, restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// GetOrderQuery loads one order on behalf of viewer.
type GetOrderQuery struct {
	viewer  Viewer
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(viewer Viewer, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(viewer.validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{viewer: viewer, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	RestaurantID kernel.UUID
	MenuItemIDs  []kernel.UUID
	Quantity     int
	TotalPrice   kernel.Money
	Status       string
	CreatedAt    time.Time
}
