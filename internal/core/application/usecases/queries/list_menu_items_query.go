package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// MenuItemFilter narrows a menu search. Zero fields are not applied.
type MenuItemFilter struct {
	RestaurantID *kernel.UUID
	// Cuisine matches a substring of the dish cuisine.
	Cuisine string
	// RestaurantName matches a substring of the restaurant name.
	RestaurantName string
	// Location matches a substring of the restaurant address.
	Location string
}

type ListMenuItemsQuery struct {
	filter MenuItemFilter

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(filter MenuItemFilter) (ListMenuItemsQuery, error) {
	if filter.RestaurantID != nil {
		if err := filter.RestaurantID.Validate(); err != nil {
			return ListMenuItemsQuery{}, err
		}
	}

	filter.Cuisine = strings.TrimSpace(filter.Cuisine)
	filter.RestaurantName = strings.TrimSpace(filter.RestaurantName)
	filter.Location = strings.TrimSpace(filter.Location)

	return ListMenuItemsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse is the read model of a dish.
type MenuItemResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Description  string
	Cuisine      string
	Price        kernel.Money
	PhotoURL     string
}
