package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery searches restaurants. Empty filters are ignored.
//
// Example:
//
//	query := NewListRestaurantsQuery("pizza", "", "Italian")
//	restaurants, err := handler.Handle(ctx, query)
type ListRestaurantsQuery struct {
	name     string
	location string
	cuisine  string

	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery builds the query. name and location match
// case-insensitive substrings (location is checked against the address and
// the location text); cuisine keeps restaurants that offer at least one dish
// of that cuisine.
func NewListRestaurantsQuery(name, location, cuisine string) ListRestaurantsQuery {
	return ListRestaurantsQuery{
		name:     strings.TrimSpace(name),
		location: strings.TrimSpace(location),
		cuisine:  strings.TrimSpace(cuisine),
		guard:    guard.NewConstructorGuard(),
	}
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse is the read model of a restaurant.
type RestaurantResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	Location string
	Phone    string
	Email    string
}
