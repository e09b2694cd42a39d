package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// GetRestaurantQueryHandler loads one restaurant for display.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown id.
func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	var rows []restaurantRow
	if err := h.db.WithContext(ctx).
		Table("restaurants").
		Select("id, name, address, location, phone, email").
		Where("id = ?", query.restaurantID.Bytes()).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return RestaurantResponse{}, err
	}
	if len(rows) == 0 {
		return RestaurantResponse{}, notFound("restaurant", query.restaurantID)
	}

	row := rows[0]
	return RestaurantResponse{
		ID:       query.restaurantID,
		Name:     row.Name,
		Address:  row.Address,
		Location: row.Location,
		Phone:    row.Phone,
		Email:    row.Email,
	}, nil
}
