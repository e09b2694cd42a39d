// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
package restaurantrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
// Menu items and orders reference it with ON DELETE CASCADE foreign keys.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Address   string    `gorm:"type:varchar(200);not null"`
	Location  string    `gorm:"type:varchar(200);not null;default:''"`
	Phone     string    `gorm:"type:varchar(20);not null;default:''"`
	Email     string    `gorm:"type:varchar(254);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        r.ID().Bytes(),
		Name:      r.Name(),
		Address:   r.Address(),
		Location:  r.Location(),
		Phone:     r.Phone(),
		Email:     r.Email(),
		CreatedAt: r.CreatedAt(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, restaurant.Details{
		Name:     dto.Name,
		Address:  dto.Address,
		Location: dto.Location,
		Phone:    dto.Phone,
		Email:    dto.Email,
	}, dto.CreatedAt)
}
