// Package menuitemrepo provides data transfer objects and mapping functions for menu item persistence.
package menuitemrepo

import (
	"time"

	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu items. The
// Restaurant association only exists to declare the cascading foreign key;
// it is never loaded or saved.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null;index"`
	Description  string    `gorm:"type:text;not null;default:''"`
	Cuisine      string    `gorm:"type:varchar(100);not null;index"`
	PriceCents   int64     `gorm:"not null"`
	PhotoURL     string    `gorm:"type:varchar(500);not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`

	Restaurant restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Cuisine:      item.Cuisine(),
		PriceCents:   item.Price().Cents(),
		PhotoURL:     item.PhotoURL(),
		CreatedAt:    item.CreatedAt(),
	}
}

func toDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(id, restaurantID, restaurant.MenuItemDetails{
		Name:        dto.Name,
		Description: dto.Description,
		Cuisine:     dto.Cuisine,
		Price:       price,
		PhotoURL:    dto.PhotoURL,
	}, dto.CreatedAt)
}
