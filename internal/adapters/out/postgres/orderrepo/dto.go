// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The selected menu item ids are kept in a text[] column; status is stored as
// its code ("pending", "confirmed", ...). User and Restaurant only declare the
// cascading foreign keys and are never loaded or saved.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index"`
	MenuItemIDs  pq.StringArray `gorm:"type:text[];not null"`
	Quantity     int            `gorm:"not null"`
	TotalCents   int64          `gorm:"not null"`
	Status       string         `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time      `gorm:"not null;index"`

	User       userrepo.UserDTO             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Restaurant restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	ids := o.MenuItemIDs()
	menuItemIDs := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		menuItemIDs = append(menuItemIDs, id.String())
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		UserID:       o.UserID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		MenuItemIDs:  menuItemIDs,
		Quantity:     o.Quantity(),
		TotalCents:   o.TotalPrice().Cents(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	menuItemIDs := make([]kernel.UUID, 0, len(dto.MenuItemIDs))
	for _, raw := range dto.MenuItemIDs {
		itemID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		menuItemIDs = append(menuItemIDs, itemID)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, restaurantID, menuItemIDs, dto.Quantity, total, status, dto.CreatedAt)
}
