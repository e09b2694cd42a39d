package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListMenuItemsQueryHandler searches dishes across restaurants.
//
// The restaurant name and location filters are independent: each is applied
// only when given, and both must match when both are given.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

type menuItemRow struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Description  string
	Cuisine      string
	PriceCents   int64
	PhotoURL     string
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.filter
	tx := h.db.WithContext(ctx).
		Table("menu_items AS m").
		Select("m.id, m.restaurant_id, m.name, m.description, m.cuisine, m.price_cents, m.photo_url").
		Joins("JOIN restaurants r ON r.id = m.restaurant_id")

	if f.RestaurantID != nil {
		tx = tx.Where("m.restaurant_id = ?", f.RestaurantID.Bytes())
	}
	if f.Cuisine != "" {
		tx = tx.Where("m.cuisine ILIKE ?", containsPattern(f.Cuisine))
	}
	if f.RestaurantName != "" {
		tx = tx.Where("r.name ILIKE ?", containsPattern(f.RestaurantName))
	}
	if f.Location != "" {
		pattern := containsPattern(f.Location)
		tx = tx.Where("(r.address ILIKE ? OR r.location ILIKE ?)", pattern, pattern)
	}

	var rows []menuItemRow
	if err := tx.Order("m.name, m.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItemResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(row.PriceCents)
		if err != nil {
			return nil, err
		}

		items = append(items, MenuItemResponse{
			ID:           id,
			RestaurantID: restaurantID,
			Name:         row.Name,
			Description:  row.Description,
			Cuisine:      row.Cuisine,
			Price:        price,
			PhotoURL:     row.PhotoURL,
		})
	}

	return items, nil
}
