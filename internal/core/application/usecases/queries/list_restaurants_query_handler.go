package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler runs restaurant searches, ordered by name.
type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

type restaurantRow struct {
	ID       uuid.UUID
	Name     string
	Address  string
	Location string
	Phone    string
	Email    string
}

func (h ListRestaurantsQueryHandler) Handle(ctx context.Context, query ListRestaurantsQuery) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("restaurants AS r").
		Select("r.id, r.name, r.address, r.location, r.phone, r.email")

	if query.name != "" {
		tx = tx.Where("r.name ILIKE ?", containsPattern(query.name))
	}
	if query.location != "" {
		pattern := containsPattern(query.location)
		tx = tx.Where("(r.address ILIKE ? OR r.location ILIKE ?)", pattern, pattern)
	}
	if query.cuisine != "" {
		tx = tx.Where(
			"EXISTS (SELECT 1 FROM menu_items m WHERE m.restaurant_id = r.id AND LOWER(m.cuisine) = LOWER(?))",
			query.cuisine,
		)
	}

	var rows []restaurantRow
	if err := tx.Order("r.name, r.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]RestaurantResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		result = append(result, RestaurantResponse{
			ID:       id,
			Name:     row.Name,
			Address:  row.Address,
			Location: row.Location,
			Phone:    row.Phone,
			Email:    row.Email,
		})
	}

	return result, nil
}
