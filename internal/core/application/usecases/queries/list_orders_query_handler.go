package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const orderColumns = "id, user_id, restaurant_id, menu_item_ids, quantity, total_cents, status, created_at"

type orderRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	MenuItemIDs  pq.StringArray
	Quantity     int
	TotalCents   int64
	Status       string
	CreatedAt    time.Time
}

func (row orderRow) toResponse() (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	menuItemIDs := make([]kernel.UUID, 0, len(row.MenuItemIDs))
	for _, raw := range row.MenuItemIDs {
		itemID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return OrderResponse{}, parseErr
		}
		menuItemIDs = append(menuItemIDs, itemID)
	}

	total, err := kernel.NewMoney(row.TotalCents)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:           id,
		UserID:       userID,
		RestaurantID: restaurantID,
		MenuItemIDs:  menuItemIDs,
		Quantity:     row.Quantity,
		TotalPrice:   total,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// ListOrdersQueryHandler lists orders visible to the viewer.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle scopes customers to their own orders. The restaurant filter is only
// added when the query carries one.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)
	if !query.viewer.IsStaff {
		tx = tx.Where("user_id = ?", query.viewer.UserID.Bytes())
	}
	if query.restaurantID != nil {
		tx = tx.Where("restaurant_id = ?", query.restaurantID.Bytes())
	}

	var rows []orderRow
	if err := tx.Order("created_at DESC, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		o, err := row.toResponse()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetOrderQueryHandler loads one order for its owner or for staff.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError for an unknown order and an
// AccessDeniedError when a customer asks for someone else's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).
		Table("orders").
		Select(orderColumns).
		Where("id = ?", query.orderID.Bytes()).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return OrderResponse{}, err
	}
	if len(rows) == 0 {
		return OrderResponse{}, notFound("order", query.orderID)
	}

	o, err := rows[0].toResponse()
	if err != nil {
		return OrderResponse{}, err
	}

	if !query.viewer.IsStaff && !o.UserID.IsEqual(query.viewer.UserID) {
		return OrderResponse{}, errs.NewAccessDeniedErrorWithCause("view order",
			errors.New("order belongs to another user"))
	}

	return o, nil
}
