package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists accounts: the viewer's own for customers, all for staff.
type ListUsersQuery struct {
	viewer Viewer

	guard guard.ConstructorGuard
}

func NewListUsersQuery(viewer Viewer) (ListUsersQuery, error) {
	if err := viewer.validate(); err != nil {
		return ListUsersQuery{}, err
	}
	return ListUsersQuery{viewer: viewer, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID              kernel.UUID
	Username        string
	Email           string
	DeliveryAddress string
	IsStaff         bool
}

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

type userRow struct {
	ID              uuid.UUID
	Username        string
	Email           string
	DeliveryAddress string
	IsStaff         bool
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).
		Table("users").
		Select("id, username, email, delivery_address, is_staff")
	if !query.viewer.IsStaff {
		tx = tx.Where("id = ?", query.viewer.UserID.Bytes())
	}

	var rows []userRow
	if err := tx.Order("username").Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		users = append(users, UserResponse{
			ID:              id,
			Username:        row.Username,
			Email:           row.Email,
			DeliveryAddress: row.DeliveryAddress,
			IsStaff:         row.IsStaff,
		})
	}

	return users, nil
}
