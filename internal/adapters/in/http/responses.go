package http

import (
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(paramName string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toRestaurant(r queries.RestaurantResponse) servers.Restaurant {
	return servers.Restaurant{
		Id:       r.ID.Bytes(),
		Name:     r.Name,
		Address:  r.Address,
		Location: r.Location,
		Phone:    r.Phone,
		Email:    r.Email,
	}
}

func toMenuItem(m queries.MenuItemResponse) servers.MenuItem {
	return servers.MenuItem{
		Id:           m.ID.Bytes(),
		RestaurantId: m.RestaurantID.Bytes(),
		Name:         m.Name,
		Description:  m.Description,
		Cuisine:      m.Cuisine,
		Price:        m.Price.Float(),
		PhotoUrl:     m.PhotoURL,
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	itemIDs := make([]openapi_types.UUID, 0, len(o.MenuItemIDs))
	for _, id := range o.MenuItemIDs {
		itemIDs = append(itemIDs, id.Bytes())
	}

	return servers.Order{
		Id:           o.ID.Bytes(),
		UserId:       o.UserID.Bytes(),
		RestaurantId: o.RestaurantID.Bytes(),
		MenuItemIds:  itemIDs,
		Quantity:     o.Quantity,
		TotalPrice:   o.TotalPrice.Float(),
		Status:       servers.OrderStatus(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func toUser(u queries.UserResponse) servers.User {
	return servers.User{
		Id:              u.ID.Bytes(),
		Username:        u.Username,
		Email:           u.Email,
		DeliveryAddress: u.DeliveryAddress,
		IsStaff:         u.IsStaff,
	}
}
