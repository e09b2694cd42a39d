// Package servers binds the operations of api/openapi.yaml to echo: request
// and response types, the ServerInterface implemented by the HTTP adapter and
// the wrapper that decodes path and query parameters.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BasicAuthScopes = "basicAuth.Scopes"
)

// OrderStatus defines model for OrderStatus.
type OrderStatus string

const (
	Confirmed   OrderStatus = "confirmed"
	Delivered   OrderStatus = "delivered"
	Dispatched  OrderStatus = "dispatched"
	Pending     OrderStatus = "pending"
	Preparation OrderStatus = "preparation"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Restaurant defines model for Restaurant.
type Restaurant struct {
	Address  string             `json:"address"`
	Email    string             `json:"email"`
	Id       openapi_types.UUID `json:"id"`
	Location string             `json:"location"`
	Name     string             `json:"name"`
	Phone    string             `json:"phone"`
}

// RestaurantDetails defines model for RestaurantDetails.
type RestaurantDetails struct {
	Address  string  `json:"address"`
	Email    string  `json:"email"`
	Location *string `json:"location,omitempty"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
}

// MenuItem defines model for MenuItem.
type MenuItem struct {
	Cuisine      string             `json:"cuisine"`
	Description  string             `json:"description"`
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	PhotoUrl     string             `json:"photoUrl"`
	Price        float64            `json:"price"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Cuisine      string             `json:"cuisine"`
	Description  *string            `json:"description,omitempty"`
	Name         string             `json:"name"`
	PhotoUrl     *string            `json:"photoUrl,omitempty"`
	Price        float64            `json:"price"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// User defines model for User.
type User struct {
	DeliveryAddress string             `json:"deliveryAddress"`
	Email           string             `json:"email"`
	Id              openapi_types.UUID `json:"id"`
	IsStaff         bool               `json:"isStaff"`
	Username        string             `json:"username"`
}

// NewUser defines model for NewUser.
type NewUser struct {
	DeliveryAddress *string `json:"deliveryAddress,omitempty"`
	Email           *string `json:"email,omitempty"`
	Password        string  `json:"password"`
	Username        string  `json:"username"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt    time.Time            `json:"createdAt"`
	Id           openapi_types.UUID   `json:"id"`
	MenuItemIds  []openapi_types.UUID `json:"menuItemIds"`
	Quantity     int                  `json:"quantity"`
	RestaurantId openapi_types.UUID   `json:"restaurantId"`
	Status       OrderStatus          `json:"status"`
	TotalPrice   float64              `json:"totalPrice"`
	UserId       openapi_types.UUID   `json:"userId"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	MenuItemIds  []openapi_types.UUID `json:"menuItemIds"`
	Quantity     int                  `json:"quantity"`
	RestaurantId openapi_types.UUID   `json:"restaurantId"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	Status OrderStatus `json:"status"`
}

// ListRestaurantsParams defines parameters for ListRestaurants.
type ListRestaurantsParams struct {
	Name     *string `form:"name,omitempty" json:"name,omitempty"`
	Location *string `form:"location,omitempty" json:"location,omitempty"`
	Cuisine  *string `form:"cuisine,omitempty" json:"cuisine,omitempty"`
}

// ListMenuItemsParams defines parameters for ListMenuItems.
type ListMenuItemsParams struct {
	RestaurantId *openapi_types.UUID `form:"restaurant_id,omitempty" json:"restaurant_id,omitempty"`
	Cuisine      *string             `form:"cuisine,omitempty" json:"cuisine,omitempty"`

	// Name Restaurant name
	Name *string `form:"name,omitempty" json:"name,omitempty"`

	// Location Restaurant address or location
	Location *string `form:"location,omitempty" json:"location,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Restaurant *openapi_types.UUID `form:"restaurant,omitempty" json:"restaurant,omitempty"`
}

type CreateRestaurantJSONRequestBody = RestaurantDetails

type UpdateRestaurantJSONRequestBody = RestaurantDetails

type CreateMenuItemJSONRequestBody = NewMenuItem

type RegisterUserJSONRequestBody = NewUser

type CreateOrderJSONRequestBody = NewOrder

type UpdateOrderStatusJSONRequestBody = StatusUpdate
