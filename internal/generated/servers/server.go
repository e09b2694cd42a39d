package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/menu-items)
	ListMenuItems(ctx echo.Context, params ListMenuItemsParams) error
	// (POST /api/v1/menu-items)
	CreateMenuItem(ctx echo.Context) error
	// (DELETE /api/v1/menu-items/{menuItemId})
	DeleteMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/status)
	UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/restaurants)
	ListRestaurants(ctx echo.Context, params ListRestaurantsParams) error
	// (POST /api/v1/restaurants)
	CreateRestaurant(ctx echo.Context) error
	// (DELETE /api/v1/restaurants/{restaurantId})
	DeleteRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error
	// (GET /api/v1/restaurants/{restaurantId})
	GetRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error
	// (PUT /api/v1/restaurants/{restaurantId})
	UpdateRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error
	// (GET /api/v1/users)
	ListUsers(ctx echo.Context) error
	// (POST /api/v1/users)
	RegisterUser(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListMenuItems(ctx echo.Context) error {
	var err error
	ctx.Set(BasicAuthScopes, []string{})

	var params ListMenuItemsParams
	err = runtime.BindQueryParameter("form", true, false, "restaurant_id", ctx.QueryParams(), &params.RestaurantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter restaurant_id: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "cuisine", ctx.QueryParams(), &params.Cuisine)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cuisine: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "name", ctx.QueryParams(), &params.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "location", ctx.QueryParams(), &params.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter location: %s", err))
	}

	return w.Handler.ListMenuItems(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateMenuItem(ctx echo.Context) error {
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.CreateMenuItem(ctx)
}

func (w *ServerInterfaceWrapper) DeleteMenuItem(ctx echo.Context) error {
	menuItemId, err := bindUUIDPathParam(ctx, "menuItemId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.DeleteMenuItem(ctx, menuItemId)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BasicAuthScopes, []string{})

	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, false, "restaurant", ctx.QueryParams(), &params.Restaurant)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter restaurant: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.UpdateOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	var err error
	ctx.Set(BasicAuthScopes, []string{})

	var params ListRestaurantsParams
	err = runtime.BindQueryParameter("form", true, false, "name", ctx.QueryParams(), &params.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter name: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "location", ctx.QueryParams(), &params.Location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter location: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "cuisine", ctx.QueryParams(), &params.Cuisine)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cuisine: %s", err))
	}

	return w.Handler.ListRestaurants(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.CreateRestaurant(ctx)
}

func (w *ServerInterfaceWrapper) DeleteRestaurant(ctx echo.Context) error {
	restaurantId, err := bindUUIDPathParam(ctx, "restaurantId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.DeleteRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) GetRestaurant(ctx echo.Context) error {
	restaurantId, err := bindUUIDPathParam(ctx, "restaurantId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.GetRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) UpdateRestaurant(ctx echo.Context) error {
	restaurantId, err := bindUUIDPathParam(ctx, "restaurantId")
	if err != nil {
		return err
	}
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.UpdateRestaurant(ctx, restaurantId)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	ctx.Set(BasicAuthScopes, []string{})
	return w.Handler.ListUsers(ctx)
}

// RegisterUser is public: no security scopes are set.
func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	return w.Handler.RegisterUser(ctx)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is the part of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/menu-items", wrapper.ListMenuItems)
	router.POST(baseURL+"/api/v1/menu-items", wrapper.CreateMenuItem)
	router.DELETE(baseURL+"/api/v1/menu-items/:menuItemId", wrapper.DeleteMenuItem)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/restaurants", wrapper.ListRestaurants)
	router.POST(baseURL+"/api/v1/restaurants", wrapper.CreateRestaurant)
	router.DELETE(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.DeleteRestaurant)
	router.GET(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.GetRestaurant)
	router.PUT(baseURL+"/api/v1/restaurants/:restaurantId", wrapper.UpdateRestaurant)
	router.GET(baseURL+"/api/v1/users", wrapper.ListUsers)
	router.POST(baseURL+"/api/v1/users", wrapper.RegisterUser)
}
