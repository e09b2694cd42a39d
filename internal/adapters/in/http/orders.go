package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/orders. Customers see their own orders,
// staff see all of them; ?restaurant= narrows either view.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	v, err := viewer(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var restaurantID *kernel.UUID
	if params.Restaurant != nil {
		id, idErr := toKernelID("restaurant", *params.Restaurant)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		restaurantID = &id
	}

	query, err := queries.NewListOrdersQuery(v, restaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The order is placed for the
// authenticated user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	v, err := viewer(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	restaurantID, err := toKernelID("restaurantId", body.RestaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	itemIDs := make([]kernel.UUID, 0, len(body.MenuItemIds))
	for _, raw := range body.MenuItemIds {
		id, idErr := toKernelID("menuItemIds", raw)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		itemIDs = append(itemIDs, id)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, v.UserID, restaurantID, itemIDs, body.Quantity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusCreated, v, orderID)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	v, err := viewer(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, v, id)
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status. Staff only.
// Watchers of the order are notified once the change is committed.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	v, err := requireStaff(ctx, "update order status")
	if err != nil {
		return s.respondError(ctx, err)
	}

	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return badRequest(ctx, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondOrder(ctx, http.StatusOK, v, id)
}

func (s *Server) respondOrder(ctx echo.Context, status int, v queries.Viewer, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(v, id)
	if err != nil {
		return badRequest(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(status, toOrder(o))
}
