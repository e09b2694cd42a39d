package http

import (
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListMenuItems handles GET /api/v1/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context, params servers.ListMenuItemsParams) error {
	filter := queries.MenuItemFilter{
		Cuisine:        optional(params.Cuisine),
		RestaurantName: optional(params.Name),
		Location:       optional(params.Location),
	}
	if params.RestaurantId != nil {
		id, err := toKernelID("restaurant_id", *params.RestaurantId)
		if err != nil {
			return badRequest(ctx, err)
		}
		filter.RestaurantID = &id
	}

	query, err := queries.NewListMenuItemsQuery(filter)
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.queries.ListMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = toMenuItem(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /api/v1/menu-items. Staff only.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	if _, err := requireStaff(ctx, "create menu item"); err != nil {
		return s.respondError(ctx, err)
	}

	var body servers.CreateMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	restaurantID, err := toKernelID("restaurantId", body.RestaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	price, err := kernel.NewMoneyFromFloat(body.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	details := restaurant.MenuItemDetails{
		Name:        body.Name,
		Description: optional(body.Description),
		Cuisine:     body.Cuisine,
		Price:       price,
		PhotoURL:    optional(body.PhotoUrl),
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(menuItemID, restaurantID, details)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.MenuItem{
		Id:           menuItemID.Bytes(),
		RestaurantId: body.RestaurantId,
		Name:         strings.TrimSpace(details.Name),
		Description:  strings.TrimSpace(details.Description),
		Cuisine:      strings.TrimSpace(details.Cuisine),
		Price:        price.Float(),
		PhotoUrl:     strings.TrimSpace(details.PhotoURL),
	})
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/{menuItemId}. Staff only.
func (s *Server) DeleteMenuItem(ctx echo.Context, menuItemId openapi_types.UUID) error {
	if _, err := requireStaff(ctx, "delete menu item"); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := toKernelID("menuItemId", menuItemId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
