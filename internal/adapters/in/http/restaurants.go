package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var errInvalidBody = errors.New("invalid request body")

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context, params servers.ListRestaurantsParams) error {
	query := queries.NewListRestaurantsQuery(optional(params.Name), optional(params.Location), optional(params.Cuisine))

	restaurants, err := s.queries.ListRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = toRestaurant(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /api/v1/restaurants/{restaurantId}.
func (s *Server) GetRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error {
	id, err := toKernelID("restaurantId", restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}
	return s.respondRestaurant(ctx, http.StatusOK, id)
}

// CreateRestaurant handles POST /api/v1/restaurants. Staff only.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	if _, err := requireStaff(ctx, "create restaurant"); err != nil {
		return s.respondError(ctx, err)
	}

	var body servers.CreateRestaurantJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, restaurantDetails(body))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondRestaurant(ctx, http.StatusCreated, restaurantID)
}

// UpdateRestaurant handles PUT /api/v1/restaurants/{restaurantId}. Staff only.
func (s *Server) UpdateRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error {
	if _, err := requireStaff(ctx, "update restaurant"); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := toKernelID("restaurantId", restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body servers.UpdateRestaurantJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	cmd, err := commands.NewUpdateRestaurantCommand(id, restaurantDetails(body))
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.UpdateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return s.respondRestaurant(ctx, http.StatusOK, id)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{restaurantId}. Staff
// only; menu items and orders of the restaurant go with it.
func (s *Server) DeleteRestaurant(ctx echo.Context, restaurantId openapi_types.UUID) error {
	if _, err := requireStaff(ctx, "delete restaurant"); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := toKernelID("restaurantId", restaurantId)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteRestaurantCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondRestaurant(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	r, err := s.queries.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(status, toRestaurant(r))
}

func restaurantDetails(body servers.RestaurantDetails) restaurant.Details {
	return restaurant.Details{
		Name:     body.Name,
		Address:  body.Address,
		Location: optional(body.Location),
		Phone:    optional(body.Phone),
		Email:    body.Email,
	}
}
