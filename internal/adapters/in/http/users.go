package http

import (
	"net/http"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users. Public; always creates a customer.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterUserJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, errInvalidBody)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		body.Username,
		optional(body.Email),
		body.Password,
		optional(body.DeliveryAddress),
		false,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.User{
		Id:              userID.Bytes(),
		Username:        strings.TrimSpace(cmd.Username()),
		Email:           strings.TrimSpace(cmd.Email()),
		DeliveryAddress: strings.TrimSpace(cmd.DeliveryAddress()),
		IsStaff:         false,
	})
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context) error {
	v, err := viewer(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewListUsersQuery(v)
	if err != nil {
		return badRequest(ctx, err)
	}

	users, err := s.queries.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.User, len(users))
	for i, u := range users {
		response[i] = toUser(u)
	}
	return ctx.JSON(http.StatusOK, response)
}
