package http

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/generated/servers"
)

type (
	commandHandler[C any] interface {
		Handle(ctx context.Context, cmd C) error
	}

	queryHandler[Q, R any] interface {
		Handle(ctx context.Context, query Q) (R, error)
	}
)

// Commands groups the write use cases behind the API.
type Commands struct {
	CreateRestaurant  commandHandler[commands.CreateRestaurantCommand]
	UpdateRestaurant  commandHandler[commands.UpdateRestaurantCommand]
	DeleteRestaurant  commandHandler[commands.DeleteRestaurantCommand]
	CreateMenuItem    commandHandler[commands.CreateMenuItemCommand]
	DeleteMenuItem    commandHandler[commands.DeleteMenuItemCommand]
	RegisterUser      commandHandler[commands.RegisterUserCommand]
	CreateOrder       commandHandler[commands.CreateOrderCommand]
	UpdateOrderStatus commandHandler[commands.UpdateOrderStatusCommand]
}

// Queries groups the read use cases behind the API.
type Queries struct {
	ListRestaurants queryHandler[queries.ListRestaurantsQuery, []queries.RestaurantResponse]
	GetRestaurant   queryHandler[queries.GetRestaurantQuery, queries.RestaurantResponse]
	ListMenuItems   queryHandler[queries.ListMenuItemsQuery, []queries.MenuItemResponse]
	ListOrders      queryHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder        queryHandler[queries.GetOrderQuery, queries.OrderResponse]
	ListUsers       queryHandler[queries.ListUsersQuery, []queries.UserResponse]
}

// Server implements servers.ServerInterface on top of the command and query
// handlers. Authentication happens in middleware; Server only checks roles.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries, logger *slog.Logger) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
		logger:   logger.With("component", "http_server"),
	}
}
