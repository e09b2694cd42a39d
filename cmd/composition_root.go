package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/ws"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/tracking"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.StatusNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, notifier ports.StatusNotifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuItemUoWFactory() commands.MenuItemUoWFactory {
	return FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuItemUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuItemUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateUserLookup returns the repository basic auth checks credentials against.
func (c *CompositionRoot) CreateUserLookup() httpin.UserLookup {
	return c.uowFactory.Create().UserRepository()
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createRestaurant := c.CreateCreateRestaurantCommandHandler()
	updateRestaurant := c.CreateUpdateRestaurantCommandHandler()
	deleteRestaurant := c.CreateDeleteRestaurantCommandHandler()
	createMenuItem := c.CreateCreateMenuItemCommandHandler()
	deleteMenuItem := c.CreateDeleteMenuItemCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrderStatus := c.CreateUpdateOrderStatusCommandHandler()

	return httpin.NewServer(
		httpin.Commands{
			CreateRestaurant:  &createRestaurant,
			UpdateRestaurant:  &updateRestaurant,
			DeleteRestaurant:  &deleteRestaurant,
			CreateMenuItem:    &createMenuItem,
			DeleteMenuItem:    &deleteMenuItem,
			RegisterUser:      &registerUser,
			CreateOrder:       &createOrder,
			UpdateOrderStatus: &updateOrderStatus,
		},
		httpin.Queries{
			ListRestaurants: queries.NewListRestaurantsQueryHandler(c.gormDB),
			GetRestaurant:   queries.NewGetRestaurantQueryHandler(c.gormDB),
			ListMenuItems:   queries.NewListMenuItemsQueryHandler(c.gormDB),
			ListOrders:      queries.NewListOrdersQueryHandler(c.gormDB),
			GetOrder:        c.CreateGetOrderQueryHandler(),
			ListUsers:       queries.NewListUsersQueryHandler(c.gormDB),
		},
		c.logger,
	)
}

// CreateRouter builds the echo instance with the REST API and the order
// tracking websocket endpoint.
func (c *CompositionRoot) CreateRouter(manager *tracking.Manager) (*echo.Echo, error) {
	users := c.CreateUserLookup()

	e, err := httpin.NewRouter(c.CreateHTTPServer(), users, c.logger)
	if err != nil {
		return nil, err
	}

	if c.cfg.TrackingRequireAuth {
		handler := ws.NewHandler(manager, c.logger, ws.WithAccessCheck(c.orderAccessCheck()))
		handler.Register(e, httpin.BasicAuth(users, nil))
	} else {
		ws.NewHandler(manager, c.logger).Register(e)
	}

	return e, nil
}

// orderAccessCheck lets the owner of an order and staff watch it.
func (c *CompositionRoot) orderAccessCheck() ws.AccessCheck {
	getOrder := c.CreateGetOrderQueryHandler()
	return func(ctx echo.Context, orderID string) error {
		viewer, ok := httpin.ViewerFrom(ctx)
		if !ok {
			return errs.NewAccessDeniedError("watch order")
		}
		id, err := kernel.UUIDFromString(orderID)
		if err != nil {
			return err
		}
		query, err := queries.NewGetOrderQuery(viewer, id)
		if err != nil {
			return err
		}
		_, err = getOrder.Handle(ctx.Request().Context(), query)
		return err
	}
}

// SeedAdmin creates the configured staff account unless it already exists.
func (c *CompositionRoot) SeedAdmin(ctx context.Context) error {
	if c.cfg.AdminUsername == "" {
		return nil
	}

	_, err := c.CreateUserLookup().GetByUsername(ctx, c.cfg.AdminUsername)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), c.cfg.AdminUsername, "", c.cfg.AdminPassword, "", true)
	if err != nil {
		return err
	}
	handler := c.CreateRegisterUserCommandHandler()
	if err := handler.Handle(ctx, cmd); err != nil {
		return err
	}

	c.logger.Info("admin account created", "username", c.cfg.AdminUsername)
	return nil
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
