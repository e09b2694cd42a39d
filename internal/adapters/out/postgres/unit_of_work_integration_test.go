package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, menu_items, users, restaurants CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.RestaurantRepository())
	suite.NotNil(uow1.MenuItemRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	// The deferred rollback used by the handlers runs after a commit.
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPlacementCommitsAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r, item, customer := suite.catalogue()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, item))
	suite.Require().NoError(uow.UserRepository().Add(ctx, customer))

	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), r.ID(), []kernel.UUID{item.ID()}, 2, kernel.Money(2400))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal(4, gormUoW.TrackedCount())

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{item.ID()}, got.MenuItemIDs())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	r, item, _ := suite.catalogue()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, item))

	_, err := uow.MenuItemRepository().Get(ctx, item.ID())
	suite.Require().NoError(err, "Item should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().Error(err, "Restaurant should not exist after rollback")
	_, err = fresh.MenuItemRepository().Get(ctx, item.ID())
	suite.Require().Error(err, "Menu item should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	r1, _, _ := suite.catalogue()
	r2, _, _ := suite.catalogue()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.RestaurantRepository().Add(ctx, r1))
	suite.Require().NoError(uow2.RestaurantRepository().Add(ctx, r2))

	_, err := uow1.RestaurantRepository().Get(ctx, r2.ID())
	suite.Require().Error(err, "UOW1 should not see r2")
	_, err = uow2.RestaurantRepository().Get(ctx, r1.ID())
	suite.Require().Error(err, "UOW2 should not see r1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.RestaurantRepository().Get(ctx, r1.ID())
	suite.Require().NoError(err)
	_, err = fresh.RestaurantRepository().Get(ctx, r2.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	r, _, _ := suite.catalogue()

	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))

	fresh := suite.factory.Create()
	got, err := fresh.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(r.ID(), got.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) catalogue() (*restaurant.Restaurant, *restaurant.MenuItem, *user.User) {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Details{
		Name: "Taqueria", Address: "5 Mission St", Email: "tacos@example.com",
	})
	suite.Require().NoError(err)

	item, err := restaurant.NewMenuItem(kernel.NewUUID(), r.ID(), restaurant.MenuItemDetails{
		Name: "Al Pastor", Cuisine: "Mexican", Price: kernel.Money(1200),
	})
	suite.Require().NoError(err)

	u, err := user.NewUser(kernel.NewUUID(), "user-"+kernel.NewUUID().String()[:8], "", "password-123", "", false)
	suite.Require().NoError(err)

	return r, item, u
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
