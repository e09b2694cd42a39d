package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/menuitemrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	// seeded catalogue
	roma, tokyo     *restaurant.Restaurant
	pizza, ramen    *restaurant.MenuItem
	alice, bob      *user.User
	admin           *user.User
	aliceRomaOrder  *order.Order
	aliceTokyoOrder *order.Order
	bobRomaOrder    *order.Order
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.seed(ctx)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) seed(ctx context.Context) {
	tracker := &mockAggregateTracker{}
	restaurants := restaurantrepo.NewGormRestaurantRepository(suite.db, tracker)
	items := menuitemrepo.NewGormMenuItemRepository(suite.db, tracker)
	users := userrepo.NewGormUserRepository(suite.db, tracker)
	orders := orderrepo.NewGormOrderRepository(suite.db, tracker)

	suite.roma = suite.restaurant("Trattoria Roma", "12 Via Appia, Rome", "Centro")
	suite.tokyo = suite.restaurant("Tokyo Ramen 100%", "4 Shibuya, Tokyo", "Shibuya")
	suite.Require().NoError(restaurants.Add(ctx, suite.roma))
	suite.Require().NoError(restaurants.Add(ctx, suite.tokyo))

	suite.pizza = suite.menuItem(suite.roma, "Margherita", "Italian", 1100)
	suite.ramen = suite.menuItem(suite.tokyo, "Tonkotsu", "Japanese", 1500)
	suite.Require().NoError(items.Add(ctx, suite.pizza))
	suite.Require().NoError(items.Add(ctx, suite.ramen))

	suite.alice = suite.user("alice", false)
	suite.bob = suite.user("bob", false)
	suite.admin = suite.user("admin", true)
	for _, u := range []*user.User{suite.alice, suite.bob, suite.admin} {
		suite.Require().NoError(users.Add(ctx, u))
	}

	suite.aliceRomaOrder = suite.order(suite.alice, suite.roma, suite.pizza)
	suite.aliceTokyoOrder = suite.order(suite.alice, suite.tokyo, suite.ramen)
	suite.bobRomaOrder = suite.order(suite.bob, suite.roma, suite.pizza)
	for _, o := range []*order.Order{suite.aliceRomaOrder, suite.aliceTokyoOrder, suite.bobRomaOrder} {
		suite.Require().NoError(orders.Add(ctx, o))
	}
}

func (suite *QueriesIntegrationTestSuite) TestListRestaurants_NoFilters_ReturnsAllByName() {
	result, err := queries.NewListRestaurantsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewListRestaurantsQuery("", "", ""))

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Tokyo Ramen 100%", result[0].Name)
	suite.Equal("Trattoria Roma", result[1].Name)
}

func (suite *QueriesIntegrationTestSuite) TestListRestaurants_Filters() {
	handler := queries.NewListRestaurantsQueryHandler(suite.db)
	ctx := context.Background()

	testCases := []struct {
		name     string
		query    queries.ListRestaurantsQuery
		expected []kernel.UUID
	}{
		{"name substring ignores case", queries.NewListRestaurantsQuery("roma", "", ""), []kernel.UUID{suite.roma.ID()}},
		{"location matches address", queries.NewListRestaurantsQuery("", "tokyo", ""), []kernel.UUID{suite.tokyo.ID()}},
		{"location matches location text", queries.NewListRestaurantsQuery("", "centro", ""), []kernel.UUID{suite.roma.ID()}},
		{"cuisine via menu items", queries.NewListRestaurantsQuery("", "", "japanese"), []kernel.UUID{suite.tokyo.ID()}},
		{"percent sign is literal", queries.NewListRestaurantsQuery("100%", "", ""), []kernel.UUID{suite.tokyo.ID()}},
		{"filters combine", queries.NewListRestaurantsQuery("roma", "", "Japanese"), nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result, err := handler.Handle(ctx, tc.query)
			suite.Require().NoError(err)

			ids := make([]kernel.UUID, 0, len(result))
			for _, r := range result {
				ids = append(ids, r.ID)
			}
			suite.ElementsMatch(tc.expected, ids)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetRestaurant() {
	handler := queries.NewGetRestaurantQueryHandler(suite.db)

	query, err := queries.NewGetRestaurantQuery(suite.roma.ID())
	suite.Require().NoError(err)
	got, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("Trattoria Roma", got.Name)
	suite.Equal("Centro", got.Location)

	query, _ = queries.NewGetRestaurantQuery(kernel.NewUUID())
	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_Filters() {
	handler := queries.NewListMenuItemsQueryHandler(suite.db)
	romaID := suite.roma.ID()

	testCases := []struct {
		name     string
		filter   queries.MenuItemFilter
		expected []kernel.UUID
	}{
		{"no filter", queries.MenuItemFilter{}, []kernel.UUID{suite.pizza.ID(), suite.ramen.ID()}},
		{"restaurant id", queries.MenuItemFilter{RestaurantID: &romaID}, []kernel.UUID{suite.pizza.ID()}},
		{"cuisine substring", queries.MenuItemFilter{Cuisine: "jap"}, []kernel.UUID{suite.ramen.ID()}},
		{"restaurant name only", queries.MenuItemFilter{RestaurantName: "trattoria"}, []kernel.UUID{suite.pizza.ID()}},
		{"location only", queries.MenuItemFilter{Location: "shibuya"}, []kernel.UUID{suite.ramen.ID()}},
		{"name and location must both match", queries.MenuItemFilter{RestaurantName: "roma", Location: "tokyo"}, nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewListMenuItemsQuery(tc.filter)
			suite.Require().NoError(err)

			result, err := handler.Handle(context.Background(), query)
			suite.Require().NoError(err)

			ids := make([]kernel.UUID, 0, len(result))
			for _, item := range result {
				ids = append(ids, item.ID)
			}
			suite.ElementsMatch(tc.expected, ids)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestListMenuItems_MapsPrice() {
	romaID := suite.roma.ID()
	query, _ := queries.NewListMenuItemsQuery(queries.MenuItemFilter{RestaurantID: &romaID})

	result, err := queries.NewListMenuItemsQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(kernel.Money(1100), result[0].Price)
	suite.Equal(romaID, result[0].RestaurantID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_CustomerSeesOwnOrders() {
	handler := queries.NewListOrdersQueryHandler(suite.db)
	query, err := queries.NewListOrdersQuery(queries.Viewer{UserID: suite.alice.ID()}, nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.ElementsMatch(
		[]kernel.UUID{suite.aliceRomaOrder.ID(), suite.aliceTokyoOrder.ID()},
		orderIDs(result),
	)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_RestaurantFilterOnlyWhenGiven() {
	handler := queries.NewListOrdersQueryHandler(suite.db)
	romaID := suite.roma.ID()

	query, _ := queries.NewListOrdersQuery(queries.Viewer{UserID: suite.alice.ID()}, &romaID)
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{suite.aliceRomaOrder.ID()}, orderIDs(result))

	query, _ = queries.NewListOrdersQuery(queries.Viewer{UserID: suite.admin.ID(), IsStaff: true}, &romaID)
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.ElementsMatch([]kernel.UUID{suite.aliceRomaOrder.ID(), suite.bobRomaOrder.ID()}, orderIDs(result))
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_StaffSeesEverything() {
	query, _ := queries.NewListOrdersQuery(queries.Viewer{UserID: suite.admin.ID(), IsStaff: true}, nil)

	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_Access() {
	handler := queries.NewGetOrderQueryHandler(suite.db)
	ctx := context.Background()

	query, _ := queries.NewGetOrderQuery(queries.Viewer{UserID: suite.alice.ID()}, suite.aliceRomaOrder.ID())
	got, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("pending", got.Status)
	suite.Equal([]kernel.UUID{suite.pizza.ID()}, got.MenuItemIDs)
	suite.Equal(kernel.Money(2200), got.TotalPrice)

	query, _ = queries.NewGetOrderQuery(queries.Viewer{UserID: suite.bob.ID()}, suite.aliceRomaOrder.ID())
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrAccessDenied)

	query, _ = queries.NewGetOrderQuery(queries.Viewer{UserID: suite.admin.ID(), IsStaff: true}, suite.aliceRomaOrder.ID())
	_, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)

	query, _ = queries.NewGetOrderQuery(queries.Viewer{UserID: suite.admin.ID(), IsStaff: true}, kernel.NewUUID())
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListUsers() {
	handler := queries.NewListUsersQueryHandler(suite.db)

	query, _ := queries.NewListUsersQuery(queries.Viewer{UserID: suite.bob.ID()})
	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("bob", result[0].Username)

	query, _ = queries.NewListUsersQuery(queries.Viewer{UserID: suite.admin.ID(), IsStaff: true})
	result, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 3)
	suite.Equal("admin", result[0].Username)
}

func (suite *QueriesIntegrationTestSuite) restaurant(name, address, location string) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Details{
		Name: name, Address: address, Location: location, Email: "owner@example.com",
	})
	suite.Require().NoError(err)
	return r
}

func (suite *QueriesIntegrationTestSuite) menuItem(r *restaurant.Restaurant, name, cuisine string, cents int64) *restaurant.MenuItem {
	item, err := restaurant.NewMenuItem(kernel.NewUUID(), r.ID(), restaurant.MenuItemDetails{
		Name: name, Cuisine: cuisine, Price: kernel.Money(cents),
	})
	suite.Require().NoError(err)
	return item
}

func (suite *QueriesIntegrationTestSuite) user(username string, staff bool) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), username, "", "password-123", "", staff)
	suite.Require().NoError(err)
	return u
}

func (suite *QueriesIntegrationTestSuite) order(u *user.User, r *restaurant.Restaurant, item *restaurant.MenuItem) *order.Order {
	total, err := item.Price().Multiply(2)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), u.ID(), r.ID(), []kernel.UUID{item.ID()}, 2, total)
	suite.Require().NoError(err)
	return o
}

func orderIDs(orders []queries.OrderResponse) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
