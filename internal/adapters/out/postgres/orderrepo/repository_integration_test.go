package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/testdb"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

// OrderRepositoryIntegrationTestSuite runs GormOrderRepository against a real
// PostgreSQL with the full schema, foreign keys included.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *tcpostgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

var orderedAt = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db))

	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO customers (national_id, first_names, last_names, email)
		VALUES ('45879632', 'Ana', 'Torres', 'ana@example.com')`).Error)
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO delivery_persons (national_id, first_names, last_names)
		VALUES ('70000001', 'Luis', 'Paz')`).Error)
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO products (serial_number, name, unit_price, stock)
		VALUES ('SN-1', 'Dune', 10.00, 5), ('SN-2', 'Emma', 4.25, 5)`).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	person := kernel.MustNationalID("70000001")
	o, err := order.NewOrder(kernel.MustNationalID("45879632"), &person, orderedAt, nil, "ring twice")
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddLine("SN-1", 2, decimal.RequireFromString("10.00")))
	suite.Require().NoError(o.AddLine("SN-2", 1, decimal.RequireFromString("4.25")))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder() *order.Order {
	o := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", o).Once()
	suite.Require().NoError(suite.repository.Add(suite.T().Context(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) count(model any) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsNumberAndStoresLines() {
	o := suite.addOrder()

	suite.Equal(int64(1), o.Number())
	suite.Equal(int64(1), suite.count(&orderrepo.OrderDTO{}))
	suite.Equal(int64(2), suite.count(&orderrepo.OrderLineDTO{}))
	suite.Require().Len(o.DomainEvents(), 1)
	suite.Equal(order.RegisteredEventName, o.DomainEvents()[0].EventName())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NumbersAreSequential() {
	first := suite.addOrder()
	second := suite.addOrder()

	suite.Equal(first.Number()+1, second.Number())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Rejected() {
	testCases := []struct {
		name     string
		setup    func() *order.Order
		expected error
	}{
		{
			name: "should reject an order without lines",
			setup: func() *order.Order {
				o, err := order.NewOrder(kernel.MustNationalID("45879632"), nil, orderedAt, nil, "")
				suite.Require().NoError(err)
				return o
			},
			expected: errs.ErrEmptyOrder,
		},
		{
			name: "should reject an unknown customer",
			setup: func() *order.Order {
				o, err := order.NewOrder(kernel.MustNationalID("99999999"), nil, orderedAt, nil, "")
				suite.Require().NoError(err)
				suite.Require().NoError(o.AddLine("SN-1", 1, decimal.RequireFromString("10.00")))
				return o
			},
			expected: errs.ErrReferentialIntegrityViolation,
		},
		{
			name: "should reject an unknown product",
			setup: func() *order.Order {
				o, err := order.NewOrder(kernel.MustNationalID("45879632"), nil, orderedAt, nil, "")
				suite.Require().NoError(err)
				suite.Require().NoError(o.AddLine("SN-404", 1, decimal.RequireFromString("10.00")))
				return o
			},
			expected: errs.ErrReferentialIntegrityViolation,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tx := suite.db.Begin()
			defer tx.Rollback()

			err := orderrepo.NewGormOrderRepository(tx, suite.tracker).Add(suite.T().Context(), tc.setup())

			suite.Require().ErrorIs(err, tc.expected)
			suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	original := suite.addOrder()

	loaded, err := suite.repository.Get(suite.T().Context(), original.Number())
	suite.Require().NoError(err)

	suite.Equal(original.Number(), loaded.Number())
	suite.True(orderedAt.Equal(loaded.OrderedAt()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal("ring twice", loaded.Notes())
	suite.Nil(loaded.DeliveryDate())
	suite.Equal("45879632", loaded.CustomerID().String())
	suite.Require().NotNil(loaded.DeliveryPersonID())
	suite.Equal("70000001", loaded.DeliveryPersonID().String())

	lines := loaded.Lines()
	suite.Require().Len(lines, 2)
	suite.Equal(1, lines[0].Position())
	suite.Equal("SN-1", lines[0].ProductSerial())
	suite.Equal(2, lines[0].Quantity())
	suite.True(lines[1].UnitPrice().Equal(decimal.RequireFromString("4.25")))
	suite.True(loaded.Subtotal().Equal(decimal.RequireFromString("24.25")))
	suite.Empty(loaded.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	loaded, err := suite.repository.Get(suite.T().Context(), 42)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(loaded)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveredOrder_PersistsHeader() {
	ctx := suite.T().Context()
	original := suite.addOrder()

	pending, err := suite.repository.GetPendingForUpdate(ctx, original.Number())
	suite.Require().NoError(err)
	deliveredOn := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(pending.Deliver(deliveredOn, "left with porter", orderedAt))

	suite.tracker.On("TrackAggregate", pending).Once()
	suite.Require().NoError(suite.repository.Update(ctx, pending))

	loaded, err := suite.repository.Get(ctx, original.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.Require().NotNil(loaded.DeliveryDate())
	suite.Equal("2024-03-12", loaded.DeliveryDate().Format(time.DateOnly))
	suite.Equal("ring twice\n[DELIVERED 2024-03-12]: left with porter", loaded.Notes())
	suite.Len(loaded.Lines(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o, err := order.RestoreOrder(77, kernel.MustNationalID("45879632"), nil, orderedAt, nil, "", order.Pending, nil)
	suite.Require().NoError(err)

	err = suite.repository.Update(suite.T().Context(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPendingForUpdate_DeliveredOrder_ReturnsNotFoundError() {
	ctx := suite.T().Context()
	original := suite.addOrder()
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET status = ? WHERE number = ?",
		int(order.Delivered), original.Number()).Error)

	_, err := suite.repository.GetPendingForUpdate(ctx, original.Number())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesLines() {
	ctx := suite.T().Context()
	original := suite.addOrder()

	suite.Require().NoError(suite.repository.Delete(ctx, original.Number()))

	suite.Zero(suite.count(&orderrepo.OrderDTO{}))
	suite.Zero(suite.count(&orderrepo.OrderLineDTO{}))

	err := suite.repository.Delete(ctx, original.Number())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReads_SerializationFailure_ReturnsTransactionConflict() {
	ctx := suite.T().Context()
	original := suite.addOrder()
	conflicted := suite.db.Session(&gorm.Session{})
	conflicted.AddError(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})
	repository := orderrepo.NewGormOrderRepository(conflicted, suite.tracker)

	_, err := repository.Get(ctx, original.Number())
	suite.Equal(errs.KindTransactionConflict, errs.KindOf(err))

	err = repository.Delete(ctx, original.Number())
	suite.Equal(errs.KindTransactionConflict, errs.KindOf(err))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
