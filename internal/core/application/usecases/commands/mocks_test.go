package commands_test

import (
	"context"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/identity"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number int64) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetPendingForUpdate(ctx context.Context, number int64) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number int64) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.NationalID) (*catalog.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*catalog.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.NationalID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, serial string) (*catalog.Product, error) {
	args := m.Called(ctx, serial)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) GetForUpdate(ctx context.Context, serials []string) (map[string]*catalog.Product, error) {
	args := m.Called(ctx, serials)
	p, _ := args.Get(0).(map[string]*catalog.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, serial string) error {
	args := m.Called(ctx, serial)
	return args.Error(0)
}

type MockDeliveryPersonRepository struct{ mock.Mock }

func (m *MockDeliveryPersonRepository) Add(ctx context.Context, d *catalog.DeliveryPerson) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Update(ctx context.Context, d *catalog.DeliveryPerson) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Get(ctx context.Context, id kernel.NationalID) (*catalog.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*catalog.DeliveryPerson)
	return d, args.Error(1)
}

func (m *MockDeliveryPersonRepository) Delete(ctx context.Context, id kernel.NationalID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, o *identity.Operator) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOperatorRepository) Get(ctx context.Context, username string) (*identity.Operator, error) {
	args := m.Called(ctx, username)
	o, _ := args.Get(0).(*identity.Operator)
	return o, args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Save(ctx context.Context, s *identity.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, token identity.Token) (*identity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*identity.Session)
	return s, args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, token identity.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface; each test only sets
// expectations on the repositories its handler asks for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type categoryUoWFactory struct{ uow *MockUoW }

func (f categoryUoWFactory) Create() commands.CategoryUoW { return f.uow }

type customerUoWFactory struct{ uow *MockUoW }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.uow }

type productUoWFactory struct{ uow *MockUoW }

func (f productUoWFactory) Create() commands.ProductUoW { return f.uow }

type deliveryPersonUoWFactory struct{ uow *MockUoW }

func (f deliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type registerOrderUoWFactory struct{ uow *MockUoW }

func (f registerOrderUoWFactory) Create() commands.RegisterOrderUoW { return f.uow }

// expectTx registers the Begin/Rollback pair every handler performs and,
// when committed is true, the Commit in between.
func expectTx(ctx context.Context, uow *MockUoW, committed bool) {
	uow.On("Begin", ctx).Return(nil).Once()
	if committed {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Maybe()
}
