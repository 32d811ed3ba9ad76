package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const fixturesYAML = `
categories:
  - name: Novels
    description: Fiction of book length
  - name: Poetry
customers:
  - national_id: "0912345678"
    first_names: Ana
    last_names: Torres
    address: Av. Amazonas 100
    district: Norte
    email: ana@example.com
    phone: "022345678"
delivery_persons:
  - national_id: "1712345678"
    first_names: Luis
    last_names: Mena
    phone: "0991234567"
products:
  - serial_number: BK-001
    name: Cien años de soledad
    unit_price: "10.50"
    stock: 12
    category: Novels
operators:
  - username: admin
    password: changeme
`

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCategoryCreator struct{ mock.Mock }

func (m *MockCategoryCreator) Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryLister struct{ mock.Mock }

func (m *MockCategoryLister) ListCategories(ctx context.Context, q queries.ListCatalogQuery) ([]queries.CategoryView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.CategoryView), args.Error(1)
}

func TestParse(t *testing.T) {
	t.Run("should read every section", func(t *testing.T) {
		f, err := Parse([]byte(fixturesYAML))

		require.NoError(t, err)
		assert.Len(t, f.Categories, 2)
		assert.Equal(t, "ana@example.com", f.Customers[0].Email)
		assert.Equal(t, "0991234567", f.DeliveryPersons[0].Phone)
		assert.Equal(t, "10.50", f.Products[0].UnitPrice)
		assert.Equal(t, "Novels", f.Products[0].Category)
		assert.Equal(t, "admin", f.Operators[0].Username)
	})

	t.Run("should reject malformed YAML", func(t *testing.T) {
		_, err := Parse([]byte("categories: [name: {"))

		assert.ErrorContains(t, err, "failed to parse seed YAML")
	})

	t.Run("should load from a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(fixturesYAML), 0o600))

		f, err := LoadFile(path)

		require.NoError(t, err)
		assert.Len(t, f.Products, 1)
	})

	t.Run("should name the missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))

		assert.ErrorContains(t, err, "absent.yaml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

type SeederTestSuite struct {
	suite.Suite
	createCategory       *MockCategoryCreator
	categories           *MockCategoryLister
	createCustomer       *MockCommandHandler[commands.CreateCustomerCommand]
	createDeliveryPerson *MockCommandHandler[commands.CreateDeliveryPersonCommand]
	createProduct        *MockCommandHandler[commands.CreateProductCommand]
	createOperator       *MockCommandHandler[commands.CreateOperatorCommand]
	seeder               *Seeder
	fixtures             *Fixtures
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (suite *SeederTestSuite) SetupTest() {
	suite.createCategory = new(MockCategoryCreator)
	suite.categories = new(MockCategoryLister)
	suite.createCustomer = new(MockCommandHandler[commands.CreateCustomerCommand])
	suite.createDeliveryPerson = new(MockCommandHandler[commands.CreateDeliveryPersonCommand])
	suite.createProduct = new(MockCommandHandler[commands.CreateProductCommand])
	suite.createOperator = new(MockCommandHandler[commands.CreateOperatorCommand])

	suite.seeder = NewSeeder(Handlers{
		CreateCategory:       suite.createCategory,
		Categories:           suite.categories,
		CreateCustomer:       suite.createCustomer,
		CreateDeliveryPerson: suite.createDeliveryPerson,
		CreateProduct:        suite.createProduct,
		CreateOperator:       suite.createOperator,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var err error
	suite.fixtures, err = Parse([]byte(fixturesYAML))
	suite.Require().NoError(err)
}

func (suite *SeederTestSuite) TestApply() {
	suite.Run("should insert every record into an empty database", func() {
		suite.SetupTest()
		suite.categories.On("ListCategories", mock.Anything, mock.Anything).Return([]queries.CategoryView{}, nil)
		suite.createCategory.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCategoryCommand) bool {
			return cmd.Name() == "Novels"
		})).Return(int64(7), nil)
		suite.createCategory.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCategoryCommand) bool {
			return cmd.Name() == "Poetry"
		})).Return(int64(8), nil)
		suite.createCustomer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateCustomerCommand) bool {
			return cmd.NationalID().String() == "0912345678" && cmd.Profile().Email.String() == "ana@example.com"
		})).Return(nil)
		suite.createDeliveryPerson.On("Handle", mock.Anything, mock.Anything).Return(nil)
		suite.createProduct.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
			d := cmd.Details()
			return cmd.SerialNumber() == "BK-001" &&
				d.UnitPrice.Equal(decimal.RequireFromString("10.50")) &&
				d.CategoryID != nil && *d.CategoryID == 7
		})).Return(nil)
		suite.createOperator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOperatorCommand) bool {
			return cmd.Username() == "admin"
		})).Return(nil)

		report, err := suite.seeder.Apply(suite.T().Context(), suite.fixtures)

		suite.Require().NoError(err)
		suite.Equal(Report{Created: 6}, report)
		suite.createProduct.AssertExpectations(suite.T())
		suite.createOperator.AssertExpectations(suite.T())
	})

	suite.Run("should skip records that already exist", func() {
		suite.SetupTest()
		suite.categories.On("ListCategories", mock.Anything, mock.Anything).Return([]queries.CategoryView{
			{ID: 3, Name: "Novels"},
			{ID: 4, Name: "Poetry"},
		}, nil)
		duplicate := errs.NewUniqueConstraintViolationError("customer", "customers_pkey")
		suite.createCustomer.On("Handle", mock.Anything, mock.Anything).Return(duplicate)
		suite.createDeliveryPerson.On("Handle", mock.Anything, mock.Anything).Return(nil)
		suite.createProduct.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateProductCommand) bool {
			return *cmd.Details().CategoryID == 3
		})).Return(nil)
		suite.createOperator.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewUniqueConstraintViolationError("operator", "operators_username_key"))

		report, err := suite.seeder.Apply(suite.T().Context(), suite.fixtures)

		suite.Require().NoError(err)
		suite.Equal(Report{Created: 2, Skipped: 4}, report)
		suite.createCategory.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
	})

	suite.Run("should stop on the first failure that is not a duplicate", func() {
		suite.SetupTest()
		suite.categories.On("ListCategories", mock.Anything, mock.Anything).Return([]queries.CategoryView{
			{ID: 3, Name: "Novels"},
			{ID: 4, Name: "Poetry"},
		}, nil)
		suite.createCustomer.On("Handle", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		report, err := suite.seeder.Apply(suite.T().Context(), suite.fixtures)

		suite.Require().Error(err)
		suite.ErrorContains(err, `customer "0912345678"`)
		suite.Equal(Report{Skipped: 2}, report)
		suite.createProduct.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
	})

	suite.Run("should reject a product in an unknown category", func() {
		suite.SetupTest()
		suite.fixtures = &Fixtures{Products: []Product{
			{SerialNumber: "BK-9", Name: "Atlas", UnitPrice: "5.00", Category: "Maps"},
		}}
		suite.categories.On("ListCategories", mock.Anything, mock.Anything).Return([]queries.CategoryView{}, nil)

		_, err := suite.seeder.Apply(suite.T().Context(), suite.fixtures)

		suite.Equal(errs.KindNotFound, errs.KindOf(err))
	})

	suite.Run("should reject a malformed price", func() {
		suite.SetupTest()
		suite.fixtures = &Fixtures{Products: []Product{
			{SerialNumber: "BK-9", Name: "Atlas", UnitPrice: "five"},
		}}
		suite.categories.On("ListCategories", mock.Anything, mock.Anything).Return([]queries.CategoryView{}, nil)

		_, err := suite.seeder.Apply(suite.T().Context(), suite.fixtures)

		suite.Equal(errs.KindInvalidValue, errs.KindOf(err))
	})
}
