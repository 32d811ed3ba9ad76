package cmd

import (
	"database/sql"
	"log/slog"

	httpadapter "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/identityrepo"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/ports"
	"bookstore/internal/jobs"
	"bookstore/internal/seed"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	// serializableFactory runs order registration, where concurrent
	// registrations compete for the same stock.
	serializableFactory *postgres.GormUnitOfWorkFactory
	sessions            ports.SessionStore
	clock               kernel.Clock
	logger              *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	sessions ports.SessionStore,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB,
		postgres.WithEventPublisher(publisher),
		postgres.WithLogger(logger),
	)
	return CompositionRoot{
		cfg:                 cfg,
		gormDB:              gormDB,
		uowFactory:          uowFactory,
		serializableFactory: uowFactory.With(postgres.WithIsolation(sql.LevelSerializable)),
		sessions:            sessions,
		clock:               kernel.SystemClock{},
		logger:              logger,
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.RegisterOrderUoWFactory = FuncRegisterOrderUoWFactory(func() commands.RegisterOrderUoW {
		return c.serializableFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryPersonCommandHandler() commands.CreateDeliveryPersonCommandHandler {
	return commands.NewCreateDeliveryPersonCommandHandler(c.deliveryPersonUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryPersonCommandHandler() commands.UpdateDeliveryPersonCommandHandler {
	return commands.NewUpdateDeliveryPersonCommandHandler(c.deliveryPersonUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryPersonCommandHandler() commands.DeleteDeliveryPersonCommandHandler {
	return commands.NewDeleteDeliveryPersonCommandHandler(c.deliveryPersonUoWFactory())
}

func (c *CompositionRoot) CreateCreateOperatorCommandHandler() commands.CreateOperatorCommandHandler {
	return commands.NewCreateOperatorCommandHandler(identityrepo.NewGormOperatorRepository(c.gormDB))
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(
		identityrepo.NewGormOperatorRepository(c.gormDB),
		c.sessions,
		c.clock,
		c.cfg.SessionTTL,
	)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	return commands.NewPurgeExpiredSessionsCommandHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateGetActiveSessionQueryHandler() queries.GetActiveSessionQueryHandler {
	return queries.NewGetActiveSessionQueryHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindPendingOrdersQueryHandler() queries.FindPendingOrdersQueryHandler {
	return queries.NewFindPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDeliveredOrdersByPersonQueryHandler() queries.DeliveredOrdersByPersonQueryHandler {
	return queries.NewDeliveredOrdersByPersonQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogQueryHandler() queries.CatalogQueryHandler {
	return queries.NewCatalogQueryHandler(c.gormDB)
}

// HTTPHandlers collects every handler the HTTP server dispatches to.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		Login:          c.CreateLoginCommandHandler(),
		Logout:         c.CreateLogoutCommandHandler(),
		CreateOperator: c.CreateCreateOperatorCommandHandler(),
		ActiveSession:  c.CreateGetActiveSessionQueryHandler(),

		RegisterOrder:     c.CreateRegisterOrderCommandHandler(),
		ConfirmDelivery:   c.CreateConfirmDeliveryCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		SearchOrders:      c.CreateSearchOrdersQueryHandler(),
		FindPendingOrders: c.CreateFindPendingOrdersQueryHandler(),
		DeliveredOrders:   c.CreateDeliveredOrdersByPersonQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),

		CreateCategory:       c.CreateCreateCategoryCommandHandler(),
		UpdateCategory:       c.CreateUpdateCategoryCommandHandler(),
		DeleteCategory:       c.CreateDeleteCategoryCommandHandler(),
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:       c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:       c.CreateDeleteCustomerCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		UpdateProduct:        c.CreateUpdateProductCommandHandler(),
		DeleteProduct:        c.CreateDeleteProductCommandHandler(),
		CreateDeliveryPerson: c.CreateCreateDeliveryPersonCommandHandler(),
		UpdateDeliveryPerson: c.CreateUpdateDeliveryPersonCommandHandler(),
		DeleteDeliveryPerson: c.CreateDeleteDeliveryPersonCommandHandler(),

		Catalog: c.CreateCatalogQueryHandler(),
	}
}

// SeedHandlers collects the create handlers the fixture loader inserts through.
func (c *CompositionRoot) SeedHandlers() seed.Handlers {
	return seed.Handlers{
		CreateCategory:       c.CreateCreateCategoryCommandHandler(),
		Categories:           c.CreateCatalogQueryHandler(),
		CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
		CreateDeliveryPerson: c.CreateCreateDeliveryPersonCommandHandler(),
		CreateProduct:        c.CreateCreateProductCommandHandler(),
		CreateOperator:       c.CreateCreateOperatorCommandHandler(),
	}
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewSessionCleanupJob(c.CreatePurgeExpiredSessionsCommandHandler(), c.cfg.SessionCleanupSchedule, c.logger),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) categoryUoWFactory() commands.CategoryUoWFactory {
	return FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryPersonUoWFactory() commands.DeliveryPersonUoWFactory {
	return FuncDeliveryPersonUoWFactory(func() commands.DeliveryPersonUoW {
		return c.uowFactory.Create()
	})
}

type FuncRegisterOrderUoWFactory func() commands.RegisterOrderUoW

func (f FuncRegisterOrderUoWFactory) Create() commands.RegisterOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncDeliveryPersonUoWFactory func() commands.DeliveryPersonUoW

func (f FuncDeliveryPersonUoWFactory) Create() commands.DeliveryPersonUoW {
	return f()
}
