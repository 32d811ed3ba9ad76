package http

import (
	"context"
	"log/slog"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandler is implemented by the command handlers that return nothing
// but an error.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is implemented by command and query handlers that produce a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// CatalogReader lists and looks up catalog records.
type CatalogReader interface {
	ListCategories(ctx context.Context, query queries.ListCatalogQuery) ([]queries.CategoryView, error)
	GetCategory(ctx context.Context, query queries.GetCatalogQuery[int64]) (queries.CategoryView, error)
	ListCustomers(ctx context.Context, query queries.ListCatalogQuery) ([]queries.CustomerView, error)
	GetCustomer(ctx context.Context, query queries.GetCatalogQuery[string]) (queries.CustomerView, error)
	ListProducts(ctx context.Context, query queries.ListCatalogQuery) ([]queries.ProductView, error)
	GetProduct(ctx context.Context, query queries.GetCatalogQuery[string]) (queries.ProductView, error)
	ListDeliveryPersons(ctx context.Context, query queries.ListCatalogQuery) ([]queries.DeliveryPersonView, error)
	GetDeliveryPerson(ctx context.Context, query queries.GetCatalogQuery[string]) (queries.DeliveryPersonView, error)
}

// Handlers are the use cases the API dispatches to.
type Handlers struct {
	Login          ResultHandler[commands.LoginCommand, *identity.Session]
	Logout         CommandHandler[commands.LogoutCommand]
	CreateOperator CommandHandler[commands.CreateOperatorCommand]
	ActiveSession  ResultHandler[queries.GetActiveSessionQuery, queries.ActiveSession]

	RegisterOrder     ResultHandler[commands.RegisterOrderCommand, commands.RegisterOrderResult]
	ConfirmDelivery   CommandHandler[commands.ConfirmDeliveryCommand]
	DeleteOrder       CommandHandler[commands.DeleteOrderCommand]
	SearchOrders      ResultHandler[queries.SearchOrdersQuery, queries.SearchOrdersResult]
	FindPendingOrders ResultHandler[queries.FindPendingOrdersQuery, []queries.OrderSummary]
	DeliveredOrders   ResultHandler[queries.DeliveredOrdersByPersonQuery, queries.DeliveredOrdersReport]
	GetOrder          ResultHandler[queries.GetOrderQuery, queries.OrderDetail]

	CreateCategory       ResultHandler[commands.CreateCategoryCommand, int64]
	UpdateCategory       CommandHandler[commands.UpdateCategoryCommand]
	DeleteCategory       CommandHandler[commands.DeleteCategoryCommand]
	CreateCustomer       CommandHandler[commands.CreateCustomerCommand]
	UpdateCustomer       CommandHandler[commands.UpdateCustomerCommand]
	DeleteCustomer       CommandHandler[commands.DeleteCustomerCommand]
	CreateProduct        CommandHandler[commands.CreateProductCommand]
	UpdateProduct        CommandHandler[commands.UpdateProductCommand]
	DeleteProduct        CommandHandler[commands.DeleteProductCommand]
	CreateDeliveryPerson CommandHandler[commands.CreateDeliveryPersonCommand]
	UpdateDeliveryPerson CommandHandler[commands.UpdateDeliveryPersonCommand]
	DeleteDeliveryPerson CommandHandler[commands.DeleteDeliveryPersonCommand]

	Catalog CatalogReader
}

// Server translates HTTP requests into commands and queries and their
// results back into JSON.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{handlers: handlers, logger: logger.With("component", "http")}
}

// RegisterRoutes mounts the health check, the API documentation and the
// /api/v1 operations on e. Every /api/v1 request is validated against the
// embedded OpenAPI document; all operations except login require a session.
func (s *Server) RegisterRoutes(ctx context.Context, e *echo.Echo) error {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return err
	}

	e.Validator = newStructValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validate)
	auth := s.requireSession

	api.POST("/sessions", s.Login)
	api.DELETE("/sessions/current", s.Logout, auth)
	api.POST("/operators", s.CreateOperator, auth)

	api.GET("/orders", s.SearchOrders, auth)
	api.POST("/orders", s.RegisterOrder, auth)
	api.GET("/orders/pending", s.FindPendingOrders, auth)
	api.GET("/orders/:number", s.GetOrder, auth)
	api.DELETE("/orders/:number", s.DeleteOrder, auth)
	api.POST("/orders/:number/delivery", s.ConfirmDelivery, auth)
	api.GET("/reports/delivered-orders", s.DeliveredOrders, auth)

	api.GET("/categories", s.ListCategories, auth)
	api.POST("/categories", s.CreateCategory, auth)
	api.GET("/categories/:id", s.GetCategory, auth)
	api.PUT("/categories/:id", s.UpdateCategory, auth)
	api.DELETE("/categories/:id", s.DeleteCategory, auth)

	api.GET("/customers", s.ListCustomers, auth)
	api.POST("/customers", s.CreateCustomer, auth)
	api.GET("/customers/:national_id", s.GetCustomer, auth)
	api.PUT("/customers/:national_id", s.UpdateCustomer, auth)
	api.DELETE("/customers/:national_id", s.DeleteCustomer, auth)

	api.GET("/products", s.ListProducts, auth)
	api.POST("/products", s.CreateProduct, auth)
	api.GET("/products/:serial_number", s.GetProduct, auth)
	api.PUT("/products/:serial_number", s.UpdateProduct, auth)
	api.DELETE("/products/:serial_number", s.DeleteProduct, auth)

	api.GET("/delivery-persons", s.ListDeliveryPersons, auth)
	api.POST("/delivery-persons", s.CreateDeliveryPerson, auth)
	api.GET("/delivery-persons/:national_id", s.GetDeliveryPerson, auth)
	api.PUT("/delivery-persons/:national_id", s.UpdateDeliveryPerson, auth)
	api.DELETE("/delivery-persons/:national_id", s.DeleteDeliveryPerson, auth)

	return nil
}

// Login handles POST /api/v1/sessions.
func (s *Server) Login(c echo.Context) error {
	var body credentials
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewLoginCommand(body.Username, body.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	session, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		Token:     session.Token().String(),
		Username:  session.Username(),
		ExpiresAt: session.ExpiresAt(),
	})
}

// Logout handles DELETE /api/v1/sessions/current.
func (s *Server) Logout(c echo.Context) error {
	session, _ := currentSession(c)

	cmd, err := commands.NewLogoutCommand(session.Token)
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateOperator handles POST /api/v1/operators.
func (s *Server) CreateOperator(c echo.Context) error {
	var body credentials
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateOperatorCommand(body.Username, body.Password)
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.CreateOperator.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}

	session, _ := currentSession(c)
	s.logger.InfoContext(c.Request().Context(), "operator created",
		"username", cmd.Username(),
		"created_by", session.Username,
	)
	return c.NoContent(http.StatusCreated)
}

// RegisterOrder handles POST /api/v1/orders.
func (s *Server) RegisterOrder(c echo.Context) error {
	var body newOrder
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := body.command()
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.RegisterOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, registeredOrderResponse{
		Number:         result.Number,
		totalsResponse: toTotalsResponse(result.Totals),
	})
}

// SearchOrders handles GET /api/v1/orders. The search runs only when at
// least one filter parameter is present, even if empty.
func (s *Server) SearchOrders(c echo.Context) error {
	params := c.QueryParams()
	triggered := params.Has("first_name") || params.Has("last_name") ||
		params.Has("date_from") || params.Has("date_to")

	query := queries.NewSearchOrdersQuery(
		triggered,
		params.Get("first_name"),
		params.Get("last_name"),
		params.Get("date_from"),
		params.Get("date_to"),
	)

	result, err := s.handlers.SearchOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	response := orderSearchResponse{
		Searched: result.Searched,
		Orders:   mapSlice(result.Orders, toOrderSummaryResponse),
	}
	if result.DateRangeError != nil {
		response.DateRangeError = result.DateRangeError.Error()
	}
	return c.JSON(http.StatusOK, response)
}

// FindPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) FindPendingOrders(c echo.Context) error {
	query, err := queries.NewFindPendingOrdersQuery(c.QueryParam("criterion"), c.QueryParam("value"))
	if err != nil {
		return s.respondError(c, err)
	}

	orders, err := s.handlers.FindPendingOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(orders, toOrderSummaryResponse))
}

// GetOrder handles GET /api/v1/orders/{number}.
func (s *Server) GetOrder(c echo.Context) error {
	number, err := pathInt64(c, "number")
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return s.respondError(c, err)
	}

	detail, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// DeleteOrder handles DELETE /api/v1/orders/{number}.
func (s *Server) DeleteOrder(c echo.Context) error {
	number, err := pathInt64(c, "number")
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(number)
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{number}/delivery.
func (s *Server) ConfirmDelivery(c echo.Context) error {
	number, err := pathInt64(c, "number")
	if err != nil {
		return badRequest(c, err)
	}

	var body deliveryConfirmation
	if err = bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(number, body.DeliveryDate.Time, body.Notes)
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.ConfirmDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeliveredOrders handles GET /api/v1/reports/delivered-orders.
func (s *Server) DeliveredOrders(c echo.Context) error {
	query, err := queries.NewDeliveredOrdersByPersonQuery(
		c.QueryParam("national_id"),
		c.QueryParam("first_name"),
		c.QueryParam("last_name"),
	)
	if err != nil {
		return s.respondError(c, err)
	}

	report, err := s.handlers.DeliveredOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, deliveredOrdersResponse{
		DeliveryPerson: toDeliveryPersonBody(report.DeliveryPerson),
		Orders:         mapSlice(report.Orders, toOrderSummaryResponse),
	})
}

// pathInt64 binds a numeric path parameter the way generated servers do.
func pathInt64(c echo.Context, name string) (int64, error) {
	var value int64
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}
