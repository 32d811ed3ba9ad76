package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.handlers.Catalog.ListCategories(c.Request().Context(), queries.NewListCatalogQuery(false))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(categories, toCategoryBody))
}

func (s *Server) GetCategory(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return s.respondError(c, err)
	}

	category, err := s.handlers.Catalog.GetCategory(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryBody(category))
}

// CreateCategory answers with the stored category including its new id.
func (s *Server) CreateCategory(c echo.Context) error {
	var body categoryBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateCategoryCommand(body.Name, body.Description)
	if err != nil {
		return s.respondError(c, err)
	}

	id, err := s.handlers.CreateCategory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, categoryBody{ID: id, Name: cmd.Name(), Description: cmd.Description()})
}

func (s *Server) UpdateCategory(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	var body categoryBody
	if err = bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, body.Name, body.Description)
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.UpdateCategory.Handle(c.Request().Context(), cmd))
}

// DeleteCategory leaves the products of the category uncategorised.
func (s *Server) DeleteCategory(c echo.Context) error {
	id, err := pathInt64(c, "id")
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.DeleteCategory.Handle(c.Request().Context(), cmd))
}

func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.handlers.Catalog.ListCustomers(c.Request().Context(), queries.NewListCatalogQuery(false))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(customers, toCustomerBody))
}

func (s *Server) GetCustomer(c echo.Context) error {
	query, err := queries.NewGetByNaturalKeyQuery("national id", c.Param("national_id"))
	if err != nil {
		return s.respondError(c, err)
	}

	customer, err := s.handlers.Catalog.GetCustomer(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerBody(customer))
}

func (s *Server) CreateCustomer(c echo.Context) error {
	var body customerBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.NationalID, body.input())
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) UpdateCustomer(c echo.Context) error {
	var body customerBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(c.Param("national_id"), body.input())
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.UpdateCustomer.Handle(c.Request().Context(), cmd))
}

// DeleteCustomer refuses customers that still have orders.
func (s *Server) DeleteCustomer(c echo.Context) error {
	cmd, err := commands.NewDeleteCustomerCommand(c.Param("national_id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.DeleteCustomer.Handle(c.Request().Context(), cmd))
}

// ListProducts with in_stock=true lists what an order may be registered for.
func (s *Server) ListProducts(c echo.Context) error {
	var inStock *bool
	if err := runtime.BindQueryParameter("form", true, false, "in_stock", c.QueryParams(), &inStock); err != nil {
		return badRequest(c, err)
	}

	query := queries.NewListCatalogQuery(inStock != nil && *inStock)
	products, err := s.handlers.Catalog.ListProducts(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(products, toProductBody))
}

func (s *Server) GetProduct(c echo.Context) error {
	query, err := queries.NewGetByNaturalKeyQuery("serial number", c.Param("serial_number"))
	if err != nil {
		return s.respondError(c, err)
	}

	product, err := s.handlers.Catalog.GetProduct(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toProductBody(product))
}

func (s *Server) CreateProduct(c echo.Context) error {
	var body productBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateProductCommand(body.SerialNumber, body.details())
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) UpdateProduct(c echo.Context) error {
	var body productBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateProductCommand(c.Param("serial_number"), body.details())
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.UpdateProduct.Handle(c.Request().Context(), cmd))
}

// DeleteProduct refuses products referenced by an order line.
func (s *Server) DeleteProduct(c echo.Context) error {
	cmd, err := commands.NewDeleteProductCommand(c.Param("serial_number"))
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.DeleteProduct.Handle(c.Request().Context(), cmd))
}

func (s *Server) ListDeliveryPersons(c echo.Context) error {
	persons, err := s.handlers.Catalog.ListDeliveryPersons(c.Request().Context(), queries.NewListCatalogQuery(false))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(persons, toDeliveryPersonBody))
}

func (s *Server) GetDeliveryPerson(c echo.Context) error {
	query, err := queries.NewGetByNaturalKeyQuery("national id", c.Param("national_id"))
	if err != nil {
		return s.respondError(c, err)
	}

	person, err := s.handlers.Catalog.GetDeliveryPerson(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(http.StatusOK, toDeliveryPersonBody(person))
}

func (s *Server) CreateDeliveryPerson(c echo.Context) error {
	var body deliveryPersonBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateDeliveryPersonCommand(body.NationalID, body.profile())
	if err != nil {
		return s.respondError(c, err)
	}
	if err = s.handlers.CreateDeliveryPerson.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) UpdateDeliveryPerson(c echo.Context) error {
	var body deliveryPersonBody
	if err := bindBody(c, &body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryPersonCommand(c.Param("national_id"), body.profile())
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.UpdateDeliveryPerson.Handle(c.Request().Context(), cmd))
}

// DeleteDeliveryPerson detaches the person from their orders.
func (s *Server) DeleteDeliveryPerson(c echo.Context) error {
	cmd, err := commands.NewDeleteDeliveryPersonCommand(c.Param("national_id"))
	if err != nil {
		return s.respondError(c, err)
	}
	return s.noContent(c, s.handlers.DeleteDeliveryPerson.Handle(c.Request().Context(), cmd))
}

func (s *Server) noContent(c echo.Context, err error) error {
	if err != nil {
		return s.respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
