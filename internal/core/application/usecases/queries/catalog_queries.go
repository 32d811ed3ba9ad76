package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrListCatalogQueryIsNotConstructed = errors.New("ListCatalogQuery must be created via NewListCatalogQuery constructor")
	ErrGetCatalogQueryIsNotConstructed  = errors.New("GetCatalogQuery must be created via a NewGet...Query constructor")
)

type CategoryView struct {
	ID          int64
	Name        string
	Description string
}

type CustomerView struct {
	NationalID string
	FirstNames string
	LastNames  string
	Address    string
	District   string
	Email      string
	Phone      string
}

type ProductView struct {
	SerialNumber string
	Name         string
	Description  string
	UnitPrice    decimal.Decimal
	Stock        int
	CategoryID   *int64
	CategoryName *string
	Color        string
	Dimensions   string
}

type DeliveryPersonView struct {
	NationalID string
	FirstNames string
	LastNames  string
	Phone      string
}

// ListCatalogQuery lists one kind of catalog record. InStockOnly is honoured
// by product listings only.
type ListCatalogQuery struct {
	inStockOnly bool
	guard       guard.ConstructorGuard
}

func NewListCatalogQuery(inStockOnly bool) ListCatalogQuery {
	return ListCatalogQuery{inStockOnly: inStockOnly, guard: guard.NewConstructorGuard()}
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

func (q ListCatalogQuery) InStockOnly() bool {
	return q.inStockOnly
}

// GetCatalogQuery addresses a single catalog record by its key.
type GetCatalogQuery[K comparable] struct {
	key   K
	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(id int64) (GetCatalogQuery[int64], error) {
	if id <= 0 {
		return GetCatalogQuery[int64]{}, errs.NewValueIsInvalidErrorWithCause("category id", fmt.Errorf("%d is not greater than 0", id))
	}
	return GetCatalogQuery[int64]{key: id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetByNaturalKeyQuery builds lookups by national id or serial number.
func NewGetByNaturalKeyQuery(name, key string) (GetCatalogQuery[string], error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return GetCatalogQuery[string]{}, errs.NewValueIsRequiredError(name)
	}
	return GetCatalogQuery[string]{key: key, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCatalogQuery[K]) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

func (q GetCatalogQuery[K]) Key() K {
	return q.key
}

// CatalogQueryHandler serves every catalog read of the maintenance screens.
type CatalogQueryHandler struct {
	db *gorm.DB
}

func NewCatalogQueryHandler(db *gorm.DB) CatalogQueryHandler {
	return CatalogQueryHandler{db: db}
}

func (h CatalogQueryHandler) ListCategories(ctx context.Context, query ListCatalogQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	views := make([]CategoryView, 0)
	err := h.db.WithContext(ctx).Table("categories").Order("name").Scan(&views).Error
	return views, err
}

func (h CatalogQueryHandler) GetCategory(ctx context.Context, query GetCatalogQuery[int64]) (CategoryView, error) {
	if err := query.Validate(); err != nil {
		return CategoryView{}, err
	}
	var view CategoryView
	err := h.db.WithContext(ctx).Table("categories").Where("id = ?", query.Key()).Take(&view).Error
	return view, notFound(err, "category", query.Key())
}

func (h CatalogQueryHandler) ListCustomers(ctx context.Context, query ListCatalogQuery) ([]CustomerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	views := make([]CustomerView, 0)
	err := h.db.WithContext(ctx).Table("customers").Order("last_names, first_names, national_id").Scan(&views).Error
	return views, err
}

func (h CatalogQueryHandler) GetCustomer(ctx context.Context, query GetCatalogQuery[string]) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}
	var view CustomerView
	err := h.db.WithContext(ctx).Table("customers").Where("national_id = ?", query.Key()).Take(&view).Error
	return view, notFound(err, "customer", query.Key())
}

func (h CatalogQueryHandler) ListProducts(ctx context.Context, query ListCatalogQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	stmt := h.products(ctx)
	if query.InStockOnly() {
		stmt = stmt.Where("p.stock > 0")
	}
	views := make([]ProductView, 0)
	err := stmt.Order("p.name, p.serial_number").Scan(&views).Error
	return views, err
}

func (h CatalogQueryHandler) GetProduct(ctx context.Context, query GetCatalogQuery[string]) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}
	var view ProductView
	err := h.products(ctx).Where("p.serial_number = ?", query.Key()).Take(&view).Error
	return view, notFound(err, "product", query.Key())
}

func (h CatalogQueryHandler) ListDeliveryPersons(ctx context.Context, query ListCatalogQuery) ([]DeliveryPersonView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	views := make([]DeliveryPersonView, 0)
	err := h.db.WithContext(ctx).Table("delivery_persons").Order("last_names, first_names, national_id").Scan(&views).Error
	return views, err
}

func (h CatalogQueryHandler) GetDeliveryPerson(ctx context.Context, query GetCatalogQuery[string]) (DeliveryPersonView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPersonView{}, err
	}
	var view DeliveryPersonView
	err := h.db.WithContext(ctx).Table("delivery_persons").Where("national_id = ?", query.Key()).Take(&view).Error
	return view, notFound(err, "delivery person", query.Key())
}

func (h CatalogQueryHandler) products(ctx context.Context) *gorm.DB {
	return h.db.WithContext(ctx).Table("products AS p").
		Select("p.serial_number, p.name, p.description, p.unit_price, p.stock, p.category_id, c.name AS category_name, p.color, p.dimensions").
		Joins("LEFT JOIN categories c ON c.id = p.category_id")
}

func notFound(err error, object string, key any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(object, key)
	}
	return err
}
