package catalog

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const MaxSerialNumberLength = 50

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// maxUnitPrice is the largest value a numeric(10,2) column holds.
	maxUnitPrice = decimal.RequireFromString("99999999.99")
)

// ProductDetails is the editable part of a product. A nil CategoryID means the
// product is uncategorised.
type ProductDetails struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Stock       int
	CategoryID  *int64
	Color       string
	Dimensions  string
}

// Product is a sellable item keyed by its serial number.
//
// Invariants:
//   - unit price is between 0 and 99999999.99 with two decimal places
//   - stock is never negative
type Product struct {
	serialNumber string
	details      ProductDetails
	guard        guard.ConstructorGuard
}

func NewProduct(serialNumber string, details ProductDetails) (*Product, error) {
	serialNumber, err := requiredText("serial number", serialNumber, MaxSerialNumberLength)
	if err != nil {
		return nil, err
	}

	p := &Product{serialNumber: serialNumber, guard: guard.NewConstructorGuard()}
	if err = p.Edit(details); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) Edit(details ProductDetails) error {
	var errName, errDesc, errColor, errDim error
	details.Name, errName = requiredText("product name", details.Name, 150)
	details.Description, errDesc = optionalText("product description", details.Description, 0)
	details.Color, errColor = optionalText("color", details.Color, 50)
	details.Dimensions, errDim = optionalText("dimensions", details.Dimensions, 100)

	if err := errors.Join(
		errName, errDesc, errColor, errDim,
		validateUnitPrice(details.UnitPrice),
		validateStock(details.Stock),
		validateCategoryID(details.CategoryID),
	); err != nil {
		return err
	}

	details.UnitPrice = details.UnitPrice.Round(2)
	if details.CategoryID != nil {
		id := *details.CategoryID
		details.CategoryID = &id
	}
	p.details = details
	return nil
}

func (p *Product) SerialNumber() string {
	return p.serialNumber
}

func (p *Product) Name() string {
	return p.details.Name
}

func (p *Product) UnitPrice() decimal.Decimal {
	return p.details.UnitPrice
}

func (p *Product) Stock() int {
	return p.details.Stock
}

func (p *Product) CategoryID() *int64 {
	return p.details.CategoryID
}

// Details returns a copy of the editable fields.
func (p *Product) Details() ProductDetails {
	d := p.details
	if d.CategoryID != nil {
		id := *d.CategoryID
		d.CategoryID = &id
	}
	return d
}

func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.details.Stock >= quantity
}

// DecreaseStock takes quantity units out of stock or fails with an
// InsufficientStockError leaving the product unchanged.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !p.HasStock(quantity) {
		return errs.NewInsufficientStockError(p.serialNumber, p.details.Name, p.details.Stock, quantity)
	}

	p.details.Stock -= quantity
	return nil
}

func validateUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThan(maxUnitPrice) {
		return errs.NewValueIsOutOfRangeError("unit price", price.String(), "0", maxUnitPrice.String())
	}
	if !price.Equal(price.Round(2)) {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s has more than 2 decimal places", price))
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	return nil
}

func validateCategoryID(id *int64) error {
	if id != nil && *id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("category id", fmt.Errorf("%d is not positive", *id))
	}
	return nil
}
