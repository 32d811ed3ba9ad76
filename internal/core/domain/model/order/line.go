package order

import (
	"fmt"
	"strings"

	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Line is an immutable order line. Position is 1-based and unique inside an order.
type Line struct {
	position      int
	productSerial string
	quantity      int
	unitPrice     decimal.Decimal
}

func NewLine(position int, productSerial string, quantity int, unitPrice decimal.Decimal) (Line, error) {
	productSerial = strings.TrimSpace(productSerial)
	switch {
	case position <= 0:
		return Line{}, errs.NewValueIsInvalidErrorWithCause("line position", fmt.Errorf("%d is not greater than 0", position))
	case productSerial == "":
		return Line{}, errs.NewValueIsRequiredError("product serial number")
	case quantity <= 0:
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	case unitPrice.IsNegative():
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", unitPrice))
	}

	return Line{
		position:      position,
		productSerial: productSerial,
		quantity:      quantity,
		unitPrice:     unitPrice,
	}, nil
}

func (l Line) Position() int {
	return l.position
}

func (l Line) ProductSerial() string {
	return l.productSerial
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// Subtotal is quantity times unit price, unrounded.
func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}
