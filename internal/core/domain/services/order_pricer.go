package services

import (
	"bookstore/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// SalesTaxRate is the general sales tax applied to every order.
var SalesTaxRate = decimal.RequireFromString("0.18")

// OrderTotals holds amounts for display. Tax and Total are rounded half away from
// zero to two decimal places; Subtotal is exact.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

type OrderPricer struct {
	taxRate decimal.Decimal
}

func NewOrderPricer() OrderPricer {
	return OrderPricer{taxRate: SalesTaxRate}
}

func (p OrderPricer) Price(o *order.Order) OrderTotals {
	return p.PriceSubtotal(o.Subtotal())
}

// PriceSubtotal prices an already summed subtotal, e.g. one computed in SQL.
func (p OrderPricer) PriceSubtotal(subtotal decimal.Decimal) OrderTotals {
	tax := subtotal.Mul(p.taxRate)
	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax.Round(2),
		Total:    subtotal.Add(tax).Round(2),
	}
}
