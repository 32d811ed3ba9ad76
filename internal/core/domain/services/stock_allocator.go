package services

import (
	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// LineRequest is one requested product and quantity, in the order the caller listed them.
type LineRequest struct {
	ProductSerial string
	Quantity      int
}

// StockAllocator turns line requests into order lines.
//
// Business rules:
//   - Requests are processed in input order; the first one that cannot be served
//     aborts allocation
//   - A product requested twice is checked against its already decreased stock
//   - Each line captures the product's current unit price
//
// Products are mutated in place. On error the caller must discard both the
// order and the products, which the surrounding transaction rollback does.
//
// Example usage:
//
//	allocator := services.NewStockAllocator()
//	if err := allocator.Allocate(o, lockedProducts, requests); err != nil {
//	    return err // NotFound, InsufficientStock or EmptyOrder
//	}
type StockAllocator struct{}

func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

func (StockAllocator) Allocate(o *order.Order, products map[string]*catalog.Product, requests []LineRequest) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(requests) == 0 {
		return errs.ErrEmptyOrder
	}

	for _, req := range requests {
		p, ok := products[req.ProductSerial]
		if !ok || p == nil {
			return errs.NewObjectNotFoundError("product", req.ProductSerial)
		}

		if err := p.DecreaseStock(req.Quantity); err != nil {
			return err
		}

		if err := o.AddLine(p.SerialNumber(), req.Quantity, p.UnitPrice()); err != nil {
			return err
		}
	}

	return nil
}
