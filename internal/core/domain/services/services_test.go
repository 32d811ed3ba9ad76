package services_test

import (
	"testing"
	"time"

	"bookstore/internal/core/domain/model/catalog"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, serial, price string, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(serial, catalog.ProductDetails{
		Name:      "Book " + serial,
		UnitPrice: decimal.RequireFromString(price),
		Stock:     stock,
	})
	require.NoError(t, err)
	return p
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	dp := kernel.MustNationalID("70000001")
	o, err := order.NewOrder(kernel.MustNationalID("45879632"), &dp, time.Now().UTC(), nil, "")
	require.NoError(t, err)
	return o
}

func TestStockAllocator_Allocate(t *testing.T) {
	allocator := services.NewStockAllocator()

	t.Run("should add lines and decrease stock", func(t *testing.T) {
		o := newOrder(t)
		products := map[string]*catalog.Product{
			"A": newProduct(t, "A", "10.00", 5),
			"B": newProduct(t, "B", "3.50", 2),
		}

		err := allocator.Allocate(o, products, []services.LineRequest{
			{ProductSerial: "A", Quantity: 2},
			{ProductSerial: "B", Quantity: 2},
		})

		require.NoError(t, err)
		require.Len(t, o.Lines(), 2)
		assert.Equal(t, 3, products["A"].Stock())
		assert.Equal(t, 0, products["B"].Stock())
		assert.True(t, decimal.RequireFromString("3.50").Equal(o.Lines()[1].UnitPrice()))
	})

	t.Run("should report empty order", func(t *testing.T) {
		err := allocator.Allocate(newOrder(t), map[string]*catalog.Product{}, nil)

		require.ErrorIs(t, err, errs.ErrEmptyOrder)
	})

	t.Run("should report unknown product", func(t *testing.T) {
		err := allocator.Allocate(newOrder(t), map[string]*catalog.Product{}, []services.LineRequest{
			{ProductSerial: "missing", Quantity: 1},
		})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should name the first product short of stock", func(t *testing.T) {
		products := map[string]*catalog.Product{
			"A": newProduct(t, "A", "1.00", 1),
			"B": newProduct(t, "B", "1.00", 0),
		}

		err := allocator.Allocate(newOrder(t), products, []services.LineRequest{
			{ProductSerial: "B", Quantity: 1},
			{ProductSerial: "A", Quantity: 5},
		})

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "B", stockErr.SerialNumber)
	})

	t.Run("should check repeated products cumulatively", func(t *testing.T) {
		products := map[string]*catalog.Product{"A": newProduct(t, "A", "1.00", 3)}

		err := allocator.Allocate(newOrder(t), products, []services.LineRequest{
			{ProductSerial: "A", Quantity: 2},
			{ProductSerial: "A", Quantity: 2},
		})

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
	})
}

func TestOrderPricer_Price(t *testing.T) {
	pricer := services.NewOrderPricer()

	t.Run("should apply 18 percent tax", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AddLine("A", 2, decimal.RequireFromString("10.00")))
		require.NoError(t, o.AddLine("B", 1, decimal.RequireFromString("5.00")))

		totals := pricer.Price(o)

		assert.Equal(t, "25.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "4.50", totals.Tax.StringFixed(2))
		assert.Equal(t, "29.50", totals.Total.StringFixed(2))
	})

	t.Run("should round to two decimals", func(t *testing.T) {
		totals := pricer.PriceSubtotal(decimal.RequireFromString("33.33"))

		assert.Equal(t, "6.00", totals.Tax.StringFixed(2))
		assert.Equal(t, "39.33", totals.Total.StringFixed(2))
	})
}
