// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - StockAllocator: fills a new order's lines from locked products, decreasing stock
//   - OrderPricer: computes subtotal, sales tax and total for an order
package services
