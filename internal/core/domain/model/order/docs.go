// Package order provides the Order aggregate of the bookstore: the header bound
// to a customer and a delivery person, its lines, and the delivery lifecycle.
//
// The package includes:
//   - Order: the aggregate root, built by registration and restored from storage
//   - Line: one product, quantity and the unit price captured at sale time
//   - Status: the Pending -> Delivered state machine (Cancelled is storable only)
//   - Registered and Delivered: domain events recorded by the aggregate
//
// Key business rules:
//   - An order has at least one line and every quantity is positive
//   - Unit prices are copied from the product when the line is added and never change
//   - Only a Pending order can be delivered; delivery appends a dated note
package order
