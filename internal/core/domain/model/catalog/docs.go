// Package catalog contains the reference data an order is built from:
// categories, products, customers and delivery personnel.
//
// Every entity keeps its fields private and validates them on construction and
// on Edit. Products own the stock counter; stock is only decreased through
// DecreaseStock, which refuses to go negative.
package catalog
