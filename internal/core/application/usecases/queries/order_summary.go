// Package queries contains read-only operations. Handlers read straight from
// the database through gorm and never load aggregates.
package queries

import (
	"strings"
	"time"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is an order header enriched with the names shown next to it.
// DeliveryPersonID is empty when the delivery person was removed.
type OrderSummary struct {
	Number             int64
	OrderedAt          time.Time
	DeliveryDate       *time.Time
	Status             order.Status
	Notes              string
	CustomerID         string
	CustomerName       string
	DeliveryPersonID   string
	DeliveryPersonName string
	Totals             services.OrderTotals
}

type orderSummaryRow struct {
	Number             int64
	OrderedAt          time.Time
	DeliveryDate       *time.Time
	Status             int
	Notes              string
	CustomerID         string
	CustomerName       string
	DeliveryPersonID   *string
	DeliveryPersonName *string
	Subtotal           decimal.Decimal
}

const orderSummaryColumns = `
	o.number,
	o.ordered_at,
	o.delivery_date,
	o.status,
	o.notes,
	c.national_id AS customer_id,
	c.first_names || ' ' || c.last_names AS customer_name,
	d.national_id AS delivery_person_id,
	d.first_names || ' ' || d.last_names AS delivery_person_name,
	COALESCE((
		SELECT SUM(l.quantity * l.unit_price)
		FROM order_lines l
		WHERE l.order_number = o.number
	), 0) AS subtotal`

// orderSummaries starts a statement over orders joined with their customer and
// delivery person. Callers add filters and ordering.
func orderSummaries(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Select(orderSummaryColumns).
		Joins("JOIN customers c ON c.national_id = o.customer_national_id").
		Joins("LEFT JOIN delivery_persons d ON d.national_id = o.delivery_person_national_id")
}

func scanOrderSummaries(stmt *gorm.DB) ([]OrderSummary, error) {
	var rows []orderSummaryRow
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}

	pricer := services.NewOrderPricer()
	summaries := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, r.toSummary(pricer))
	}
	return summaries, nil
}

func (r orderSummaryRow) toSummary(pricer services.OrderPricer) OrderSummary {
	s := OrderSummary{
		Number:       r.Number,
		OrderedAt:    r.OrderedAt.UTC(),
		DeliveryDate: r.DeliveryDate,
		Status:       order.Status(r.Status),
		Notes:        r.Notes,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Totals:       pricer.PriceSubtotal(r.Subtotal),
	}
	if r.DeliveryPersonID != nil {
		s.DeliveryPersonID = *r.DeliveryPersonID
	}
	if r.DeliveryPersonName != nil {
		s.DeliveryPersonName = *r.DeliveryPersonName
	}
	return s
}

// containsPattern builds a case-insensitive substring pattern for ILIKE with
// LIKE wildcards in the input matched literally.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
