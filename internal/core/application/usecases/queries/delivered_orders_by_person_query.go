package queries

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrDeliveredOrdersByPersonQueryIsNotConstructed = errors.New(
	"DeliveredOrdersByPersonQuery must be created via NewDeliveredOrdersByPersonQuery constructor",
)

// DeliveredOrdersByPersonQuery is the delivery report of one delivery person.
// Every supplied criterion must match; names match as substrings.
type DeliveredOrdersByPersonQuery struct {
	nationalID string
	firstName  string
	lastName   string
	guard      guard.ConstructorGuard
}

func NewDeliveredOrdersByPersonQuery(nationalID, firstName, lastName string) (DeliveredOrdersByPersonQuery, error) {
	q := DeliveredOrdersByPersonQuery{
		nationalID: strings.TrimSpace(nationalID),
		firstName:  strings.TrimSpace(firstName),
		lastName:   strings.TrimSpace(lastName),
		guard:      guard.NewConstructorGuard(),
	}
	if q.nationalID == "" && q.firstName == "" && q.lastName == "" {
		return DeliveredOrdersByPersonQuery{}, errs.NewQueryIsInvalidError("must supply at least one criterion")
	}
	return q, nil
}

func (q DeliveredOrdersByPersonQuery) Validate() error {
	return q.guard.Validate(ErrDeliveredOrdersByPersonQueryIsNotConstructed)
}

type DeliveredOrdersReport struct {
	DeliveryPerson DeliveryPersonView
	Orders         []OrderSummary
}

type DeliveredOrdersByPersonQueryHandler struct {
	db *gorm.DB
}

func NewDeliveredOrdersByPersonQueryHandler(db *gorm.DB) DeliveredOrdersByPersonQueryHandler {
	return DeliveredOrdersByPersonQueryHandler{db: db}
}

// Handle resolves the first matching person by national id and lists their
// delivered orders, latest delivery first.
func (h DeliveredOrdersByPersonQueryHandler) Handle(
	ctx context.Context,
	query DeliveredOrdersByPersonQuery,
) (DeliveredOrdersReport, error) {
	if err := query.Validate(); err != nil {
		return DeliveredOrdersReport{}, err
	}

	db := h.db.WithContext(ctx)

	stmt := db.Table("delivery_persons")
	if query.nationalID != "" {
		stmt = stmt.Where("national_id = ?", query.nationalID)
	}
	if query.firstName != "" {
		stmt = stmt.Where("first_names ILIKE ?", containsPattern(query.firstName))
	}
	if query.lastName != "" {
		stmt = stmt.Where("last_names ILIKE ?", containsPattern(query.lastName))
	}

	var people []DeliveryPersonView
	if err := stmt.Order("national_id").Limit(1).Scan(&people).Error; err != nil {
		return DeliveredOrdersReport{}, err
	}
	if len(people) == 0 {
		return DeliveredOrdersReport{}, errs.NewObjectNotFoundError("delivery person", describeCriteria(query))
	}
	person := people[0]

	orders, err := scanOrderSummaries(orderSummaries(db).
		Where("o.delivery_person_national_id = ?", person.NationalID).
		Where("o.status = ?", int(order.Delivered)).
		Order("o.delivery_date DESC NULLS LAST, o.number DESC"))
	if err != nil {
		return DeliveredOrdersReport{}, err
	}

	return DeliveredOrdersReport{DeliveryPerson: person, Orders: orders}, nil
}

func describeCriteria(q DeliveredOrdersByPersonQuery) string {
	parts := make([]string, 0, 3)
	if q.nationalID != "" {
		parts = append(parts, "national id "+q.nationalID)
	}
	if q.firstName != "" {
		parts = append(parts, "first names "+q.firstName)
	}
	if q.lastName != "" {
		parts = append(parts, "last names "+q.lastName)
	}
	return strings.Join(parts, ", ")
}
