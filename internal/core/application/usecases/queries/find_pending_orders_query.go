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

var ErrFindPendingOrdersQueryIsNotConstructed = errors.New(
	"FindPendingOrdersQuery must be created via NewFindPendingOrdersQuery constructor",
)

// PendingOrdersCriterion selects which national id the value is matched against.
type PendingOrdersCriterion string

const (
	ByCustomer       PendingOrdersCriterion = "customer"
	ByDeliveryPerson PendingOrdersCriterion = "delivery_person"
)

// FindPendingOrdersQuery looks up the Pending orders of one customer or one
// delivery person, the first step of registering a delivery.
//
// Example:
//
//	query, err := NewFindPendingOrdersQuery("customer", "45879632")
//	if err != nil {
//	    return err // errs.ErrQueryIsInvalid
//	}
//	orders, err := handler.Handle(ctx, query)
type FindPendingOrdersQuery struct {
	criterion PendingOrdersCriterion
	value     string
	guard     guard.ConstructorGuard
}

func NewFindPendingOrdersQuery(criterion, value string) (FindPendingOrdersQuery, error) {
	c := PendingOrdersCriterion(strings.TrimSpace(criterion))
	if c != ByCustomer && c != ByDeliveryPerson {
		return FindPendingOrdersQuery{}, errs.NewQueryIsInvalidError("unknown search criterion " + string(c))
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return FindPendingOrdersQuery{}, errs.NewQueryIsInvalidError("a national id is required")
	}

	return FindPendingOrdersQuery{criterion: c, value: value, guard: guard.NewConstructorGuard()}, nil
}

func (q FindPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindPendingOrdersQueryIsNotConstructed)
}

func (q FindPendingOrdersQuery) Criterion() PendingOrdersCriterion {
	return q.criterion
}

func (q FindPendingOrdersQuery) Value() string {
	return q.value
}

type FindPendingOrdersQueryHandler struct {
	db *gorm.DB
}

func NewFindPendingOrdersQueryHandler(db *gorm.DB) FindPendingOrdersQueryHandler {
	return FindPendingOrdersQueryHandler{db: db}
}

// Handle returns an empty slice, not an error, when nothing matches.
func (h FindPendingOrdersQueryHandler) Handle(ctx context.Context, query FindPendingOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	column := "o.customer_national_id"
	if query.Criterion() == ByDeliveryPerson {
		column = "o.delivery_person_national_id"
	}

	stmt := orderSummaries(h.db.WithContext(ctx)).
		Where("o.status = ?", int(order.Pending)).
		Where(column+" = ?", query.Value()).
		Order("o.ordered_at DESC, o.number DESC")

	return scanOrderSummaries(stmt)
}
