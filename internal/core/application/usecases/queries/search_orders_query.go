package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery filters orders by customer name and order date.
//
// Name filters match first OR last names, case-insensitive substring. The
// date range only applies when both bounds are given and is inclusive by
// calendar day. A malformed date never fails the query: it is reported in
// SearchOrdersResult.DateRangeError and the remaining filters still run.
type SearchOrdersQuery struct {
	triggered bool
	firstName string
	lastName  string
	from      *time.Time
	to        *time.Time
	dateErr   error
	guard     guard.ConstructorGuard
}

// NewSearchOrdersQuery takes dates as yyyy-mm-dd strings. An untriggered
// query, e.g. a search form opened for the first time, runs nothing.
func NewSearchOrdersQuery(triggered bool, firstName, lastName, dateFrom, dateTo string) SearchOrdersQuery {
	q := SearchOrdersQuery{
		triggered: triggered,
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		guard:     guard.NewConstructorGuard(),
	}

	from, errFrom := parseOptionalDate("date from", dateFrom)
	to, errTo := parseOptionalDate("date to", dateTo)
	if err := errors.Join(errFrom, errTo); err != nil {
		q.dateErr = errs.NewQueryIsInvalidErrorWithCause("malformed date", err)
		return q
	}
	q.from, q.to = from, to
	return q
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Triggered() bool {
	return q.triggered
}

// DateRange reports the range only when both bounds are usable.
func (q SearchOrdersQuery) DateRange() (from, to time.Time, ok bool) {
	if q.from == nil || q.to == nil {
		return time.Time{}, time.Time{}, false
	}
	return *q.from, *q.to, true
}

type SearchOrdersResult struct {
	// Searched is false when the query was not triggered.
	Searched       bool
	Orders         []OrderSummary
	DateRangeError error
}

type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) (SearchOrdersResult, error) {
	if err := query.Validate(); err != nil {
		return SearchOrdersResult{}, err
	}
	if !query.Triggered() {
		return SearchOrdersResult{Orders: []OrderSummary{}}, nil
	}

	stmt := orderSummaries(h.db.WithContext(ctx))

	var names []clause.Expression
	if query.firstName != "" {
		names = append(names, clause.Expr{SQL: "c.first_names ILIKE ?", Vars: []any{containsPattern(query.firstName)}})
	}
	if query.lastName != "" {
		names = append(names, clause.Expr{SQL: "c.last_names ILIKE ?", Vars: []any{containsPattern(query.lastName)}})
	}
	if len(names) > 0 {
		stmt = stmt.Where(clause.Or(names...))
	}

	if from, to, ok := query.DateRange(); ok {
		stmt = stmt.Where("o.ordered_at >= ? AND o.ordered_at < ?", from, to.AddDate(0, 0, 1))
	}

	orders, err := scanOrderSummaries(stmt.Order("o.ordered_at DESC, o.number DESC"))
	if err != nil {
		return SearchOrdersResult{}, err
	}

	return SearchOrdersResult{Searched: true, Orders: orders, DateRangeError: query.dateErr}, nil
}

func parseOptionalDate(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s %q: expected yyyy-mm-dd", name, value)
	}
	return &t, nil
}
