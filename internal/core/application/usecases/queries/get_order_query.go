package queries

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

type GetOrderQuery struct {
	number int64
	guard  guard.ConstructorGuard
}

func NewGetOrderQuery(number int64) (GetOrderQuery, error) {
	if number <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not greater than 0", number))
	}
	return GetOrderQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type OrderLineView struct {
	Position      int
	ProductSerial string
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	Subtotal      decimal.Decimal
}

type OrderDetail struct {
	OrderSummary
	Lines []OrderLineView
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	db := h.db.WithContext(ctx)

	summaries, err := scanOrderSummaries(orderSummaries(db).Where("o.number = ?", query.number))
	if err != nil {
		return OrderDetail{}, err
	}
	if len(summaries) == 0 {
		return OrderDetail{}, errs.NewObjectNotFoundError("order", query.number)
	}

	var lines []OrderLineView
	err = db.Table("order_lines AS l").
		Select(`
			l.position,
			l.product_serial_number AS product_serial,
			COALESCE(p.name, '') AS product_name,
			l.quantity,
			l.unit_price,
			l.quantity * l.unit_price AS subtotal`).
		Joins("LEFT JOIN products p ON p.serial_number = l.product_serial_number").
		Where("l.order_number = ?", query.number).
		Order("l.position").
		Scan(&lines).Error
	if err != nil {
		return OrderDetail{}, err
	}
	if lines == nil {
		lines = []OrderLineView{}
	}

	return OrderDetail{OrderSummary: summaries[0], Lines: lines}, nil
}
