// Package orderrepo persists the order aggregate: one orders row plus its
// order_lines rows.
package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the order header. Lines are stored separately and are never
// rewritten after insert.
type OrderDTO struct {
	Number                   int64      `gorm:"primaryKey;autoIncrement"`
	OrderedAt                time.Time  `gorm:"not null;index"`
	DeliveryDate             *time.Time `gorm:"type:date"`
	Notes                    string     `gorm:"type:text;not null;default:''"`
	Status                   int        `gorm:"not null;index"`
	CustomerNationalID       string     `gorm:"size:15;not null;index"`
	DeliveryPersonNationalID *string    `gorm:"size:15;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderLineDTO struct {
	OrderNumber         int64           `gorm:"primaryKey;autoIncrement:false"`
	Position            int             `gorm:"primaryKey;autoIncrement:false"`
	ProductSerialNumber string          `gorm:"size:50;not null;index"`
	Quantity            int             `gorm:"not null;check:chk_order_lines_quantity,quantity >= 1"`
	UnitPrice           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) (OrderDTO, []OrderLineDTO) {
	dto := OrderDTO{
		Number:             o.Number(),
		OrderedAt:          o.OrderedAt(),
		DeliveryDate:       o.DeliveryDate(),
		Notes:              o.Notes(),
		Status:             int(o.Status()),
		CustomerNationalID: o.CustomerID().String(),
	}
	if id := o.DeliveryPersonID(); id != nil {
		raw := id.String()
		dto.DeliveryPersonNationalID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderNumber:         o.Number(),
			Position:            l.Position(),
			ProductSerialNumber: l.ProductSerial(),
			Quantity:            l.Quantity(),
			UnitPrice:           l.UnitPrice(),
		})
	}
	return dto, lines
}

func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	customerID, err := kernel.NewNationalID(dto.CustomerNationalID)
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.NationalID
	if dto.DeliveryPersonNationalID != nil {
		id, idErr := kernel.NewNationalID(*dto.DeliveryPersonNationalID)
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &id
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		line, lineErr := order.NewLine(l.Position, l.ProductSerialNumber, l.Quantity, l.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.Number,
		customerID,
		deliveryPersonID,
		dto.OrderedAt,
		dto.DeliveryDate,
		dto.Notes,
		order.Status(dto.Status),
		lines,
	)
}
