package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotEditable is returned when lines are added to an order that was
	// already persisted or is no longer pending.
	ErrOrderIsNotEditable = errors.New("order lines can only be added to a new pending order")
)

// Order is the aggregate root for a customer purchase. It is created Pending by
// registration, receives its number from the store, and can later be delivered.
//
// Order follows these invariants:
//   - Must reference a customer
//   - Lines are numbered 1..n in insertion order
//   - Line unit prices are captured when the line is added
//   - Status only moves Pending -> Delivered
//
// Domain events are recorded on AssignNumber and Deliver and drained by the
// unit of work after commit.
type Order struct {
	// number is assigned by the store on insert; zero until then
	number int64

	// orderedAt is the registration instant
	orderedAt time.Time

	// deliveryDate is a calendar date (UTC midnight), nil when unknown
	deliveryDate *time.Time

	notes  string
	status Status

	customerID kernel.NationalID

	// deliveryPersonID is nil when the delivery person record was removed
	deliveryPersonID *kernel.NationalID

	lines  []Line
	events []kernel.DomainEvent

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an empty Pending order. Lines are added with AddLine before
// the order is handed to the repository.
//
// Example:
//
//	o, err := order.NewOrder(customerID, &deliveryPersonID, clock.Now(), nil, "leave at the door")
//	if err != nil {
//	    return err
//	}
//	if err = o.AddLine("SN-001", 2, product.UnitPrice()); err != nil {
//	    return err
//	}
func NewOrder(
	customerID kernel.NationalID,
	deliveryPersonID *kernel.NationalID,
	orderedAt time.Time,
	deliveryDate *time.Time,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
		lines:         make([]Line, 0),
	}

	if err := errors.Join(
		o.setCustomer(customerID),
		o.setDeliveryPerson(deliveryPersonID),
		o.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	o.deliveryDate = civilDate(deliveryDate)
	o.notes = strings.TrimSpace(notes)
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. No events are recorded.
func RestoreOrder(
	number int64,
	customerID kernel.NationalID,
	deliveryPersonID *kernel.NationalID,
	orderedAt time.Time,
	deliveryDate *time.Time,
	notes string,
	status Status,
	lines []Line,
) (*Order, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not greater than 0", number))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(customerID, deliveryPersonID, orderedAt, deliveryDate, "")
	if err != nil {
		return nil, err
	}

	o.number = number
	o.status = status
	// Stored notes are kept verbatim, including earlier delivery annotations.
	o.notes = notes
	o.lines = append(o.lines, lines...)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

func (o *Order) DeliveryDate() *time.Time {
	if o.deliveryDate == nil {
		return nil
	}
	d := *o.deliveryDate
	return &d
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CustomerID() kernel.NationalID {
	return o.customerID
}

func (o *Order) DeliveryPersonID() *kernel.NationalID {
	if o.deliveryPersonID == nil {
		return nil
	}
	id := *o.deliveryPersonID
	return &id
}

// Lines returns a copy of the order lines in position order.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal sums the line subtotals. Tax is applied by services.OrderPricer.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// AddLine appends a line for the product at the given unit price. Only a new
// (not yet numbered) pending order accepts lines.
func (o *Order) AddLine(productSerial string, quantity int, unitPrice decimal.Decimal) error {
	if o.number != 0 || o.status != Pending {
		return ErrOrderIsNotEditable
	}

	line, err := NewLine(len(o.lines)+1, productSerial, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	return nil
}

// AssignNumber records the number generated by the store and the OrderRegistered event.
func (o *Order) AssignNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not greater than 0", number))
	}
	if o.number != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("already assigned %d", o.number))
	}

	o.number = number

	event := OrderRegistered{
		Number:     number,
		CustomerID: o.customerID.String(),
		LineCount:  len(o.lines),
		Subtotal:   o.Subtotal().StringFixed(2),
		At:         o.orderedAt,
	}
	if o.deliveryPersonID != nil {
		event.DeliveryPersonID = o.deliveryPersonID.String()
	}
	o.events = append(o.events, event)
	return nil
}

// Deliver marks a pending order as delivered on the given date and appends
// "[DELIVERED yyyy-mm-dd]: notes" on a new line after the existing notes.
//
// Returns an error and leaves the order untouched when it is not Pending.
func (o *Order) Deliver(deliveryDate time.Time, deliveryNotes string, at time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryDate = civilDate(&deliveryDate)
	o.notes = AppendDeliveryNote(o.notes, *o.deliveryDate, deliveryNotes)
	o.events = append(o.events, OrderDelivered{
		Number:       o.number,
		DeliveryDate: o.deliveryDate.Format(time.DateOnly),
		At:           at,
	})
	return nil
}

func (o *Order) DomainEvents() []kernel.DomainEvent {
	events := make([]kernel.DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// AppendDeliveryNote joins existing notes and the delivery marker, trimming the result.
func AppendDeliveryNote(existing string, deliveryDate time.Time, deliveryNotes string) string {
	return strings.TrimSpace(fmt.Sprintf("%s\n[DELIVERED %s]: %s",
		existing, deliveryDate.Format(time.DateOnly), deliveryNotes))
}

func (o *Order) setCustomer(customerID kernel.NationalID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryPerson(deliveryPersonID *kernel.NationalID) error {
	if deliveryPersonID == nil {
		return nil
	}
	if err := deliveryPersonID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery person", err)
	}
	id := *deliveryPersonID
	o.deliveryPersonID = &id
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("ordered at")
	}
	o.orderedAt = orderedAt
	return nil
}

func civilDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &date
}
