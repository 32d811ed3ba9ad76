package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrRegisterOrderCommandIsNotConstructed = errors.New(
	"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
)

// RegisterOrderLine is one requested product as received from the caller.
type RegisterOrderLine struct {
	ProductSerial string
	Quantity      int
}

// RegisterOrderCommand represents a request to register a new order for a
// customer, handed to a delivery person.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand("45879632", "70000001", nil, "call on arrival", []RegisterOrderLine{
//	    {ProductSerial: "978-0307474728", Quantity: 2},
//	})
//	if err != nil {
//	    return err // ValueIsRequired, ValueIsInvalid or EmptyOrder
//	}
//	result, err := handler.Handle(ctx, cmd)
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.NationalID
	deliveryPersonID kernel.NationalID
	deliveryDate     *time.Time
	notes            string
	lines            []services.LineRequest

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand validates the input shape. Existence of the
// referenced records and stock are checked by the handler.
func NewRegisterOrderCommand(
	customerID, deliveryPersonID string,
	deliveryDate *time.Time,
	notes string,
	lines []RegisterOrderLine,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		deliveryDate: deliveryDate,
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setLines(lines),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

func (c RegisterOrderCommand) CustomerID() kernel.NationalID {
	return c.customerID
}

func (c RegisterOrderCommand) DeliveryPersonID() kernel.NationalID {
	return c.deliveryPersonID
}

func (c RegisterOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

func (c RegisterOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the requested lines in input order.
func (c RegisterOrderCommand) Lines() []services.LineRequest {
	lines := make([]services.LineRequest, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ProductSerials returns each distinct serial number once.
func (c RegisterOrderCommand) ProductSerials() []string {
	seen := make(map[string]struct{}, len(c.lines))
	serials := make([]string, 0, len(c.lines))
	for _, l := range c.lines {
		if _, ok := seen[l.ProductSerial]; ok {
			continue
		}
		seen[l.ProductSerial] = struct{}{}
		serials = append(serials, l.ProductSerial)
	}
	return serials
}

func (c *RegisterOrderCommand) setCustomerID(id string) error {
	nid, err := kernel.NewNationalID(id)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	c.customerID = nid
	return nil
}

func (c *RegisterOrderCommand) setDeliveryPersonID(id string) error {
	nid, err := kernel.NewNationalID(id)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery person", err)
	}
	c.deliveryPersonID = nid
	return nil
}

func (c *RegisterOrderCommand) setLines(lines []RegisterOrderLine) error {
	if len(lines) == 0 {
		return errs.ErrEmptyOrder
	}

	requests := make([]services.LineRequest, 0, len(lines))
	var lineErrs []error
	for i, l := range lines {
		serial := strings.TrimSpace(l.ProductSerial)
		if serial == "" {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredError(fmt.Sprintf("line %d product", i+1)))
			continue
		}
		if l.Quantity <= 0 {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("line %d quantity", i+1),
				fmt.Errorf("%d is not greater than 0", l.Quantity),
			))
			continue
		}
		requests = append(requests, services.LineRequest{ProductSerial: serial, Quantity: l.Quantity})
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = requests
	return nil
}
