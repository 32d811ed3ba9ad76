package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand marks a pending order as delivered on a date and
// appends the delivery notes to the order notes.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber  int64
	deliveryDate time.Time
	notes        string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderNumber int64, deliveryDate time.Time, notes string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderNumber() int64 {
	return c.orderNumber
}

func (c ConfirmDeliveryCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c ConfirmDeliveryCommand) Notes() string {
	return c.notes
}

func (c *ConfirmDeliveryCommand) setOrderNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d is not greater than 0", number))
	}
	c.orderNumber = number
	return nil
}

func (c *ConfirmDeliveryCommand) setDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	c.deliveryDate = date
	return nil
}
