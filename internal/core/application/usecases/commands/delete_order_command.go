package commands

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order together with its lines. Stock is not
// given back.
type DeleteOrderCommand struct {
	orderNumber int64
	guard       guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderNumber int64) (DeleteOrderCommand, error) {
	if orderNumber <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%d is not greater than 0", orderNumber))
	}
	return DeleteOrderCommand{orderNumber: orderNumber, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderNumber() int64 {
	return c.orderNumber
}

type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
