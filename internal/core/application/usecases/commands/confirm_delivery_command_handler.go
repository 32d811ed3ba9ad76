package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
)

// ConfirmDeliveryCommandHandler delivers a pending order. An order that is
// missing, already delivered or cancelled yields the same not-found error, and
// nothing is written.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetPendingForUpdate(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = o.Deliver(cmd.DeliveryDate(), cmd.Notes(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
