package commands

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/services"
)

// RegisterOrderResult is what the caller shows after a successful registration.
type RegisterOrderResult struct {
	Number int64
	Totals services.OrderTotals
}

// RegisterOrderCommandHandler registers an order with its lines and takes the
// ordered quantities out of stock, all inside one transaction. Any failure
// leaves orders, lines and stock exactly as they were.
//
// The unit of work factory is expected to open serializable transactions; the
// product rows are additionally locked before stock is checked. Conflicts
// surface as errs.ErrTransactionConflict and are not retried here.
type RegisterOrderCommandHandler struct {
	uowFactory RegisterOrderUoWFactory
	clock      kernel.Clock
	allocator  services.StockAllocator
	pricer     services.OrderPricer
}

func NewRegisterOrderCommandHandler(uowFactory RegisterOrderUoWFactory, clock kernel.Clock) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		allocator:  services.NewStockAllocator(),
		pricer:     services.NewOrderPricer(),
	}
}

func (h RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) (RegisterOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return RegisterOrderResult{}, err
	}
	if _, err := uow.DeliveryPersonRepository().Get(ctx, cmd.DeliveryPersonID()); err != nil {
		return RegisterOrderResult{}, err
	}

	productRepo := uow.ProductRepository()
	products, err := productRepo.GetForUpdate(ctx, cmd.ProductSerials())
	if err != nil {
		return RegisterOrderResult{}, err
	}

	deliveryPersonID := cmd.DeliveryPersonID()
	o, err := order.NewOrder(cmd.CustomerID(), &deliveryPersonID, h.clock.Now(), cmd.DeliveryDate(), cmd.Notes())
	if err != nil {
		return RegisterOrderResult{}, err
	}

	if err = h.allocator.Allocate(o, products, cmd.Lines()); err != nil {
		return RegisterOrderResult{}, err
	}

	for _, serial := range cmd.ProductSerials() {
		if err = productRepo.Update(ctx, products[serial]); err != nil {
			return RegisterOrderResult{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return RegisterOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterOrderResult{}, err
	}

	return RegisterOrderResult{
		Number: o.Number(),
		Totals: h.pricer.Price(o),
	}, nil
}
