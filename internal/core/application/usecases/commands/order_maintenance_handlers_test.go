package commands_test

import (
	"testing"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, number int64, notes string) *order.Order {
	t.Helper()
	personID := kernel.MustNationalID("70000001")
	line, err := order.NewLine(1, "SN-A", 1, decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	o, err := order.RestoreOrder(number, kernel.MustNationalID("45879632"), &personID,
		registeredAt, nil, notes, order.Pending, []order.Line{line})
	require.NoError(t, err)
	return o
}

func TestConfirmDeliveryCommandHandler_Handle(t *testing.T) {
	deliveredOn := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("should deliver a pending order and append the delivery note", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOrderRepository)
		o := pendingOrder(t, 7, "ring twice")

		expectTx(ctx, uow, true)
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetPendingForUpdate", mock.Anything, int64(7)).Return(o, nil).Once()
		repo.On("Update", mock.Anything, o).Return(nil).Once()

		cmd, err := commands.NewConfirmDeliveryCommand(7, deliveredOn, "left with neighbour")
		require.NoError(t, err)

		h := commands.NewConfirmDeliveryCommandHandler(orderUoWFactory{uow: uow}, kernel.FixedClock{At: deliveredOn})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "ring twice\n[DELIVERED 2024-03-05]: left with neighbour", o.Notes())
		require.NotNil(t, o.DeliveryDate())
		assert.True(t, o.DeliveryDate().Equal(deliveredOn))
		require.Len(t, o.DomainEvents(), 1)
		assert.Equal(t, "order.delivered", o.DomainEvents()[0].EventName())
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should report not found when the order is not pending", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOrderRepository)

		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetPendingForUpdate", mock.Anything, int64(8)).
			Return(nil, errs.NewObjectNotFoundError("pending order", int64(8))).Once()

		cmd, err := commands.NewConfirmDeliveryCommand(8, deliveredOn, "")
		require.NoError(t, err)

		h := commands.NewConfirmDeliveryCommandHandler(orderUoWFactory{uow: uow}, kernel.SystemClock{})
		err = h.Handle(ctx, cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should reject a missing delivery date", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(1, time.Time{}, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a non-positive order number", func(t *testing.T) {
		_, err := commands.NewConfirmDeliveryCommand(0, deliveredOn, "")
		require.Error(t, err)
	})
}

func TestDeleteOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should delete the order", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOrderRepository)

		expectTx(ctx, uow, true)
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		cmd, err := commands.NewDeleteOrderCommand(3)
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(orderUoWFactory{uow: uow})
		require.NoError(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		repo := new(MockOrderRepository)

		expectTx(ctx, uow, false)
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Delete", mock.Anything, int64(4)).Return(errs.NewObjectNotFoundError("order", int64(4))).Once()

		cmd, err := commands.NewDeleteOrderCommand(4)
		require.NoError(t, err)

		h := commands.NewDeleteOrderCommandHandler(orderUoWFactory{uow: uow})
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
