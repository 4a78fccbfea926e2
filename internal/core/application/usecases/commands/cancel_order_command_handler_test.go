package commands_test

import (
	"testing"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_BuyerCancelsPending(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusPending)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), kernel.RoleBuyer, "found a better price")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("UpdateConditional", ctx, stored, order.StatusPending).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Append", ctx, mock.AnythingOfType("order.TrackingEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, stored.Status())
	require.NotNil(t, stored.CancelledAt())
}

func TestCancelOrderCommandHandler_Handle_BuyerCannotCancelShipped(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusShipped)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), kernel.RoleBuyer, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorizedRole)
	require.Equal(t, order.StatusShipped, stored.Status())
	require.Nil(t, stored.CancelledAt())
}

func TestCancelOrderCommandHandler_Handle_AdminCancelsShipped(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusShipped)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), kernel.RoleAdmin, "carrier lost the shipment")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("UpdateConditional", ctx, stored, order.StatusShipped).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Append", ctx, mock.AnythingOfType("order.TrackingEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, stored.Status())
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderRejected(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, order.StatusDelivered)
	cmd, err := commands.NewCancelOrderCommand(stored.ID(), kernel.RoleAdmin, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAlreadyFinalized)
}
