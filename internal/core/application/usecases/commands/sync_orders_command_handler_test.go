package commands_test

import (
	"context"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type SyncOrderSource struct{ mock.Mock }

func (m *SyncOrderSource) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type SyncOrderStore struct{ mock.Mock }

func (m *SyncOrderStore) Seed(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *SyncOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *SyncOrderStore) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *SyncOrderStore) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *SyncOrderStore) State(ctx context.Context) (ports.LoadState, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.LoadState), args.Error(1)
}

func (m *SyncOrderStore) MarkFailed(ctx context.Context, loadErr error) {
	m.Called(ctx, loadErr)
}

func TestSyncOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()
	orders := []*order.Order{newTestOrder(t, "1"), newTestOrder(t, "2")}

	orderSource := new(SyncOrderSource)
	orderStore := new(SyncOrderStore)
	mock.InOrder(
		orderSource.On("FetchOrders", ctx).Return(orders, nil).Once(),
		orderStore.On("Seed", ctx, orders).Return(nil).Once(),
	)

	handler := commands.NewSyncOrdersCommandHandler(orderSource, orderStore)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderSource.AssertExpectations(t)
	orderStore.AssertExpectations(t)
}

func TestSyncOrdersCommandHandler_Handle_FetchError_MarksStoreFailed(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()

	orderSource := new(SyncOrderSource)
	orderStore := new(SyncOrderStore)
	mock.InOrder(
		orderSource.On("FetchOrders", ctx).Return(nil, assert.AnError).Once(),
		orderStore.On("MarkFailed", ctx, assert.AnError).Once(),
	)

	handler := commands.NewSyncOrdersCommandHandler(orderSource, orderStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
	orderStore.AssertNotCalled(t, "Seed")
	orderStore.AssertExpectations(t)
}

func TestSyncOrdersCommandHandler_Handle_CancelledFetchIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cmd := commands.NewSyncOrdersCommand()

	orderSource := new(SyncOrderSource)
	orderStore := new(SyncOrderStore)
	orderSource.On("FetchOrders", ctx).
		Run(func(args mock.Arguments) { cancel() }).
		Return(nil, context.Canceled).Once()

	handler := commands.NewSyncOrdersCommandHandler(orderSource, orderStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	orderStore.AssertNotCalled(t, "MarkFailed")
	orderStore.AssertNotCalled(t, "Seed")
}

func TestSyncOrdersCommandHandler_Handle_SeedError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewSyncOrdersCommand()
	orders := []*order.Order{newTestOrder(t, "3")}

	orderSource := new(SyncOrderSource)
	orderStore := new(SyncOrderStore)
	mock.InOrder(
		orderSource.On("FetchOrders", ctx).Return(orders, nil).Once(),
		orderStore.On("Seed", ctx, orders).Return(assert.AnError).Once(),
	)

	handler := commands.NewSyncOrdersCommandHandler(orderSource, orderStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
}

func TestSyncOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SyncOrdersCommand{} // not constructed properly

	orderSource := new(SyncOrderSource)
	orderStore := new(SyncOrderStore)

	handler := commands.NewSyncOrdersCommandHandler(orderSource, orderStore)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSyncOrdersCommandIsNotConstructed)
	orderSource.AssertNotCalled(t, "FetchOrders")
}
