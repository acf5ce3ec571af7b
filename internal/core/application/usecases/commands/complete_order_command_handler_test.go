package commands_test

import (
	"context"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type CompleteOrderStore struct{ mock.Mock }

func (m *CompleteOrderStore) Seed(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *CompleteOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *CompleteOrderStore) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *CompleteOrderStore) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *CompleteOrderStore) State(ctx context.Context) (ports.LoadState, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.LoadState), args.Error(1)
}

func (m *CompleteOrderStore) MarkFailed(ctx context.Context, loadErr error) {
	m.Called(ctx, loadErr)
}

type CompleteNotifier struct{ mock.Mock }

func (m *CompleteNotifier) Notify(ctx context.Context, notification ports.Notification) {
	m.Called(ctx, notification)
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, "5")
	require.NoError(t, testOrder.Accept())
	cmd, _ := commands.NewCompleteOrderCommand(testOrder.ID())

	orderStore := new(CompleteOrderStore)
	notifier := new(CompleteNotifier)
	mock.InOrder(
		orderStore.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderStore.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Severity == ports.SeverityInfo
	})).Once()

	handler := commands.NewCompleteOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	orderStore.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotYetAccepted(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, "6")
	cmd, _ := commands.NewCompleteOrderCommand(testOrder.ID())

	orderStore := new(CompleteOrderStore)
	notifier := new(CompleteNotifier)
	orderStore.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	handler := commands.NewCompleteOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.New, testOrder.Status())
	orderStore.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "Notify")
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID, _ := kernel.NewOrderID("404")
	cmd, _ := commands.NewCompleteOrderCommand(orderID)

	orderStore := new(CompleteOrderStore)
	notifier := new(CompleteNotifier)
	orderStore.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	handler := commands.NewCompleteOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Notify")
}

func TestCompleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteOrderCommand{} // not constructed properly

	orderStore := new(CompleteOrderStore)
	notifier := new(CompleteNotifier)

	handler := commands.NewCompleteOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
	orderStore.AssertNotCalled(t, "Get")
}
