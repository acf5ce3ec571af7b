package commands_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type AcceptOrderStore struct{ mock.Mock }

func (m *AcceptOrderStore) Seed(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *AcceptOrderStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *AcceptOrderStore) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *AcceptOrderStore) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *AcceptOrderStore) State(ctx context.Context) (ports.LoadState, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.LoadState), args.Error(1)
}

func (m *AcceptOrderStore) MarkFailed(ctx context.Context, loadErr error) {
	m.Called(ctx, loadErr)
}

type AcceptNotifier struct{ mock.Mock }

func (m *AcceptNotifier) Notify(ctx context.Context, notification ports.Notification) {
	m.Called(ctx, notification)
}

func newTestOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Karimova Nilufar", "+998 90 123 45 67")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Toshkent, Chilonzor tumani, 12-kvartal")
	require.NoError(t, err)
	item, err := order.NewItem("Lavash", 2, 28000)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		orderID, customer, address, []order.Item{item},
		time.Date(2023, 10, 15, 12, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return aggregate
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, "1")
	cmd, _ := commands.NewAcceptOrderCommand(testOrder.ID())

	orderStore := new(AcceptOrderStore)
	notifier := new(AcceptNotifier)

	mock.InOrder(
		orderStore.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderStore.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
	)
	notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Severity == ports.SeverityInfo
	})).Once()

	handler := commands.NewAcceptOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, testOrder.Status())
	orderStore.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID, _ := kernel.NewOrderID("99")
	cmd, _ := commands.NewAcceptOrderCommand(orderID)

	orderStore := new(AcceptOrderStore)
	notifier := new(AcceptNotifier)
	orderStore.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	handler := commands.NewAcceptOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderStore.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "Notify")
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, "2")
	require.NoError(t, testOrder.Accept())
	cmd, _ := commands.NewAcceptOrderCommand(testOrder.ID())

	orderStore := new(AcceptOrderStore)
	notifier := new(AcceptNotifier)
	orderStore.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	handler := commands.NewAcceptOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderStore.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "Notify")
}

func TestAcceptOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	testOrder := newTestOrder(t, "3")
	cmd, _ := commands.NewAcceptOrderCommand(testOrder.ID())

	orderStore := new(AcceptOrderStore)
	notifier := new(AcceptNotifier)
	mock.InOrder(
		orderStore.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderStore.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(assert.AnError).Once(),
	)

	handler := commands.NewAcceptOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
	notifier.AssertNotCalled(t, "Notify")
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly

	orderStore := new(AcceptOrderStore)
	notifier := new(AcceptNotifier)

	handler := commands.NewAcceptOrderCommandHandler(orderStore, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
	orderStore.AssertNotCalled(t, "Get")
}
