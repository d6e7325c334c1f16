package commands_test

import (
	"context"
	"errors"
	"testing"

	"cakeshop/internal/core/application/usecases/commands"
	"cakeshop/internal/core/domain/model/cake"
	"cakeshop/internal/core/domain/services"
	"cakeshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, c *cake.Cake) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(_ context.Context, _ *cake.Cake) error { return nil }
func (m *MockOrderRepository) Get(_ context.Context, _ string) (*cake.Cake, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAll(_ context.Context) ([]*cake.Cake, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllByCategory(_ context.Context, _ cake.Category) ([]*cake.Cake, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderPlaced(ctx context.Context, placed *cake.Cake) {
	m.Called(ctx, placed)
}

func newCakeFactory(t *testing.T) *services.CakeFactory {
	t.Helper()
	factory, err := services.NewCakeFactory(
		services.NewPricingCatalog(),
		services.NewIdentityGenerator(),
	)
	require.NoError(t, err)
	return factory
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(cake.Chocolate, cake.Large,
		[]cake.DecorationKind{cake.ChocolateChips, cake.Cream})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cake.Cake")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	uowFactory := new(MockOrderUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyOrderPlaced", ctx, mock.AnythingOfType("*cake.Cake")).Once()

	h, err := commands.NewPlaceOrderCommandHandler(uowFactory, newCakeFactory(t), notifier)
	require.NoError(t, err)

	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "CHO-L-001", placed.ID())
	assert.Equal(t, "Order #CHO-L-001: Chocolate Cake (Large) with Chocolate Chips and Cream",
		placed.Describe())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uowFactory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	uowFactory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)

	h, err := commands.NewPlaceOrderCommandHandler(uowFactory, newCakeFactory(t), notifier)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(cake.Apple, cake.Small, nil)

	uow := new(MockOrderUoW)
	uowFactory := new(MockOrderUoWFactory)
	mock.InOrder(
		uowFactory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	notifier := new(MockNotifier)

	h, err := commands.NewPlaceOrderCommandHandler(uowFactory, newCakeFactory(t), notifier)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(cake.Cheese, cake.Medium, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cake.Cake")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	uowFactory := new(MockOrderUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h, err := commands.NewPlaceOrderCommandHandler(uowFactory, newCakeFactory(t), notifier)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uowFactory.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(cake.Cheese, cake.Medium, nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*cake.Cake")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	uowFactory := new(MockOrderUoWFactory)
	uowFactory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h, err := commands.NewPlaceOrderCommandHandler(uowFactory, newCakeFactory(t), notifier)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uowFactory.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
}
