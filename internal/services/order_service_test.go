package services

import (
	"context"
	"errors"
	"testing"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	service *OrderService
	orders  *mockOrderRepository
	carts   *cartFixture
}

func newOrderFixture() *orderFixture {
	orders := new(mockOrderRepository)
	carts := newCartFixture()
	return &orderFixture{
		service: NewOrderService(orders, carts.service, nil),
		orders:  orders,
		carts:   carts,
	}
}

func validSubmitRequest() *SubmitOrderRequest {
	return &SubmitOrderRequest{
		Name:          "Ada",
		Phone:         "555-0100",
		Address:       "1 Main St",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62701",
		PaymentMethod: models.PaymentMethodCOD,
	}
}

// fillCart puts a 10.00 burger and a 5.00 side into the user's cart and
// returns the restaurant they came from.
func (f *orderFixture) fillCart(t *testing.T, userID string) *models.Restaurant {
	t.Helper()
	restaurant := f.carts.stubRestaurant()
	burger := f.carts.stubMenuItem("10.00", restaurant.ID)
	fries := f.carts.stubMenuItem("5.00", restaurant.ID)
	ctx := context.Background()
	_, err := f.carts.service.AddItem(ctx, userID, burger.ID.Hex(), false)
	require.NoError(t, err)
	_, err = f.carts.service.AddItem(ctx, userID, fries.ID.Hex(), false)
	require.NoError(t, err)
	return restaurant
}

func TestSubmitOrderRequiresAuthentication(t *testing.T) {
	f := newOrderFixture()

	_, err := f.service.SubmitOrder(context.Background(), "", validSubmitRequest())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.service.SubmitOrder(context.Background(), "not-a-uuid", validSubmitRequest())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()

	_, err := f.service.SubmitOrder(context.Background(), userID, validSubmitRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitOrderRejectsUnknownPaymentMethod(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.fillCart(t, userID)

	req := validSubmitRequest()
	req.PaymentMethod = "crypto"

	_, err := f.service.SubmitOrder(context.Background(), userID, req)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitOrderPersistsSnapshotAndClearsCart(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	restaurant := f.fillCart(t, userID)
	ctx := context.Background()

	var captured *models.Order
	var capturedItems []models.OrderItem
	f.orders.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*models.Order)
			capturedItems = args.Get(2).([]models.OrderItem)
		}).
		Return(nil)

	order, err := f.service.SubmitOrder(ctx, userID, validSubmitRequest())
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, userID, order.UserID.String())
	assert.Equal(t, restaurant.ID, order.RestaurantID)
	assert.Equal(t, "19.19", order.Total.StringFixed(2))
	assert.Equal(t, "1 Main St, Springfield, IL 62701", order.DeliveryAddress)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)

	// one item per cart line, prices frozen from the cart snapshot
	require.Len(t, capturedItems, 2)
	assert.Equal(t, 1, capturedItems[0].Quantity)
	assert.Equal(t, "10.00", capturedItems[0].Price.StringFixed(2))
	assert.Equal(t, "5.00", capturedItems[1].Price.StringFixed(2))

	// the cart is cleared only after the transaction commits
	view := f.carts.service.GetCart(ctx, userID)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "0.00", view.Total)
}

func TestSubmitOrderKeepsCartOnPersistenceFailure(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.fillCart(t, userID)
	ctx := context.Background()

	f.orders.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	_, err := f.service.SubmitOrder(ctx, userID, validSubmitRequest())
	require.Error(t, err)

	// the user can retry with the same cart
	view := f.carts.service.GetCart(ctx, userID)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, "19.19", view.Total)
}

func TestSubmitOrderRejectsConcurrentSubmission(t *testing.T) {
	f := newOrderFixture()
	userID := uuid.New().String()
	f.fillCart(t, userID)
	ctx := context.Background()

	session := f.carts.service.Session(ctx, userID)
	require.NoError(t, session.BeginSubmission())
	defer session.EndSubmission()

	_, err := f.service.SubmitOrder(ctx, userID, validSubmitRequest())
	assert.ErrorIs(t, err, cart.ErrSubmissionInFlight)
	f.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	f := newOrderFixture()
	owner := uuid.New()
	orderID := uuid.New()
	f.orders.On("GetByID", mock.Anything, orderID).
		Return(&models.Order{ID: orderID, UserID: owner}, nil)

	order, err := f.service.GetOrder(context.Background(), orderID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	_, err = f.service.GetOrder(context.Background(), orderID.String(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotOrderOwner)
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		current string
		next    string
		ok      bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusProcessing, models.OrderStatusCompleted, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
		{models.OrderStatusCompleted, models.OrderStatusProcessing, false},
		{models.OrderStatusCancelled, models.OrderStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.current+"_to_"+tc.next, func(t *testing.T) {
			f := newOrderFixture()
			orderID := uuid.New()
			f.orders.On("GetByID", mock.Anything, orderID).
				Return(&models.Order{ID: orderID, UserID: uuid.New(), Status: tc.current}, nil)
			if tc.ok {
				f.orders.On("UpdateStatus", mock.Anything, orderID, tc.next).Return(nil)
			}

			order, err := f.service.UpdateOrderStatus(context.Background(), orderID.String(), tc.next)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.next, order.Status)
			} else {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
