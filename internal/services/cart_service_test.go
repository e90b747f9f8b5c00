package services

import (
	"context"
	"testing"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testCartPricing() cart.Pricing {
	return cart.Pricing{
		TaxRate:     decimal.RequireFromString("0.08"),
		DeliveryFee: decimal.RequireFromString("2.99"),
	}
}

type cartFixture struct {
	service  *CartService
	menus    *mockMenuItemRepository
	eateries *mockRestaurantRepository
}

func newCartFixture() *cartFixture {
	menus := new(mockMenuItemRepository)
	eateries := new(mockRestaurantRepository)
	store := cart.NewStore(testCartPricing())
	return &cartFixture{
		service:  NewCartService(store, menus, eateries, nil),
		menus:    menus,
		eateries: eateries,
	}
}

func (f *cartFixture) stubMenuItem(price string, restaurantID uuid.UUID) *models.MenuItem {
	item := &models.MenuItem{
		ID:           primitive.NewObjectID(),
		RestaurantID: restaurantID.String(),
		Name:         "Margherita",
		Description:  "wood-fired",
		Price:        price,
		IsAvailable:  true,
	}
	f.menus.On("GetByID", mock.Anything, item.ID).Return(item, nil)
	return item
}

func (f *cartFixture) stubRestaurant() *models.Restaurant {
	restaurant := &models.Restaurant{ID: uuid.New(), Name: "Testaurant"}
	f.eateries.On("GetByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	return restaurant
}

func TestAddItemTwiceMergesQuantities(t *testing.T) {
	f := newCartFixture()
	restaurant := f.stubRestaurant()
	item := f.stubMenuItem("12.99", restaurant.ID)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, "user-1", item.ID.Hex(), false)
	require.NoError(t, err)
	view, err := f.service.AddItem(ctx, "user-1", item.ID.Hex(), false)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "25.98", view.Subtotal)
	assert.Equal(t, restaurant.ID.String(), view.RestaurantID)
	assert.Equal(t, "Testaurant", view.RestaurantName)
}

func TestAddItemFromSecondRestaurantConflicts(t *testing.T) {
	f := newCartFixture()
	first := f.stubRestaurant()
	second := f.stubRestaurant()
	firstItem := f.stubMenuItem("10.00", first.ID)
	secondItem := f.stubMenuItem("5.00", second.ID)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, "user-1", firstItem.ID.Hex(), false)
	require.NoError(t, err)

	_, err = f.service.AddItem(ctx, "user-1", secondItem.ID.Hex(), false)
	assert.ErrorIs(t, err, cart.ErrDifferentRestaurant)

	// the existing cart survives the refused add
	view := f.service.GetCart(ctx, "user-1")
	require.Len(t, view.Lines, 1)
	assert.Equal(t, firstItem.ID.Hex(), view.Lines[0].MenuItemID)

	// an explicit replace swaps the cart over
	view, err = f.service.AddItem(ctx, "user-1", secondItem.ID.Hex(), true)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, secondItem.ID.Hex(), view.Lines[0].MenuItemID)
	assert.Equal(t, second.ID.String(), view.RestaurantID)
}

func TestAddItemRejectsUnparseablePrice(t *testing.T) {
	f := newCartFixture()
	restaurant := f.stubRestaurant()
	item := f.stubMenuItem("not-a-price", restaurant.ID)

	_, err := f.service.AddItem(context.Background(), "user-1", item.ID.Hex(), false)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	view := f.service.GetCart(context.Background(), "user-1")
	assert.Empty(t, view.Lines)
}

func TestCartPricingView(t *testing.T) {
	f := newCartFixture()
	restaurant := f.stubRestaurant()
	burger := f.stubMenuItem("10.00", restaurant.ID)
	fries := f.stubMenuItem("5.00", restaurant.ID)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, "user-1", burger.ID.Hex(), false)
	require.NoError(t, err)
	view, err := f.service.AddItem(ctx, "user-1", fries.ID.Hex(), false)
	require.NoError(t, err)

	assert.Equal(t, "15.00", view.Subtotal)
	assert.Equal(t, "2.99", view.DeliveryFee)
	assert.Equal(t, "1.20", view.Tax)
	assert.Equal(t, "19.19", view.Total)
}

func TestDecrementToZeroRemovesLineAndClearClearsCart(t *testing.T) {
	f := newCartFixture()
	restaurant := f.stubRestaurant()
	item := f.stubMenuItem("8.00", restaurant.ID)
	ctx := context.Background()

	view, err := f.service.AddItem(ctx, "user-1", item.ID.Hex(), false)
	require.NoError(t, err)
	lineID := view.Lines[0].ID

	view = f.service.DecrementLine(ctx, "user-1", lineID)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "", view.RestaurantID)
	assert.Equal(t, "0.00", view.Total)

	_, err = f.service.AddItem(ctx, "user-1", item.ID.Hex(), false)
	require.NoError(t, err)
	f.service.Clear(ctx, "user-1")
	assert.Empty(t, f.service.GetCart(ctx, "user-1").Lines)
}

func TestSetInstructionsOnLine(t *testing.T) {
	f := newCartFixture()
	restaurant := f.stubRestaurant()
	item := f.stubMenuItem("8.00", restaurant.ID)
	ctx := context.Background()

	view, err := f.service.AddItem(ctx, "user-1", item.ID.Hex(), false)
	require.NoError(t, err)

	view = f.service.SetInstructions(ctx, "user-1", view.Lines[0].ID, "extra basil")
	assert.Equal(t, "extra basil", view.Lines[0].Instructions)
}
