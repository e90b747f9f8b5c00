package services

import (
	"context"

	"foodmood-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if orders := args.Get(0); orders != nil {
		return orders.([]models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, userID)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockMenuItemRepository struct {
	mock.Mock
}

func (m *mockMenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if item := args.Get(0); item != nil {
		return item.(*models.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMenuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	args := m.Called(ctx, restaurantID)
	if items := args.Get(0); items != nil {
		return items.([]models.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRestaurantRepository struct {
	mock.Mock
}

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *mockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if restaurant := args.Get(0); restaurant != nil {
		return restaurant.(*models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	if restaurants := args.Get(0); restaurants != nil {
		return restaurants.([]models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) GetByFoodID(ctx context.Context, foodID uuid.UUID) ([]models.Restaurant, error) {
	args := m.Called(ctx, foodID)
	if restaurants := args.Get(0); restaurants != nil {
		return restaurants.([]models.Restaurant), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRestaurantRepository) LinkFood(ctx context.Context, link *models.RestaurantFood) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}
