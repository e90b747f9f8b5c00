package repositories

import (
	"context"
	"foodmood-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository interface for PostgreSQL user operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// MoodRepository interface for PostgreSQL mood operations
type MoodRepository interface {
	Create(ctx context.Context, mood *models.Mood) error
	GetAll(ctx context.Context) ([]models.Mood, error)
}

// FoodRepository interface for PostgreSQL food operations
type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) error
	GetAll(ctx context.Context) ([]models.Food, error)
	GetByMoodID(ctx context.Context, moodID uuid.UUID) ([]models.Food, error)
}

// RestaurantRepository interface for PostgreSQL restaurant operations
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Restaurant, error)
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	GetByFoodID(ctx context.Context, foodID uuid.UUID) ([]models.Restaurant, error)
	LinkFood(ctx context.Context, link *models.RestaurantFood) error
}

// OrderRepository interface for PostgreSQL order operations. CreateWithItems
// persists the order and all of its items in one transaction: either the
// whole order lands or nothing does.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, error)
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// MenuItemRepository interface for MongoDB menu catalog operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
}
