package repositories

import (
	"context"
	"foodmood-backend/internal/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuItem Repository
type menuItemRepository struct {
	collection *mongo.Collection
}

func NewMenuItemRepository(db *mongo.Database) MenuItemRepository {
	return &menuItemRepository{
		collection: db.Collection("menu_items"),
	}
}

func (r *menuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var items []models.MenuItem

	filter := bson.M{"restaurant_id": restaurantID, "is_available": true}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}
