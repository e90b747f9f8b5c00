package services

import (
	"context"
	"errors"
	"time"

	"foodmood-backend/internal/models"
	"foodmood-backend/internal/repositories"
	"foodmood-backend/pkg/cache"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const catalogCacheTTL = 10 * time.Minute

// CatalogService serves the read-only browsing flow: moods, the foods
// suggested for a mood, the restaurants serving a food, and restaurant
// menus. Menu data lives in Mongo, the rest in Postgres; list responses are
// cached in Redis.
type CatalogService struct {
	moodRepo       repositories.MoodRepository
	foodRepo       repositories.FoodRepository
	restaurantRepo repositories.RestaurantRepository
	menuItemRepo   repositories.MenuItemRepository
	cache          *cache.RedisCache
}

func NewCatalogService(
	moodRepo repositories.MoodRepository,
	foodRepo repositories.FoodRepository,
	restaurantRepo repositories.RestaurantRepository,
	menuItemRepo repositories.MenuItemRepository,
	cache *cache.RedisCache,
) *CatalogService {
	return &CatalogService{
		moodRepo:       moodRepo,
		foodRepo:       foodRepo,
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		cache:          cache,
	}
}

func (s *CatalogService) ListMoods(ctx context.Context) ([]models.Mood, error) {
	var moods []models.Mood
	if s.cacheGet(ctx, "moods", &moods) {
		return moods, nil
	}

	moods, err := s.moodRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, "moods", moods)
	return moods, nil
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.foodRepo.GetAll(ctx)
}

func (s *CatalogService) FoodsByMood(ctx context.Context, moodID string) ([]models.Food, error) {
	id, err := uuid.Parse(moodID)
	if err != nil {
		return nil, errors.New("invalid mood ID")
	}
	return s.foodRepo.GetByMoodID(ctx, id)
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if s.cacheGet(ctx, "restaurants", &restaurants) {
		return restaurants, nil
	}

	restaurants, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, "restaurants", restaurants)
	return restaurants, nil
}

func (s *CatalogService) RestaurantsByFood(ctx context.Context, foodID string) ([]models.Restaurant, error) {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return nil, errors.New("invalid food ID")
	}
	return s.restaurantRepo.GetByFoodID(ctx, id)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, errors.New("invalid restaurant ID")
	}
	return s.restaurantRepo.GetByID(ctx, id)
}

func (s *CatalogService) MenuByRestaurant(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if _, err := uuid.Parse(restaurantID); err != nil {
		return nil, errors.New("invalid restaurant ID")
	}

	cacheKey := "menu:" + restaurantID
	var items []models.MenuItem
	if s.cacheGet(ctx, cacheKey, &items) {
		return items, nil
	}

	items, err := s.menuItemRepo.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cacheKey, items)
	return items, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, menuItemID string) (*models.MenuItem, error) {
	id, err := primitive.ObjectIDFromHex(menuItemID)
	if err != nil {
		return nil, errors.New("invalid menu item ID")
	}
	return s.menuItemRepo.GetByID(ctx, id)
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, key, dest) == nil
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, value, catalogCacheTTL)
}
