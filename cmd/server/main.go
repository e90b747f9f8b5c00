package main

import (
	"log"

	"foodmood-backend/configs"
	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/handlers"
	"foodmood-backend/internal/middleware"
	"foodmood-backend/internal/models"
	"foodmood-backend/internal/repositories"
	"foodmood-backend/internal/services"
	"foodmood-backend/pkg/auth"
	"foodmood-backend/pkg/cache"
	"foodmood-backend/pkg/database"
	"foodmood-backend/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connections
	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to databases:", err)
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager (access: config hours, refresh: 30 days)
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.Postgres)
	moodRepo := repositories.NewMoodRepository(db.Postgres)
	foodRepo := repositories.NewFoodRepository(db.Postgres)
	restaurantRepo := repositories.NewRestaurantRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)

	// MongoDB repositories
	menuItemRepo := repositories.NewMenuItemRepository(db.MongoDB)

	// Initialize the cart store with the pricing policy
	cartStore := cart.NewStore(cart.Pricing{
		TaxRate:     config.Pricing.TaxRate,
		DeliveryFee: config.Pricing.DeliveryFee,
	})

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtManager)
	catalogService := services.NewCatalogService(moodRepo, foodRepo, restaurantRepo, menuItemRepo, redisCache)
	cartService := services.NewCartService(cartStore, menuItemRepo, restaurantRepo, redisCache)
	orderService := services.NewOrderService(orderRepo, cartService, kafkaProducer)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "foodmood-backend",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	authHandler.RegisterRoutes(api, authMiddleware)
	catalogHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)

	log.Printf("Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.User{},
		&models.Mood{},
		&models.Food{},
		&models.Restaurant{},
		&models.RestaurantFood{},
		&models.Order{},
		&models.OrderItem{},
	)
}
