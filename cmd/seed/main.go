package main

import (
	"context"
	"log"
	"time"

	"foodmood-backend/configs"
	"foodmood-backend/internal/models"
	"foodmood-backend/internal/repositories"
	"foodmood-backend/pkg/database"
)

// Seeds the catalog: moods, the foods suggested for each mood, restaurants,
// the restaurant-food links, and each restaurant's menu in Mongo. Safe to run
// against an empty database only; it does not upsert.
func main() {
	config := configs.LoadConfig()

	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to databases:", err)
	}
	defer db.Close()

	if err := db.Postgres.AutoMigrate(
		&models.User{},
		&models.Mood{},
		&models.Food{},
		&models.Restaurant{},
		&models.RestaurantFood{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	moodRepo := repositories.NewMoodRepository(db.Postgres)
	foodRepo := repositories.NewFoodRepository(db.Postgres)
	restaurantRepo := repositories.NewRestaurantRepository(db.Postgres)
	menuItemRepo := repositories.NewMenuItemRepository(db.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	moods := []*models.Mood{
		{Name: "Happy", Icon: "smile", Color: "#FFD93D"},
		{Name: "Sad", Icon: "frown", Color: "#6C91BF"},
		{Name: "Stressed", Icon: "zap", Color: "#FF6B6B"},
		{Name: "Relaxed", Icon: "coffee", Color: "#6BCB77"},
		{Name: "Energetic", Icon: "activity", Color: "#FF9F45"},
	}
	for _, mood := range moods {
		if err := moodRepo.Create(ctx, mood); err != nil {
			log.Fatalf("Failed to seed mood %s: %v", mood.Name, err)
		}
	}
	log.Printf("Seeded %d moods", len(moods))

	foodsByMood := map[string][]*models.Food{
		"Happy": {
			{Name: "Pizza", Description: "Cheesy comfort to keep the good mood going"},
			{Name: "Ice Cream", Description: "Celebration in a cone"},
		},
		"Sad": {
			{Name: "Ramen", Description: "A warm bowl that hugs back"},
			{Name: "Mac and Cheese", Description: "Classic comfort food"},
		},
		"Stressed": {
			{Name: "Sushi", Description: "Clean, calm, methodical bites"},
			{Name: "Dark Chocolate Cake", Description: "Takes the edge off"},
		},
		"Relaxed": {
			{Name: "Mezze Platter", Description: "Something to graze on slowly"},
			{Name: "Buddha Bowl", Description: "Unhurried and balanced"},
		},
		"Energetic": {
			{Name: "Burrito", Description: "Fuel for whatever comes next"},
			{Name: "Smoothie Bowl", Description: "Bright, fresh, fast"},
		},
	}

	var foods []*models.Food
	for _, mood := range moods {
		for _, food := range foodsByMood[mood.Name] {
			food.MoodID = mood.ID
			if err := foodRepo.Create(ctx, food); err != nil {
				log.Fatalf("Failed to seed food %s: %v", food.Name, err)
			}
			foods = append(foods, food)
		}
	}
	log.Printf("Seeded %d foods", len(foods))

	restaurants := []*models.Restaurant{
		{
			Name:         "Luna Rossa",
			Description:  "Wood-fired pizza and house-made gelato",
			Rating:       5,
			ReviewCount:  284,
			DeliveryTime: "25-35 min",
			Cuisines:     models.StringArray{"Italian", "Dessert"},
		},
		{
			Name:         "Kintaro",
			Description:  "Ramen and sushi, done properly",
			Rating:       4,
			ReviewCount:  517,
			DeliveryTime: "30-40 min",
			Cuisines:     models.StringArray{"Japanese"},
		},
		{
			Name:         "Verde",
			Description:  "Bowls, platters and fresh juice",
			Rating:       4,
			ReviewCount:  132,
			DeliveryTime: "20-30 min",
			Cuisines:     models.StringArray{"Mediterranean", "Healthy"},
		},
		{
			Name:         "El Fuego",
			Description:  "Burritos, tacos and comfort plates",
			Rating:       4,
			ReviewCount:  391,
			DeliveryTime: "25-35 min",
			Cuisines:     models.StringArray{"Mexican", "American"},
		},
	}
	for _, restaurant := range restaurants {
		if err := restaurantRepo.Create(ctx, restaurant); err != nil {
			log.Fatalf("Failed to seed restaurant %s: %v", restaurant.Name, err)
		}
	}
	log.Printf("Seeded %d restaurants", len(restaurants))

	// which restaurants serve which suggested food
	servedBy := map[string][]string{
		"Pizza":               {"Luna Rossa"},
		"Ice Cream":           {"Luna Rossa"},
		"Ramen":               {"Kintaro"},
		"Sushi":               {"Kintaro"},
		"Mac and Cheese":      {"El Fuego"},
		"Dark Chocolate Cake": {"Luna Rossa", "Verde"},
		"Mezze Platter":       {"Verde"},
		"Buddha Bowl":         {"Verde"},
		"Burrito":             {"El Fuego"},
		"Smoothie Bowl":       {"Verde"},
	}

	restaurantByName := make(map[string]*models.Restaurant)
	for _, restaurant := range restaurants {
		restaurantByName[restaurant.Name] = restaurant
	}

	links := 0
	for _, food := range foods {
		for _, name := range servedBy[food.Name] {
			restaurant := restaurantByName[name]
			link := &models.RestaurantFood{
				RestaurantID: restaurant.ID,
				FoodID:       food.ID,
			}
			if err := restaurantRepo.LinkFood(ctx, link); err != nil {
				log.Fatalf("Failed to link %s to %s: %v", food.Name, name, err)
			}
			links++
		}
	}
	log.Printf("Seeded %d restaurant-food links", links)

	menus := map[string][]models.MenuItem{
		"Luna Rossa": {
			{Name: "Margherita", Description: "Tomato, fior di latte, basil", Price: "12.99", Tags: []string{"vegetarian"}},
			{Name: "Diavola", Description: "Spicy salami, chili honey", Price: "15.50"},
			{Name: "Pistachio Gelato", Description: "Two scoops", Price: "5.25", Tags: []string{"dessert"}},
			{Name: "Chocolate Torta", Description: "Flourless, very dark", Price: "7.00", Tags: []string{"dessert"}},
		},
		"Kintaro": {
			{Name: "Tonkotsu Ramen", Description: "18-hour pork broth", Price: "14.75"},
			{Name: "Shoyu Ramen", Description: "Clear chicken and dashi broth", Price: "13.50"},
			{Name: "Salmon Nigiri Set", Description: "Eight pieces", Price: "16.00"},
			{Name: "Veggie Roll", Description: "Avocado, cucumber, pickled radish", Price: "9.25", Tags: []string{"vegetarian"}},
		},
		"Verde": {
			{Name: "Mezze Platter", Description: "Hummus, baba ganoush, falafel, pita", Price: "13.00", Tags: []string{"vegetarian"}},
			{Name: "Buddha Bowl", Description: "Quinoa, roast vegetables, tahini", Price: "11.50", Tags: []string{"vegan"}},
			{Name: "Berry Smoothie Bowl", Description: "With granola and coconut", Price: "9.75", Tags: []string{"vegan"}},
			{Name: "Chocolate Avocado Cake", Description: "You can't tell", Price: "6.50", Tags: []string{"dessert", "vegan"}},
		},
		"El Fuego": {
			{Name: "Carnitas Burrito", Description: "Slow-braised pork, rice, beans", Price: "11.25"},
			{Name: "Veggie Burrito", Description: "Grilled peppers, black beans", Price: "9.95", Tags: []string{"vegetarian"}},
			{Name: "Three-Cheese Mac", Description: "Baked with a crispy top", Price: "8.50", Tags: []string{"vegetarian"}},
		},
	}

	items := 0
	for name, menu := range menus {
		restaurant := restaurantByName[name]
		for i := range menu {
			item := menu[i]
			item.RestaurantID = restaurant.ID.String()
			item.IsAvailable = true
			item.CreatedAt = time.Now()
			item.UpdatedAt = time.Now()
			if err := menuItemRepo.Create(ctx, &item); err != nil {
				log.Fatalf("Failed to seed menu item %s: %v", item.Name, err)
			}
			items++
		}
	}
	log.Printf("Seeded %d menu items", items)

	log.Println("Seed complete")
}
