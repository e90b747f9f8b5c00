package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem model - MongoDB (flexible catalog data). Price is a decimal
// string ("12.99"); consumers parse it with a fixed-point type and must
// treat a parse failure as a data-integrity error, not as zero.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID string             `bson:"restaurant_id" json:"restaurant_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Price        string             `bson:"price" json:"price"`
	ImageURL     string             `bson:"image_url,omitempty" json:"image_url"`
	IsAvailable  bool               `bson:"is_available" json:"is_available"`
	Tags         []string           `bson:"tags,omitempty" json:"tags"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
