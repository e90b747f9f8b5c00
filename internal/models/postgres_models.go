package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringArray type for PostgreSQL arrays stored as jsonb
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// User model - PostgreSQL
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Mood model - PostgreSQL. The entry point of the browsing flow: users pick
// a mood and get food suggestions for it.
type Mood struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string    `gorm:"uniqueIndex;not null" json:"name"`
	Icon  string    `gorm:"not null" json:"icon"`
	Color string    `gorm:"not null" json:"color"`
}

// Food model - PostgreSQL (a dish type suggested for a mood)
type Food struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `json:"image_url"`
	MoodID      uuid.UUID `gorm:"type:uuid;not null" json:"mood_id"`
	Mood        Mood      `gorm:"foreignKey:MoodID" json:"mood,omitempty"`
}

// Restaurant model - PostgreSQL
type Restaurant struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image_url"`
	Rating       int         `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	DeliveryTime string      `json:"delivery_time"`
	Cuisines     StringArray `gorm:"type:jsonb" json:"cuisines"`
	CreatedAt    time.Time   `json:"created_at"`
}

// RestaurantFood model - PostgreSQL junction: which restaurants serve
// which suggested food
type RestaurantFood struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	FoodID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"food_id"`
	Food         Food       `gorm:"foreignKey:FoodID" json:"food,omitempty"`
}

// Order statuses. Submission always creates orders in pending; the remaining
// transitions belong to operational tooling.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// Order model - PostgreSQL (critical transactional data). Total and item
// prices are numeric columns, never floats.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null" json:"restaurant_id"`
	Restaurant      Restaurant      `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	Status          string          `gorm:"default:pending" json:"status"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	DeliveryAddress string          `gorm:"not null" json:"delivery_address"`
	PaymentMethod   string          `gorm:"not null" json:"payment_method"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem model - PostgreSQL. Price is the snapshot taken at submission
// time; later catalog price changes never alter it.
type OrderItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID string          `gorm:"not null" json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}
