package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductDB represents a product row in the database
type ProductDB struct {
	ProductID   uuid.UUID `json:"product_id" db:"product_id"`   // Primary key
	Name        string    `json:"name" db:"name"`               // Product name
	Description string    `json:"description" db:"description"` // Product description
	Price       float64   `json:"price" db:"price"`             // Rental price, positive
	Image       *string   `json:"image" db:"image"`             // Stored image filename, nil when none uploaded
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
