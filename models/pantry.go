package models

import (
	"time"

	"gorm.io/gorm"
)

// PantryItem is one ingredient a user has on hand.
type PantryItem struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	IngredientID uint       `gorm:"index;not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient"`

	Quantity       float64    `gorm:"not null" json:"quantity"`
	Unit           string     `gorm:"not null" json:"unit"`
	ExpirationDate *time.Time `json:"expiration_date"`
	PurchaseDate   time.Time  `json:"purchase_date"`
}
