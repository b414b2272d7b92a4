package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Name            string `gorm:"not null" json:"name"`
	Description     string `json:"description"`
	Instructions    string `gorm:"not null" json:"instructions"`
	PrepTimeMinutes int    `json:"prep_time_minutes"`
	CookTimeMinutes int    `json:"cook_time_minutes"`
	Servings        int    `gorm:"default:1" json:"servings"`
	Difficulty      string `json:"difficulty"` // "easy" | "medium" | "hard"
	CuisineType     string `json:"cuisine_type"`

	// Nutrition snapshot per serving
	CaloriesPerServing float64 `json:"calories_per_serving"`
	ProteinPerServing  float64 `json:"protein_per_serving"`
	CarbsPerServing    float64 `json:"carbs_per_serving"`
	FatPerServing      float64 `json:"fat_per_serving"`

	IsAIGenerated bool    `gorm:"default:false" json:"is_ai_generated"`
	Rating        float64 `gorm:"default:0" json:"rating"`

	Ingredients []RecipeIngredient `json:"ingredients"`
}

type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint       `gorm:"index;not null" json:"recipe_id"`
	IngredientID uint       `gorm:"index;not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Unit         string     `gorm:"not null" json:"unit"`
	Notes        string     `json:"notes"` // e.g. "chopped", "diced"
}
