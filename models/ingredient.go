package models

import (
	"gorm.io/gorm"
)

// Ingredient is a catalog entry. Nutrition facts are per 100 g.
type Ingredient struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Category    string `json:"category"` // e.g. "vegetables", "proteins", "grains"
	Description string `json:"description"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`

	// Micronutrients
	VitaminC float64 `json:"vitamin_c"`
	Calcium  float64 `json:"calcium"`
	Iron     float64 `json:"iron"`

	Unit          string `gorm:"default:g" json:"unit"` // default measurement unit
	ShelfLifeDays int    `json:"shelf_life_days"`
}
