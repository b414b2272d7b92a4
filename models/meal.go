package models

import (
	"time"

	"gorm.io/gorm"
)

type Meal struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Recipe   Recipe `json:"recipe"`

	MealType     string     `json:"meal_type"` // "breakfast" | "lunch" | "dinner" | "snack"
	PlannedDate  *time.Time `json:"planned_date"`
	ConsumedDate *time.Time `json:"consumed_date"`
	Servings     float64    `gorm:"default:1" json:"servings"`

	// Cached nutrition totals for this meal
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`

	IsConsumed bool    `gorm:"default:false" json:"is_consumed"`
	Rating     float64 `json:"rating"` // user rating 1-5
}

// NutritionGoal holds a user's daily targets. At most one goal per user
// is active at a time; creating a new one deactivates the rest.
type NutritionGoal struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`

	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyFiber    float64 `json:"daily_fiber"`

	GoalType      string  `json:"goal_type"` // "weight_loss" | "muscle_gain" | "maintenance" | "health"
	TargetWeight  float64 `json:"target_weight"`
	CurrentWeight float64 `json:"current_weight"`
	ActivityLevel string  `json:"activity_level"` // "sedentary" | "light" | "moderate" | "active" | "very_active"

	IsActive bool `gorm:"default:true" json:"is_active"`
}
