// services/meal_service.go
package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewMealService(db *gorm.DB, nutrition *NutritionService) *MealService {
	return &MealService{db: db, nutrition: nutrition}
}

type MealInput struct {
	RecipeID    uint       `json:"recipe_id"`
	MealType    string     `json:"meal_type"`
	PlannedDate *time.Time `json:"planned_date"`
	Servings    float64    `json:"servings"`
}

type MealFilter struct {
	MealType    string
	PlannedDate *time.Time
	Skip        int
	Limit       int
}

func (s *MealService) List(userID uint, filter MealFilter) ([]models.Meal, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 100
	}

	q := s.db.
		Preload("Recipe.Ingredients.Ingredient").
		Where("user_id = ?", userID)
	if filter.MealType != "" {
		q = q.Where("meal_type = ?", filter.MealType)
	}
	if filter.PlannedDate != nil {
		start := time.Date(filter.PlannedDate.Year(), filter.PlannedDate.Month(), filter.PlannedDate.Day(),
			0, 0, 0, 0, filter.PlannedDate.Location())
		q = q.Where("planned_date >= ? AND planned_date < ?", start, start.Add(24*time.Hour))
	}

	var meals []models.Meal
	err := q.Offset(filter.Skip).Limit(filter.Limit).Order("planned_date DESC").Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Recipe.Ingredients.Ingredient").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

// Create plans a meal and caches its nutrient totals from the recipe
// rollup.
func (s *MealService) Create(userID uint, input MealInput) (*models.Meal, error) {
	if input.Servings <= 0 {
		input.Servings = 1
	}

	var recipe models.Recipe
	err := s.db.Preload("Ingredients.Ingredient").First(&recipe, input.RecipeID).Error
	if err != nil {
		return nil, err
	}

	meal := models.Meal{
		UserID:      userID,
		RecipeID:    input.RecipeID,
		MealType:    input.MealType,
		PlannedDate: input.PlannedDate,
		Servings:    input.Servings,
	}
	s.cacheTotals(&meal, &recipe)

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	meal.Recipe = recipe
	return &meal, nil
}

func (s *MealService) Update(userID, mealID uint, updates map[string]interface{}) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(meal).Updates(updates).Error; err != nil {
		return nil, err
	}

	// servings or recipe changes invalidate the cached totals
	meal, err = s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}
	s.cacheTotals(meal, &meal.Recipe)
	if err := s.db.Model(meal).Updates(map[string]interface{}{
		"total_calories": meal.TotalCalories,
		"total_protein":  meal.TotalProtein,
		"total_carbs":    meal.TotalCarbs,
		"total_fat":      meal.TotalFat,
	}).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(userID, mealID uint) error {
	result := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Consume marks a meal eaten now. Consumed meals are what the daily
// rollup counts.
func (s *MealService) Consume(userID, mealID uint, rating float64) (*models.Meal, error) {
	meal, err := s.Get(userID, mealID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_consumed":   true,
		"consumed_date": now,
	}
	if rating > 0 {
		updates["rating"] = rating
	}
	if err := s.db.Model(meal).Updates(updates).Error; err != nil {
		return nil, err
	}
	meal.IsConsumed = true
	meal.ConsumedDate = &now
	if rating > 0 {
		meal.Rating = rating
	}
	return meal, nil
}

func (s *MealService) cacheTotals(meal *models.Meal, recipe *models.Recipe) {
	totals := s.nutrition.RecipeNutrition(recipe, meal.Servings)
	meal.TotalCalories = totals.Calories
	meal.TotalProtein = totals.Protein
	meal.TotalCarbs = totals.Carbs
	meal.TotalFat = totals.Fat
}
