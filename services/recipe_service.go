// services/recipe_service.go
package services

import (
	"fmt"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type RecipeService struct {
	db       *gorm.DB
	nutrition *NutritionService
}

func NewRecipeService(db *gorm.DB, nutrition *NutritionService) *RecipeService {
	return &RecipeService{db: db, nutrition: nutrition}
}

type RecipeFilter struct {
	Search      string
	CuisineType string
	Difficulty  string
	Skip        int
	Limit       int
}

type RecipeIngredientInput struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	Notes        string  `json:"notes"`
}

func (s *RecipeService) List(filter RecipeFilter) ([]models.Recipe, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 100
	}

	q := s.db.Preload("Ingredients.Ingredient")
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.CuisineType != "" {
		q = q.Where("cuisine_type = ?", filter.CuisineType)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}

	var recipes []models.Recipe
	err := q.Offset(filter.Skip).Limit(filter.Limit).Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Preload("Ingredients.Ingredient").First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create stores a recipe with its ingredient links in one transaction
// and fills the per-serving nutrition snapshot from the rollup. An
// empty difficulty is derived from time and ingredient count.
func (s *RecipeService) Create(recipe *models.Recipe, ingredients []RecipeIngredientInput) (*models.Recipe, error) {
	if recipe.Servings <= 0 {
		recipe.Servings = 1
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = utils.RecipeDifficulty(
			recipe.PrepTimeMinutes, recipe.CookTimeMinutes, len(ingredients))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for _, ing := range ingredients {
			link := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ing.IngredientID,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				Notes:        ing.Notes,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}

	populated, err := s.Get(recipe.ID)
	if err != nil {
		return nil, err
	}

	totals := s.nutrition.RecipeNutrition(populated, float64(populated.Servings))
	updates := map[string]interface{}{
		"calories_per_serving": totals.Calories,
		"protein_per_serving":  totals.Protein,
		"carbs_per_serving":    totals.Carbs,
		"fat_per_serving":      totals.Fat,
	}
	if err := s.db.Model(populated).Updates(updates).Error; err != nil {
		return nil, err
	}
	return populated, nil
}

func (s *RecipeService) Update(id uint, updates map[string]interface{}) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&recipe).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *RecipeService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// Nutrition returns the per-serving rollup for a stored recipe,
// optionally for a serving count other than the recipe's own.
func (s *RecipeService) Nutrition(id uint, servings float64) (*NutrientTotals, error) {
	recipe, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if servings <= 0 {
		servings = float64(recipe.Servings)
	}
	if servings <= 0 {
		servings = 1
	}
	totals := s.nutrition.RecipeNutrition(recipe, servings)
	return &totals, nil
}
