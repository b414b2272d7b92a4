package services

import (
	"fmt"
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", t.Name()),
		Username: t.Name(),
		Password: "hashed",
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createIngredient(t *testing.T, db *gorm.DB, ing models.Ingredient) *models.Ingredient {
	t.Helper()
	require.NoError(t, db.Create(&ing).Error)
	return &ing
}

// createRecipe stores a recipe with one link per (ingredient, quantity,
// unit) triple.
func createRecipe(t *testing.T, db *gorm.DB, name string, servings int, links ...models.RecipeIngredient) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Name:         name,
		Instructions: "test instructions",
		Servings:     servings,
	}
	require.NoError(t, db.Create(recipe).Error)
	for i := range links {
		links[i].RecipeID = recipe.ID
		require.NoError(t, db.Create(&links[i]).Error)
	}

	var populated models.Recipe
	require.NoError(t, db.Preload("Ingredients.Ingredient").First(&populated, recipe.ID).Error)
	return &populated
}

func createMeal(t *testing.T, db *gorm.DB, userID, recipeID uint, planned time.Time, servings float64, consumed bool) *models.Meal {
	t.Helper()
	meal := &models.Meal{
		UserID:      userID,
		RecipeID:    recipeID,
		MealType:    "dinner",
		PlannedDate: &planned,
		Servings:    servings,
		IsConsumed:  consumed,
	}
	require.NoError(t, db.Create(meal).Error)
	return meal
}
