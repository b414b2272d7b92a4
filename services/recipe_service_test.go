package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecipeService(t *testing.T) (*RecipeService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewRecipeService(db, NewNutritionService(db)), db
}

func TestRecipeCreateStoresLinksAndSnapshot(t *testing.T) {
	svc, db := newRecipeService(t)
	chicken := chickenBreast(t, db)

	recipe, err := svc.Create(&models.Recipe{
		Name:            "Grilled Chicken",
		Instructions:    "Grill until done",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 15,
		Servings:        2,
	}, []RecipeIngredientInput{
		{IngredientID: chicken.ID, Quantity: 200, Unit: "g"},
	})
	require.NoError(t, err)

	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "Chicken Breast", recipe.Ingredients[0].Ingredient.Name)

	var stored models.Recipe
	require.NoError(t, db.First(&stored, recipe.ID).Error)
	assert.Equal(t, 165.0, stored.CaloriesPerServing)
	assert.Equal(t, 31.0, stored.ProteinPerServing)
}

func TestRecipeCreateDerivesDifficulty(t *testing.T) {
	svc, db := newRecipeService(t)
	chicken := chickenBreast(t, db)

	quick, err := svc.Create(&models.Recipe{
		Name:            "Quick Bite",
		Instructions:    "Assemble",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 10,
	}, []RecipeIngredientInput{
		{IngredientID: chicken.ID, Quantity: 100, Unit: "g"},
	})
	require.NoError(t, err)
	assert.Equal(t, "easy", quick.Difficulty)
	assert.Equal(t, 1, quick.Servings)

	explicit, err := svc.Create(&models.Recipe{
		Name:         "Marked Hard",
		Instructions: "Complicated",
		Difficulty:   "hard",
		Servings:     2,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hard", explicit.Difficulty)
}

func TestRecipeDeleteRemovesLinks(t *testing.T) {
	svc, db := newRecipeService(t)
	chicken := chickenBreast(t, db)

	recipe, err := svc.Create(&models.Recipe{
		Name:         "Grilled Chicken",
		Instructions: "Grill",
		Servings:     1,
	}, []RecipeIngredientInput{
		{IngredientID: chicken.ID, Quantity: 200, Unit: "g"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(recipe.ID))

	_, err = svc.Get(recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var links int64
	require.NoError(t, db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", recipe.ID).Count(&links).Error)
	assert.Zero(t, links)
}

func TestRecipeNutritionEndpointDefaultsToRecipeServings(t *testing.T) {
	svc, db := newRecipeService(t)
	chicken := chickenBreast(t, db)

	recipe, err := svc.Create(&models.Recipe{
		Name:         "Grilled Chicken",
		Instructions: "Grill",
		Servings:     2,
	}, []RecipeIngredientInput{
		{IngredientID: chicken.ID, Quantity: 200, Unit: "g"},
	})
	require.NoError(t, err)

	totals, err := svc.Nutrition(recipe.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 165.0, totals.Calories)

	totals, err = svc.Nutrition(recipe.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 82.5, totals.Calories)
}

func TestRecipeListFilters(t *testing.T) {
	svc, _ := newRecipeService(t)

	_, err := svc.Create(&models.Recipe{Name: "Pad Thai", Instructions: "Stir fry", CuisineType: "thai", Difficulty: "medium"}, nil)
	require.NoError(t, err)
	_, err = svc.Create(&models.Recipe{Name: "Carbonara", Instructions: "Toss", CuisineType: "italian", Difficulty: "easy"}, nil)
	require.NoError(t, err)

	recipes, err := svc.List(RecipeFilter{Search: "pad"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pad Thai", recipes[0].Name)

	recipes, err = svc.List(RecipeFilter{CuisineType: "italian"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Carbonara", recipes[0].Name)
}
