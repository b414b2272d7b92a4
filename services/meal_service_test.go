package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMealService(t *testing.T) (*MealService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewMealService(db, NewNutritionService(db)), db
}

func TestMealCreateCachesTotals(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})

	planned := time.Now()
	meal, err := svc.Create(user.ID, MealInput{
		RecipeID:    recipe.ID,
		MealType:    "dinner",
		PlannedDate: &planned,
		Servings:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 165.0, meal.TotalCalories)
	assert.Equal(t, 31.0, meal.TotalProtein)
	assert.False(t, meal.IsConsumed)

	var stored models.Meal
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.Equal(t, 165.0, stored.TotalCalories)
}

func TestMealCreateDefaultsServings(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)
	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     100,
		Unit:         "g",
	})

	meal, err := svc.Create(user.ID, MealInput{RecipeID: recipe.ID, MealType: "lunch"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, meal.Servings)
}

func TestMealCreateUnknownRecipe(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)

	_, err := svc.Create(user.ID, MealInput{RecipeID: 9999, MealType: "dinner"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMealUpdateRecomputesCachedTotals(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)
	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})

	meal, err := svc.Create(user.ID, MealInput{RecipeID: recipe.ID, MealType: "dinner", Servings: 1})
	require.NoError(t, err)
	assert.Equal(t, 330.0, meal.TotalCalories)

	updated, err := svc.Update(user.ID, meal.ID, map[string]interface{}{"servings": 2.0})
	require.NoError(t, err)
	assert.Equal(t, 165.0, updated.TotalCalories)
}

func TestMealConsume(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)
	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     100,
		Unit:         "g",
	})

	meal, err := svc.Create(user.ID, MealInput{RecipeID: recipe.ID, MealType: "dinner", Servings: 1})
	require.NoError(t, err)

	consumed, err := svc.Consume(user.ID, meal.ID, 4.5)
	require.NoError(t, err)
	assert.True(t, consumed.IsConsumed)
	require.NotNil(t, consumed.ConsumedDate)
	assert.Equal(t, 4.5, consumed.Rating)

	var stored models.Meal
	require.NoError(t, db.First(&stored, meal.ID).Error)
	assert.True(t, stored.IsConsumed)
}

func TestMealAccessScopedToOwner(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)
	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     100,
		Unit:         "g",
	})
	meal, err := svc.Create(user.ID, MealInput{RecipeID: recipe.ID, MealType: "dinner"})
	require.NoError(t, err)

	_, err = svc.Get(user.ID+1, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(user.ID+1, meal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the meal is still there for its owner
	_, err = svc.Get(user.ID, meal.ID)
	assert.NoError(t, err)
}

func TestMealListFilters(t *testing.T) {
	svc, db := newMealService(t)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)
	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     100,
		Unit:         "g",
	})

	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	createMeal(t, db, user.ID, recipe.ID, day1, 1, false)
	createMeal(t, db, user.ID, recipe.ID, day2, 1, false)

	breakfast := models.Meal{UserID: user.ID, RecipeID: recipe.ID, MealType: "breakfast", PlannedDate: &day1, Servings: 1}
	require.NoError(t, db.Create(&breakfast).Error)

	meals, err := svc.List(user.ID, MealFilter{PlannedDate: &day1})
	require.NoError(t, err)
	assert.Len(t, meals, 2)

	meals, err = svc.List(user.ID, MealFilter{MealType: "breakfast"})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, breakfast.ID, meals[0].ID)
}
