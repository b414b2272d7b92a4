package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func chickenBreast(t *testing.T, db *gorm.DB) *models.Ingredient {
	t.Helper()
	return createIngredient(t, db, models.Ingredient{
		Name:     "Chicken Breast",
		Category: "proteins",
		Calories: 165,
		Protein:  31,
		Fat:      3.6,
	})
}

func TestRecipeNutritionScalesPer100Grams(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})

	totals := svc.RecipeNutrition(recipe, 1)
	assert.Equal(t, 330.0, totals.Calories)
	assert.Equal(t, 62.0, totals.Protein)
	assert.Equal(t, 7.2, totals.Fat)
	assert.Equal(t, 0.0, totals.Carbs)
}

func TestRecipeNutritionDividesByServings(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Grilled Chicken", 2, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})

	twoServings := svc.RecipeNutrition(recipe, 2)
	fourServings := svc.RecipeNutrition(recipe, 4)

	assert.Equal(t, 165.0, twoServings.Calories)
	assert.Equal(t, 31.0, twoServings.Protein)

	// doubling the serving count halves the per-serving totals
	assert.Equal(t, twoServings.Calories/2, fourServings.Calories)
	assert.Equal(t, twoServings.Protein/2, fourServings.Protein)
}

func TestRecipeNutritionConvertsUnits(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)

	milk := createIngredient(t, db, models.Ingredient{
		Name:     "Whole Milk",
		Category: "dairy",
		Calories: 60,
		Protein:  3.2,
	})
	recipe := createRecipe(t, db, "Glass of Milk", 1, models.RecipeIngredient{
		IngredientID: milk.ID,
		Quantity:     1,
		Unit:         "cup",
	})

	// 1 cup = 240 g, so 2.4x the per-100g profile
	totals := svc.RecipeNutrition(recipe, 1)
	assert.Equal(t, 144.0, totals.Calories)
	assert.Equal(t, 7.68, totals.Protein)
}

func TestRecipeNutritionTreatsUnknownUnitsAsGrams(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Chicken Slices", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     50,
		Unit:         "slice",
	})

	totals := svc.RecipeNutrition(recipe, 1)
	assert.Equal(t, 82.5, totals.Calories)
}

func TestMealNutritionUsesServingsMultiplier(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})
	meal := createMeal(t, db, user.ID, recipe.ID, time.Now(), 2, false)
	meal.Recipe = *recipe

	totals := svc.MealNutrition(meal)
	assert.Equal(t, 165.0, totals.Calories)
}

func TestDailyNutritionCountsOnlyConsumedMealsOnDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)
	chicken := chickenBreast(t, db)

	recipe := createRecipe(t, db, "Grilled Chicken", 1, models.RecipeIngredient{
		IngredientID: chicken.ID,
		Quantity:     200,
		Unit:         "g",
	})

	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	createMeal(t, db, user.ID, recipe.ID, today, 1, true)
	createMeal(t, db, user.ID, recipe.ID, today, 1, false)                    // planned, not eaten
	createMeal(t, db, user.ID, recipe.ID, today.AddDate(0, 0, -1), 1, true)  // yesterday
	createMeal(t, db, user.ID, recipe.ID, today.AddDate(0, 0, 1), 1, true)   // tomorrow

	other := &models.User{Email: "other@example.com", Username: "other", Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(other).Error)
	createMeal(t, db, other.ID, recipe.ID, today, 1, true)

	daily, err := svc.DailyNutrition(user.ID, today)
	require.NoError(t, err)
	assert.Equal(t, 330.0, daily.Calories)
	assert.Equal(t, 62.0, daily.Protein)
}

func TestAnalyzeGoalsWithoutActiveGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)

	_, err := svc.AnalyzeGoals(user.ID, time.Now())
	assert.ErrorIs(t, err, ErrNoActiveGoal)
}

// seedGoalDay stores an active goal and one consumed meal whose intake
// works out to 700 kcal, 100 g protein, 130 g carbs, 20 g fat, 40 g
// fiber.
func seedGoalDay(t *testing.T, db *gorm.DB) (uint, time.Time) {
	t.Helper()
	user := createUser(t, db)

	ing := createIngredient(t, db, models.Ingredient{
		Name:     "Trail Mix",
		Category: "snacks",
		Calories: 350,
		Protein:  50,
		Carbs:    65,
		Fat:      10,
		Fiber:    20,
	})
	recipe := createRecipe(t, db, "Trail Mix Bowl", 1, models.RecipeIngredient{
		IngredientID: ing.ID,
		Quantity:     200,
		Unit:         "g",
	})

	date := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	createMeal(t, db, user.ID, recipe.ID, date, 1, true)

	goal := models.NutritionGoal{
		UserID:        user.ID,
		GoalType:      "maintenance",
		DailyCalories: 1000,
		DailyProtein:  100,
		DailyCarbs:    100,
		DailyFiber:    50,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&goal).Error)
	return user.ID, date
}

func TestAnalyzeGoalsProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	userID, date := seedGoalDay(t, db)

	analysis, err := svc.AnalyzeGoals(userID, date)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", analysis.Date)

	calories := analysis.Progress["calories"]
	assert.Equal(t, 1000.0, calories.Goal)
	assert.Equal(t, 700.0, calories.Actual)
	assert.Equal(t, 70.0, calories.Percentage)
	assert.Equal(t, 300.0, calories.Remaining)

	protein := analysis.Progress["protein"]
	assert.Equal(t, 100.0, protein.Percentage)
	assert.Equal(t, 0.0, protein.Remaining)

	carbs := analysis.Progress["carbs"]
	assert.Equal(t, 130.0, carbs.Percentage)
	// over target clamps remaining at zero
	assert.Equal(t, 0.0, carbs.Remaining)

	assert.Equal(t, 80.0, analysis.Progress["fiber"].Percentage)
}

func TestAnalyzeGoalsOmitsUnsetMacros(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	userID, date := seedGoalDay(t, db)

	analysis, err := svc.AnalyzeGoals(userID, date)
	require.NoError(t, err)

	// the goal has no fat target, so fat never appears
	_, ok := analysis.Progress["fat"]
	assert.False(t, ok)
	assert.Len(t, analysis.Progress, 4)
}

func TestAnalyzeGoalsRoundsPercentageToOneDecimal(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)

	ing := createIngredient(t, db, models.Ingredient{
		Name:     "Oats",
		Category: "grains",
		Calories: 100,
	})
	recipe := createRecipe(t, db, "Oatmeal", 1, models.RecipeIngredient{
		IngredientID: ing.ID,
		Quantity:     100,
		Unit:         "g",
	})
	date := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	createMeal(t, db, user.ID, recipe.ID, date, 1, true)

	goal := models.NutritionGoal{UserID: user.ID, DailyCalories: 300, IsActive: true}
	require.NoError(t, db.Create(&goal).Error)

	analysis, err := svc.AnalyzeGoals(user.ID, date)
	require.NoError(t, err)
	// 100/300 = 33.333...%
	assert.Equal(t, 33.3, analysis.Progress["calories"].Percentage)
}

func TestSuggestAdjustments(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	userID, date := seedGoalDay(t, db)

	suggestions, err := svc.SuggestAdjustments(userID, date)
	require.NoError(t, err)

	// calories at 70% and carbs at 130%; protein (100%) and fiber (80%)
	// sit inside the band and get no suggestion
	require.Len(t, suggestions, 2)

	assert.Equal(t, "increase", suggestions[0].Type)
	assert.Equal(t, "calories", suggestions[0].Nutrient)
	assert.Equal(t, 700.0, suggestions[0].Current)
	assert.Equal(t, 300.0, suggestions[0].Needed)

	assert.Equal(t, "decrease", suggestions[1].Type)
	assert.Equal(t, "carbs", suggestions[1].Nutrient)
	assert.Equal(t, 130.0, suggestions[1].Current)
	assert.Equal(t, 30.0, suggestions[1].Excess)
}

func TestSuggestAdjustmentThresholds(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)

	// 100 g of this ingredient puts calories at 79.9%, protein at
	// exactly 120%, carbs at 121% of the goal below
	ing := createIngredient(t, db, models.Ingredient{
		Name:     "Boundary Bar",
		Category: "snacks",
		Calories: 799,
		Protein:  120,
		Carbs:    121,
	})
	recipe := createRecipe(t, db, "Boundary Bowl", 1, models.RecipeIngredient{
		IngredientID: ing.ID,
		Quantity:     100,
		Unit:         "g",
	})
	date := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	createMeal(t, db, user.ID, recipe.ID, date, 1, true)

	goal := models.NutritionGoal{
		UserID:        user.ID,
		DailyCalories: 1000,
		DailyProtein:  100,
		DailyCarbs:    100,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&goal).Error)

	suggestions, err := svc.SuggestAdjustments(user.ID, date)
	require.NoError(t, err)

	// both bounds are inclusive: 120% exactly draws no suggestion
	require.Len(t, suggestions, 2)
	assert.Equal(t, "increase", suggestions[0].Type)
	assert.Equal(t, "calories", suggestions[0].Nutrient)
	assert.Equal(t, "decrease", suggestions[1].Type)
	assert.Equal(t, "carbs", suggestions[1].Nutrient)
}

func TestSuggestAdjustmentsWithoutActiveGoal(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createUser(t, db)

	suggestions, err := svc.SuggestAdjustments(user.ID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
