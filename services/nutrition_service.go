// services/nutrition_service.go
package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// ErrNoActiveGoal is returned by AnalyzeGoals when the user has never
// set a goal, or deactivated all of them.
var ErrNoActiveGoal = errors.New("no active nutrition goal found")

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// NutrientTotals is the rollup of all ten tracked nutrients. Values are
// grams except Calories (kcal) and Sodium/VitaminC/Calcium/Iron (mg).
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	VitaminC float64 `json:"vitamin_c"`
	Calcium  float64 `json:"calcium"`
	Iron     float64 `json:"iron"`
}

// fields enumerates the accumulator slots in a fixed order. The order
// must match ingredientProfile.
func (t *NutrientTotals) fields() []*float64 {
	return []*float64{
		&t.Calories, &t.Protein, &t.Carbs, &t.Fat, &t.Fiber,
		&t.Sugar, &t.Sodium, &t.VitaminC, &t.Calcium, &t.Iron,
	}
}

// ingredientProfile returns the per-100g nutrient values of an
// ingredient in the same order as (*NutrientTotals).fields.
func ingredientProfile(ing *models.Ingredient) []float64 {
	return []float64{
		ing.Calories, ing.Protein, ing.Carbs, ing.Fat, ing.Fiber,
		ing.Sugar, ing.Sodium, ing.VitaminC, ing.Calcium, ing.Iron,
	}
}

// Add accumulates the other totals into t.
func (t *NutrientTotals) Add(other NutrientTotals) {
	dst := t.fields()
	src := other.fields()
	for i := range dst {
		*dst[i] += *src[i]
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RecipeNutrition computes the per-serving nutrient totals of a recipe.
// Ingredient links must be loaded with their Ingredient. servings must
// be > 0; callers validate before invoking.
func (s *NutritionService) RecipeNutrition(recipe *models.Recipe, servings float64) NutrientTotals {
	var total NutrientTotals
	for _, ri := range recipe.Ingredients {
		grams := ToGrams(ri.Quantity, ri.Unit)
		profile := ingredientProfile(&ri.Ingredient)
		dst := total.fields()
		for i := range dst {
			// profiles are per 100 g
			*dst[i] += profile[i] * grams / 100
		}
	}
	for _, f := range total.fields() {
		*f = round2(*f / servings)
	}
	return total
}

// MealNutrition computes the totals for one meal, scaled by its
// servings multiplier.
func (s *NutritionService) MealNutrition(meal *models.Meal) NutrientTotals {
	return s.RecipeNutrition(&meal.Recipe, meal.Servings)
}

// DailyNutrition sums the nutrition of every consumed meal the user
// planned for the given date. Unconsumed meals are excluded. The sums
// are of already-rounded per-meal values; no rounding is reapplied.
func (s *NutritionService) DailyNutrition(userID uint, date time.Time) (NutrientTotals, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := s.db.
		Preload("Recipe.Ingredients.Ingredient").
		Where("user_id = ? AND planned_date >= ? AND planned_date < ? AND is_consumed = ?",
			userID, start, end, true).
		Find(&meals).Error
	if err != nil {
		return NutrientTotals{}, fmt.Errorf("fetching consumed meals: %w", err)
	}

	var daily NutrientTotals
	for i := range meals {
		daily.Add(s.MealNutrition(&meals[i]))
	}
	return daily, nil
}

// MacroProgress is the per-macro slice of a goal analysis.
type MacroProgress struct {
	Goal       float64 `json:"goal"`
	Actual     float64 `json:"actual"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

type GoalAnalysis struct {
	Date           string                   `json:"date"`
	DailyNutrition NutrientTotals           `json:"daily_nutrition"`
	Progress       map[string]MacroProgress `json:"progress"`
	Goal           models.NutritionGoal     `json:"goals"`
}

type Suggestion struct {
	Type     string  `json:"type"` // "increase" | "decrease"
	Nutrient string  `json:"nutrient"`
	Current  float64 `json:"current"`
	Needed   float64 `json:"needed,omitempty"`
	Excess   float64 `json:"excess,omitempty"`
	Message  string  `json:"suggestion"`
}

// goalMacros keeps macro iteration deterministic.
var goalMacros = []string{"calories", "protein", "carbs", "fat", "fiber"}

func goalTarget(goal *models.NutritionGoal, macro string) float64 {
	switch macro {
	case "calories":
		return goal.DailyCalories
	case "protein":
		return goal.DailyProtein
	case "carbs":
		return goal.DailyCarbs
	case "fat":
		return goal.DailyFat
	case "fiber":
		return goal.DailyFiber
	}
	return 0
}

func dailyActual(daily *NutrientTotals, macro string) float64 {
	switch macro {
	case "calories":
		return daily.Calories
	case "protein":
		return daily.Protein
	case "carbs":
		return daily.Carbs
	case "fat":
		return daily.Fat
	case "fiber":
		return daily.Fiber
	}
	return 0
}

// AnalyzeGoals compares the user's consumed nutrition on a date against
// their active goal. Macros with an unset or non-positive target are
// left out of the progress map entirely.
func (s *NutritionService) AnalyzeGoals(userID uint, date time.Time) (*GoalAnalysis, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ? AND is_active = ?", userID, true).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveGoal
	}
	if err != nil {
		return nil, fmt.Errorf("fetching active goal: %w", err)
	}

	daily, err := s.DailyNutrition(userID, date)
	if err != nil {
		return nil, err
	}

	progress := make(map[string]MacroProgress, len(goalMacros))
	for _, macro := range goalMacros {
		target := goalTarget(&goal, macro)
		if target <= 0 {
			continue
		}
		actual := dailyActual(&daily, macro)
		progress[macro] = MacroProgress{
			Goal:       target,
			Actual:     actual,
			Percentage: math.Round(actual/target*1000) / 10,
			Remaining:  math.Max(0, target-actual),
		}
	}

	return &GoalAnalysis{
		Date:           date.Format("2006-01-02"),
		DailyNutrition: daily,
		Progress:       progress,
		Goal:           goal,
	}, nil
}

// SuggestAdjustments emits an "increase" suggestion for every macro
// under 80% of target and a "decrease" for every macro over 120%. A
// user without an active goal gets an empty list, not an error.
func (s *NutritionService) SuggestAdjustments(userID uint, date time.Time) ([]Suggestion, error) {
	analysis, err := s.AnalyzeGoals(userID, date)
	if errors.Is(err, ErrNoActiveGoal) {
		return []Suggestion{}, nil
	}
	if err != nil {
		return nil, err
	}

	suggestions := []Suggestion{}
	for _, macro := range goalMacros {
		data, ok := analysis.Progress[macro]
		if !ok {
			continue
		}
		switch {
		case data.Percentage < 80:
			suggestions = append(suggestions, Suggestion{
				Type:     "increase",
				Nutrient: macro,
				Current:  data.Actual,
				Needed:   data.Remaining,
				Message:  fmt.Sprintf("Consider adding foods rich in %s to reach your daily goal", macro),
			})
		case data.Percentage > 120:
			suggestions = append(suggestions, Suggestion{
				Type:     "decrease",
				Nutrient: macro,
				Current:  data.Actual,
				Excess:   data.Actual - data.Goal,
				Message:  fmt.Sprintf("Consider reducing %s intake to stay within your goal", macro),
			})
		}
	}
	return suggestions, nil
}
