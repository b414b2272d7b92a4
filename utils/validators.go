package utils

import (
	"regexp"
	"strings"
)

// Request validation lives at the HTTP layer; the engines assume inputs
// already passed these checks.

var (
	ingredientNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.']+$`)
	usernameRe       = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetterRe      = regexp.MustCompile(`[a-zA-Z]`)
	hasDigitRe       = regexp.MustCompile(`\d`)
)

func ValidateIngredientName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 || len(name) > 100 {
		return false
	}
	return ingredientNameRe.MatchString(name)
}

func ValidateQuantity(quantity float64) bool {
	return quantity > 0 && quantity <= 10000
}

var validUnits = map[string]bool{
	"g": true, "gram": true, "grams": true, "kg": true, "kilogram": true,
	"lb": true, "pound": true, "oz": true, "ounce": true,
	"cup": true, "cups": true, "tbsp": true, "tablespoon": true,
	"tsp": true, "teaspoon": true,
	"ml": true, "milliliter": true, "l": true, "liter": true,
	"fl oz": true, "fluid ounce": true,
	"serving": true, "servings": true, "piece": true, "pieces": true,
	"slice": true, "slices": true,
}

func ValidateUnit(unit string) bool {
	return validUnits[strings.ToLower(unit)]
}

func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	return usernameRe.MatchString(username)
}

func ValidatePassword(password string) bool {
	if len(password) < 8 || len(password) > 128 {
		return false
	}
	return hasLetterRe.MatchString(password) && hasDigitRe.MatchString(password)
}

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateServings(servings int) bool {
	return servings >= 1 && servings <= 20
}

func ValidateCalories(calories float64) bool {
	return calories >= 0 && calories <= 10000
}

func ValidateMacro(grams float64) bool {
	return grams >= 0 && grams <= 1000
}

func ValidateCookingTime(minutes int) bool {
	return minutes >= 0 && minutes <= 1440
}

func ValidateRating(rating float64) bool {
	return rating >= 1.0 && rating <= 5.0
}

var validMealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true,
}

func ValidateMealType(mealType string) bool {
	return validMealTypes[strings.ToLower(mealType)]
}

var validGoalTypes = map[string]bool{
	"weight_loss": true, "muscle_gain": true, "maintenance": true, "health": true,
}

func ValidateGoalType(goalType string) bool {
	if goalType == "" {
		return true
	}
	return validGoalTypes[strings.ToLower(goalType)]
}

var validActivityLevels = map[string]bool{
	"sedentary": true, "light": true, "moderate": true, "active": true, "very_active": true,
}

func ValidateActivityLevel(level string) bool {
	if level == "" {
		return true
	}
	return validActivityLevels[strings.ToLower(level)]
}
