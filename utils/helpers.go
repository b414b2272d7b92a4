package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	prefixRe     = regexp.MustCompile(`(?i)^(fresh|dried|frozen|canned|organic)\s+`)
	suffixRe     = regexp.MustCompile(`(?i)\s+(chopped|diced|sliced|grated|minced)$`)
	quantityRe   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z]+)?`)
)

var pluralReplacements = map[string]string{
	"tomatoes": "tomato",
	"potatoes": "potato",
	"onions":   "onion",
	"peppers":  "pepper",
	"carrots":  "carrot",
}

// CleanIngredientName standardizes a catalog name: collapses whitespace,
// strips preparation prefixes/suffixes, singularizes a few common
// plurals and title-cases the result.
func CleanIngredientName(name string) string {
	name = whitespaceRe.ReplaceAllString(strings.TrimSpace(name), " ")
	name = prefixRe.ReplaceAllString(name, "")
	name = suffixRe.ReplaceAllString(name, "")

	lower := strings.ToLower(name)
	for plural, singular := range pluralReplacements {
		if strings.HasSuffix(lower, plural) {
			name = name[:len(name)-len(plural)] + singular
			break
		}
	}

	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ParseQuantityUnit parses text like "2 cups" or "500g". Text without a
// leading number counts as 1 serving.
func ParseQuantityUnit(text string) (float64, string) {
	m := quantityRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 1.0, "serving"
	}
	quantity, _ := strconv.ParseFloat(m[1], 64)
	unit := m[2]
	if unit == "" {
		unit = "serving"
	}
	return quantity, unit
}

// CalculateBMR uses the Mifflin-St Jeor equation. Weight in kg, height
// in cm.
func CalculateBMR(weight, height float64, age int, gender string) float64 {
	if strings.ToLower(gender) == "male" {
		return 10*weight + 6.25*height - 5*float64(age) + 5
	}
	return 10*weight + 6.25*height - 5*float64(age) - 161
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

func CalculateTDEE(bmr float64, activityLevel string) float64 {
	multiplier, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		multiplier = 1.2
	}
	return bmr * multiplier
}

// MacroTargets splits a calorie budget into protein/carbs/fat grams
// based on the goal type (4 cal/g for protein and carbs, 9 for fat).
func MacroTargets(calories float64, goalType string) (protein, carbs, fat float64) {
	var proteinRatio, carbRatio, fatRatio float64
	switch goalType {
	case "weight_loss":
		proteinRatio, carbRatio, fatRatio = 0.3, 0.4, 0.3
	case "muscle_gain":
		proteinRatio, carbRatio, fatRatio = 0.35, 0.45, 0.2
	default: // maintenance, health
		proteinRatio, carbRatio, fatRatio = 0.25, 0.5, 0.25
	}

	protein = float64(int(calories*proteinRatio/4 + 0.5))
	carbs = float64(int(calories*carbRatio/4 + 0.5))
	fat = float64(int(calories*fatRatio/9 + 0.5))
	return protein, carbs, fat
}

// RecipeDifficulty scores a recipe from total time and ingredient count.
func RecipeDifficulty(prepTime, cookTime, ingredientCount int) string {
	totalTime := prepTime + cookTime
	score := 0

	switch {
	case totalTime <= 30:
		score++
	case totalTime <= 60:
		score += 2
	default:
		score += 3
	}

	switch {
	case ingredientCount <= 5:
		score++
	case ingredientCount <= 10:
		score += 2
	default:
		score += 3
	}

	if score <= 2 {
		return "easy"
	}
	if score <= 4 {
		return "medium"
	}
	return "hard"
}

// ExpirationReminder renders a pantry item's expiration as a reminder
// message.
func ExpirationReminder(expirationDate time.Time) string {
	days := int(time.Until(expirationDate).Hours() / 24)

	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires tomorrow"
	default:
		return fmt.Sprintf("Expires in %d days", days)
	}
}
