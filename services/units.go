package services

import "strings"

// gramsPerUnit maps a unit token to its factor against grams. Volumetric
// factors are density-agnostic approximations (a cup of flour and a cup
// of milk both count as 240 g).
var gramsPerUnit = map[string]float64{
	"g":      1,
	"gram":   1,
	"grams":  1,
	"kg":       1000,
	"kilogram": 1000,
	"lb":    453.592,
	"pound": 453.592,
	"oz":    28.3495,
	"ounce": 28.3495,
	"cup":        240,
	"tbsp":       15,
	"tablespoon": 15,
	"tsp":      5,
	"teaspoon": 5,
	"ml":         1,
	"milliliter": 1,
	"l":     1000,
	"liter": 1000,
	"fl oz":       29.5735,
	"fluid ounce": 29.5735,
}

// ToGrams converts a quantity in the given unit to grams. Unknown units
// get factor 1, i.e. the quantity is treated as already being in grams.
// Callers should not assume this silently succeeded; it is a degraded
// accuracy path for units like "slice" or "serving".
func ToGrams(quantity float64, unit string) float64 {
	factor, ok := gramsPerUnit[strings.ToLower(unit)]
	if !ok {
		factor = 1
	}
	return quantity * factor
}
