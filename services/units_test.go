package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGrams(t *testing.T) {
	tests := []struct {
		quantity float64
		unit     string
		want     float64
	}{
		{100, "g", 100},
		{2, "kg", 2000},
		{1, "lb", 453.592},
		{2, "oz", 56.699},
		{1, "cup", 240},
		{3, "tbsp", 45},
		{2, "tsp", 10},
		{250, "ml", 250},
		{1.5, "l", 1500},
		{1, "fl oz", 29.5735},
		{2, "tablespoon", 30},
		{0.5, "kilogram", 500},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, ToGrams(tt.quantity, tt.unit), 0.001,
			"%v %s", tt.quantity, tt.unit)
	}
}

func TestToGramsIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, 2000.0, ToGrams(2, "KG"))
	assert.Equal(t, 240.0, ToGrams(1, "Cup"))
}

func TestToGramsUnknownUnitPassesThrough(t *testing.T) {
	// count-like units fall back to a factor of 1
	assert.Equal(t, 2.0, ToGrams(2, "slice"))
	assert.Equal(t, 3.0, ToGrams(3, "serving"))
	assert.Equal(t, 1.0, ToGrams(1, ""))
}
