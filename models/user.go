package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Preference lists stored comma-joined, e.g. "vegetarian,gluten-free"
	DietaryRestrictions string `json:"dietary_restrictions"`
	Allergies           string `json:"allergies"`
	CuisinePreferences  string `json:"cuisine_preferences"`
}

// DietaryRestrictionList splits the stored preference text back into a list.
func (u *User) DietaryRestrictionList() []string {
	return splitPreferences(u.DietaryRestrictions)
}

func (u *User) AllergyList() []string {
	return splitPreferences(u.Allergies)
}

func (u *User) CuisinePreferenceList() []string {
	return splitPreferences(u.CuisinePreferences)
}

func splitPreferences(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
