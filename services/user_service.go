package services

import (
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	FullName            string   `json:"full_name"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"dietary_restrictions": strings.Join(input.DietaryRestrictions, ","),
		"allergies":            strings.Join(input.Allergies, ","),
		"cuisine_preferences":  strings.Join(input.CuisinePreferences, ","),
	}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return user, nil
}
