package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    input.Email,
		Username: input.Username,
		Password: hashed,
		FullName: input.FullName,
		IsActive: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	result := s.db.Where("email = ? AND is_active = ?", email, true).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or inactive")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email, s.jwtSecret)
}
