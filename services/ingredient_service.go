// services/ingredient_service.go
package services

import (
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type IngredientFilter struct {
	Search   string
	Category string
	Skip     int
	Limit    int
}

func (s *IngredientService) List(filter IngredientFilter) ([]models.Ingredient, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 100
	}

	q := s.db.Model(&models.Ingredient{})
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var ingredients []models.Ingredient
	err := q.Offset(filter.Skip).Limit(filter.Limit).Find(&ingredients).Error
	return ingredients, err
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(ingredient *models.Ingredient) error {
	ingredient.Name = utils.CleanIngredientName(ingredient.Name)
	if ingredient.Unit == "" {
		ingredient.Unit = "g"
	}
	return s.db.Create(ingredient).Error
}

// Update patches the mutable nutrient/metadata fields. Identity (name)
// stays as created.
func (s *IngredientService) Update(id uint, updates map[string]interface{}) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		return nil, err
	}
	delete(updates, "name")
	if err := s.db.Model(&ingredient).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
