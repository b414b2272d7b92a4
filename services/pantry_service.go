// services/pantry_service.go
package services

import (
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// PantryEntry is a pantry item plus a human expiration reminder.
type PantryEntry struct {
	models.PantryItem
	ExpirationReminder string `json:"expiration_reminder,omitempty"`
}

func (s *PantryService) List(userID uint) ([]PantryEntry, error) {
	var items []models.PantryItem
	err := s.db.
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Order("expiration_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	entries := make([]PantryEntry, 0, len(items))
	for _, it := range items {
		entry := PantryEntry{PantryItem: it}
		if it.ExpirationDate != nil {
			entry.ExpirationReminder = utils.ExpirationReminder(*it.ExpirationDate)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *PantryService) Add(item *models.PantryItem) (*models.PantryItem, error) {
	// the ingredient must exist in the catalog
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, item.IngredientID).Error; err != nil {
		return nil, err
	}
	if item.PurchaseDate.IsZero() {
		item.PurchaseDate = time.Now()
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	item.Ingredient = ingredient
	return item, nil
}

func (s *PantryService) Update(userID, itemID uint, updates map[string]interface{}) (*models.PantryItem, error) {
	var item models.PantryItem
	err := s.db.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Ingredient").First(&item, item.ID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PantryService) Delete(userID, itemID uint) error {
	result := s.db.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.PantryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
