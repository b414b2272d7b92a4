// services/goal_service.go
package services

import (
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// ListActive returns the user's active goals. By the invariant below
// there is at most one, but the endpoint mirrors the list shape.
func (s *GoalService) ListActive(userID uint) ([]models.NutritionGoal, error) {
	var goals []models.NutritionGoal
	err := s.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&goals).Error
	return goals, err
}

// Create deactivates every prior goal and inserts the new one in a
// single transaction, so a concurrent reader never sees two active
// goals for the same user.
func (s *GoalService) Create(userID uint, goal *models.NutritionGoal) error {
	goal.UserID = userID
	goal.IsActive = true
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.NutritionGoal{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error
		if err != nil {
			return err
		}
		return tx.Create(goal).Error
	})
}

func (s *GoalService) Update(userID, goalID uint, updates map[string]interface{}) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(&goal).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// TargetRecommendation is a starting point for daily targets computed
// from body stats, not a stored goal.
type TargetRecommendation struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
}

type RecommendationInput struct {
	Weight        float64 `json:"weight"` // kg
	Height        float64 `json:"height"` // cm
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
}

// RecommendTargets derives daily calorie and macro targets from the
// Mifflin-St Jeor BMR, an activity multiplier and a goal-type macro
// split.
func (s *GoalService) RecommendTargets(input RecommendationInput) TargetRecommendation {
	bmr := utils.CalculateBMR(input.Weight, input.Height, input.Age, input.Gender)
	tdee := utils.CalculateTDEE(bmr, input.ActivityLevel)
	protein, carbs, fat := utils.MacroTargets(tdee, input.GoalType)

	return TargetRecommendation{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: tdee,
		DailyProtein:  protein,
		DailyCarbs:    carbs,
		DailyFat:      fat,
	}
}
