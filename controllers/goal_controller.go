package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GoalController struct {
	goals     *services.GoalService
	nutrition *services.NutritionService
}

func NewGoalController(goals *services.GoalService, nutrition *services.NutritionService) *GoalController {
	return &GoalController{goals: goals, nutrition: nutrition}
}

func (ctl *GoalController) List(c *gin.Context) {
	goals, err := ctl.goals.ListActive(c.GetUint("userID"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, goals)
}

func (ctl *GoalController) Create(c *gin.Context) {
	var goal models.NutritionGoal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateGoalType(goal.GoalType) {
		c.JSON(400, gin.H{"error": "invalid goal_type"})
		return
	}
	if !utils.ValidateActivityLevel(goal.ActivityLevel) {
		c.JSON(400, gin.H{"error": "invalid activity_level"})
		return
	}
	if !utils.ValidateCalories(goal.DailyCalories) {
		c.JSON(400, gin.H{"error": "daily_calories must be between 0 and 10000"})
		return
	}
	for _, macro := range []float64{goal.DailyProtein, goal.DailyCarbs, goal.DailyFat, goal.DailyFiber} {
		if !utils.ValidateMacro(macro) {
			c.JSON(400, gin.H{"error": "macro targets must be between 0 and 1000"})
			return
		}
	}

	if err := ctl.goals.Create(c.GetUint("userID"), &goal); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, goal)
}

func (ctl *GoalController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid goal id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.goals.Update(c.GetUint("userID"), uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Nutrition goal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, goal)
}

// Progress reports how the day's consumed nutrition compares to the
// active goal.
func (ctl *GoalController) Progress(c *gin.Context) {
	date, ok := ctl.parseDate(c)
	if !ok {
		return
	}

	analysis, err := ctl.nutrition.AnalyzeGoals(c.GetUint("userID"), date)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveGoal) {
			c.JSON(404, gin.H{"error": "No active nutrition goals found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, analysis)
}

func (ctl *GoalController) Suggestions(c *gin.Context) {
	date, ok := ctl.parseDate(c)
	if !ok {
		return
	}

	suggestions, err := ctl.nutrition.SuggestAdjustments(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, suggestions)
}

// Recommend derives starting targets from body stats without storing
// anything.
func (ctl *GoalController) Recommend(c *gin.Context) {
	var input services.RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !utils.ValidateActivityLevel(input.ActivityLevel) {
		c.JSON(400, gin.H{"error": "invalid activity_level"})
		return
	}
	if !utils.ValidateGoalType(input.GoalType) {
		c.JSON(400, gin.H{"error": "invalid goal_type"})
		return
	}

	c.JSON(200, ctl.goals.RecommendTargets(input))
}

func (ctl *GoalController) parseDate(c *gin.Context) (time.Time, bool) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "date must be YYYY-MM-DD"})
			return time.Time{}, false
		}
		return date, true
	}
	return time.Now(), true
}
