package controllers

import (
	"errors"
	"strconv"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	meals     *services.MealService
	nutrition *services.NutritionService
}

func NewMealController(meals *services.MealService, nutrition *services.NutritionService) *MealController {
	return &MealController{meals: meals, nutrition: nutrition}
}

func (ctl *MealController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	filter := services.MealFilter{
		MealType: c.Query("meal_type"),
		Skip:     skip,
		Limit:    limit,
	}
	if raw := c.Query("planned_date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "planned_date must be YYYY-MM-DD"})
			return
		}
		filter.PlannedDate = &date
	}

	meals, err := ctl.meals.List(c.GetUint("userID"), filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

func (ctl *MealController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := ctl.meals.Get(c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meal)
}

func (ctl *MealController) Create(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateMealType(input.MealType) {
		c.JSON(400, gin.H{"error": "meal_type must be breakfast, lunch, dinner or snack"})
		return
	}

	meal, err := ctl.meals.Create(c.GetUint("userID"), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, meal)
}

func (ctl *MealController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if rating, ok := updates["rating"].(float64); ok && !utils.ValidateRating(rating) {
		c.JSON(400, gin.H{"error": "rating must be between 1.0 and 5.0"})
		return
	}

	meal, err := ctl.meals.Update(c.GetUint("userID"), uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meal)
}

func (ctl *MealController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	if err := ctl.meals.Delete(c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Meal deleted successfully"})
}

func (ctl *MealController) Consume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	var body struct {
		Rating float64 `json:"rating"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&body)
	if body.Rating != 0 && !utils.ValidateRating(body.Rating) {
		c.JSON(400, gin.H{"error": "rating must be between 1.0 and 5.0"})
		return
	}

	meal, err := ctl.meals.Consume(c.GetUint("userID"), uint(id), body.Rating)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meal)
}

// DailyNutrition returns the summed totals of the user's consumed meals
// on a date (default today).
func (ctl *MealController) DailyNutrition(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(400, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	totals, err := ctl.nutrition.DailyNutrition(c.GetUint("userID"), date)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"date": date.Format("2006-01-02"), "nutrition": totals})
}
