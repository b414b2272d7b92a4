package controllers

import (
	"errors"
	"strconv"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IngredientController struct {
	ingredients *services.IngredientService
}

func NewIngredientController(ingredients *services.IngredientService) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

func (ctl *IngredientController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	ingredients, err := ctl.ingredients.List(services.IngredientFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, ingredients)
}

func (ctl *IngredientController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := ctl.ingredients.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, ingredient)
}

func (ctl *IngredientController) Create(c *gin.Context) {
	var ingredient models.Ingredient
	if err := c.ShouldBindJSON(&ingredient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateIngredientName(ingredient.Name) {
		c.JSON(400, gin.H{"error": "ingredient name must be 2-100 characters (letters, digits, spaces, - . ')"})
		return
	}
	if !utils.ValidateCalories(ingredient.Calories) {
		c.JSON(400, gin.H{"error": "calories must be between 0 and 10000"})
		return
	}
	for _, macro := range []float64{ingredient.Protein, ingredient.Carbs, ingredient.Fat} {
		if !utils.ValidateMacro(macro) {
			c.JSON(400, gin.H{"error": "macro values must be between 0 and 1000"})
			return
		}
	}

	if err := ctl.ingredients.Create(&ingredient); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, ingredient)
}

func (ctl *IngredientController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid ingredient id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := ctl.ingredients.Update(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, ingredient)
}
