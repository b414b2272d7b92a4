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

type RecipeController struct {
	recipes    *services.RecipeService
	generation *services.GenerationService
	users      *services.UserService
}

func NewRecipeController(recipes *services.RecipeService, generation *services.GenerationService, users *services.UserService) *RecipeController {
	return &RecipeController{recipes: recipes, generation: generation, users: users}
}

func (ctl *RecipeController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	recipes, err := ctl.recipes.List(services.RecipeFilter{
		Search:      c.Query("search"),
		CuisineType: c.Query("cuisine_type"),
		Difficulty:  c.Query("difficulty"),
		Skip:        skip,
		Limit:       limit,
	})
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, recipes)
}

func (ctl *RecipeController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := ctl.recipes.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, recipe)
}

func (ctl *RecipeController) Create(c *gin.Context) {
	var body struct {
		models.Recipe
		IngredientInputs []services.RecipeIngredientInput `json:"ingredients"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateServings(body.Servings) {
		c.JSON(400, gin.H{"error": "servings must be between 1 and 20"})
		return
	}
	if !utils.ValidateCookingTime(body.PrepTimeMinutes) || !utils.ValidateCookingTime(body.CookTimeMinutes) {
		c.JSON(400, gin.H{"error": "cooking times must be between 0 and 1440 minutes"})
		return
	}
	for _, ing := range body.IngredientInputs {
		if !utils.ValidateQuantity(ing.Quantity) {
			c.JSON(400, gin.H{"error": "ingredient quantities must be positive"})
			return
		}
	}

	recipe := body.Recipe
	recipe.Ingredients = nil
	created, err := ctl.recipes.Create(&recipe, body.IngredientInputs)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, created)
}

func (ctl *RecipeController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid recipe id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.recipes.Update(uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, recipe)
}

func (ctl *RecipeController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := ctl.recipes.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Recipe deleted successfully"})
}

// Nutrition returns the per-serving rollup for a recipe.
func (ctl *RecipeController) Nutrition(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid recipe id"})
		return
	}

	servings := 0.0
	if raw := c.Query("servings"); raw != "" {
		servings, err = strconv.ParseFloat(raw, 64)
		if err != nil || servings <= 0 {
			c.JSON(400, gin.H{"error": "servings must be a positive number"})
			return
		}
	}

	totals, err := ctl.recipes.Nutrition(uint(id), servings)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, totals)
}

// Generate runs the AI meal-generation pipeline for the current user.
func (ctl *RecipeController) Generate(c *gin.Context) {
	var req services.MealGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateMealType(req.MealType) {
		c.JSON(400, gin.H{"error": "meal_type must be breakfast, lunch, dinner or snack"})
		return
	}
	if req.Servings == 0 {
		req.Servings = 1
	}
	if !utils.ValidateServings(req.Servings) {
		c.JSON(400, gin.H{"error": "servings must be between 1 and 20"})
		return
	}

	user, err := ctl.users.Get(c.GetUint("userID"))
	if err != nil {
		c.JSON(404, gin.H{"error": "user not found"})
		return
	}

	result, err := ctl.generation.GenerateMeal(req, user)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}
