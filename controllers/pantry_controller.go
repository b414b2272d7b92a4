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

type PantryController struct {
	pantry *services.PantryService
}

func NewPantryController(pantry *services.PantryService) *PantryController {
	return &PantryController{pantry: pantry}
}

func (ctl *PantryController) List(c *gin.Context) {
	entries, err := ctl.pantry.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, entries)
}

func (ctl *PantryController) Add(c *gin.Context) {
	var body struct {
		IngredientID   uint       `json:"ingredient_id"`
		Quantity       float64    `json:"quantity"`
		Unit           string     `json:"unit"`
		QuantityText   string     `json:"quantity_text"` // e.g. "500g" or "2 cups"
		ExpirationDate *time.Time `json:"expiration_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if body.QuantityText != "" {
		body.Quantity, body.Unit = utils.ParseQuantityUnit(body.QuantityText)
	}
	if !utils.ValidateQuantity(body.Quantity) {
		c.JSON(400, gin.H{"error": "quantity must be positive"})
		return
	}
	if body.Unit != "" && !utils.ValidateUnit(body.Unit) {
		c.JSON(400, gin.H{"error": "unknown unit"})
		return
	}

	item := models.PantryItem{
		UserID:         c.GetUint("userID"),
		IngredientID:   body.IngredientID,
		Quantity:       body.Quantity,
		Unit:           body.Unit,
		ExpirationDate: body.ExpirationDate,
	}
	created, err := ctl.pantry.Add(&item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, created)
}

func (ctl *PantryController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid pantry item id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.pantry.Update(c.GetUint("userID"), uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Pantry item not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, item)
}

func (ctl *PantryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid pantry item id"})
		return
	}

	if err := ctl.pantry.Delete(c.GetUint("userID"), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Pantry item not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Pantry item deleted successfully"})
}
