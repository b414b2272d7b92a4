package controllers

import (
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateEmail(input.Email) {
		c.JSON(400, gin.H{"error": "invalid email address"})
		return
	}
	if !utils.ValidateUsername(input.Username) {
		c.JSON(400, gin.H{"error": "username must be 3-50 alphanumeric characters or underscores"})
		return
	}
	if !utils.ValidatePassword(input.Password) {
		c.JSON(400, gin.H{"error": "password must be at least 8 characters with a letter and a number"})
		return
	}

	user, err := ctl.auth.Register(input)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, user)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.auth.Authenticate(body.Email, body.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"access_token": token, "token_type": "bearer"})
}
