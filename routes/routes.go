package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg config.Config, db *gorm.DB) *gin.Engine {
	nutritionSvc := services.NewNutritionService(db)
	llm := services.NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	authCtl := controllers.NewAuthController(services.NewAuthService(db, cfg.JWTSecret))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	ingredientCtl := controllers.NewIngredientController(services.NewIngredientService(db))
	pantryCtl := controllers.NewPantryController(services.NewPantryService(db))
	recipeCtl := controllers.NewRecipeController(
		services.NewRecipeService(db, nutritionSvc),
		services.NewGenerationService(db, llm),
		services.NewUserService(db),
	)
	mealCtl := controllers.NewMealController(services.NewMealService(db, nutritionSvc), nutritionSvc)
	goalCtl := controllers.NewGoalController(services.NewGoalService(db), nutritionSvc)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userCtl.GetProfile)
			users.PUT("/me", userCtl.UpdateProfile)
		}

		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", ingredientCtl.List)
			ingredients.GET("/:id", ingredientCtl.Get)
			ingredients.POST("", ingredientCtl.Create)
			ingredients.PUT("/:id", ingredientCtl.Update)
		}

		pantry := protected.Group("/pantry")
		{
			pantry.GET("", pantryCtl.List)
			pantry.POST("", pantryCtl.Add)
			pantry.PUT("/:id", pantryCtl.Update)
			pantry.DELETE("/:id", pantryCtl.Delete)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeCtl.List)
			recipes.POST("", recipeCtl.Create)
			recipes.POST("/generate", recipeCtl.Generate)
			recipes.GET("/:id", recipeCtl.Get)
			recipes.PUT("/:id", recipeCtl.Update)
			recipes.DELETE("/:id", recipeCtl.Delete)
			recipes.GET("/:id/nutrition", recipeCtl.Nutrition)
		}

		meals := protected.Group("/meals")
		{
			meals.GET("", mealCtl.List)
			meals.POST("", mealCtl.Create)
			meals.GET("/nutrition/daily", mealCtl.DailyNutrition)
			meals.GET("/:id", mealCtl.Get)
			meals.PUT("/:id", mealCtl.Update)
			meals.DELETE("/:id", mealCtl.Delete)
			meals.POST("/:id/consume", mealCtl.Consume)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", goalCtl.List)
			goals.POST("", goalCtl.Create)
			goals.PUT("/:id", goalCtl.Update)
			goals.GET("/progress", goalCtl.Progress)
			goals.GET("/suggestions", goalCtl.Suggestions)
			goals.POST("/recommend", goalCtl.Recommend)
		}
	}

	return r
}
