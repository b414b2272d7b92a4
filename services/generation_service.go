// services/generation_service.go
package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"backend/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const generationSystemRole = "You are a professional chef and nutritionist. Create detailed, healthy recipes."

const generationMaxTokens = 1500

type GenerationService struct {
	db  *gorm.DB
	llm TextGenerator
}

func NewGenerationService(db *gorm.DB, llm TextGenerator) *GenerationService {
	return &GenerationService{db: db, llm: llm}
}

type MealGenerationRequest struct {
	AvailableIngredients []uint   `json:"available_ingredients"` // ingredient IDs
	MealType             string   `json:"meal_type"`             // "breakfast", "lunch", "dinner", "snack"
	Servings             int      `json:"servings"`
	DietaryRestrictions  []string `json:"dietary_restrictions"`
	CuisinePreference    string   `json:"cuisine_preference"`
	MaxPrepTime          int      `json:"max_prep_time"` // minutes, 0 = no limit
}

type IngredientSubstitution struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
}

type MealGenerationResponse struct {
	Recipe             models.Recipe            `json:"recipe"`
	ConfidenceScore    float64                  `json:"confidence_score"`
	MissingIngredients []string                 `json:"missing_ingredients"`
	Substitutions      []IngredientSubstitution `json:"substitutions"`
}

// aiRecipe is the JSON shape the model is asked to respond in.
type aiRecipe struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Instructions    string         `json:"instructions"`
	PrepTimeMinutes int            `json:"prep_time_minutes"`
	CookTimeMinutes int            `json:"cook_time_minutes"`
	Difficulty      string         `json:"difficulty"`
	CuisineType     string         `json:"cuisine_type"`
	Ingredients     []aiIngredient `json:"ingredients"`
}

type aiIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Notes    string  `json:"notes"`
}

// GenerateMeal proposes a recipe from the user's available ingredients.
// The external call and the parse are both best-effort: a failed call
// falls back to a deterministic template, unparsable output becomes a
// degraded-but-usable recipe. The caller always gets a recipe back.
func (s *GenerationService) GenerateMeal(req MealGenerationRequest, user *models.User) (*MealGenerationResponse, error) {
	available, err := s.availableIngredients(req.AvailableIngredients)
	if err != nil {
		return nil, err
	}

	var recipeData aiRecipe
	prompt := s.buildPrompt(available, req, user)
	text, err := s.llm.Generate(generationSystemRole, prompt, generationMaxTokens)
	if err != nil {
		log.WithError(err).Warn("text generation failed, using fallback recipe")
		recipeData = s.fallbackRecipe(available, req)
	} else {
		recipeData = s.parseRecipeText(text)
	}

	recipe, err := s.persistRecipe(recipeData)
	if err != nil {
		return nil, err
	}

	missing, substitutions := s.analyzeIngredients(recipe, available)

	return &MealGenerationResponse{
		Recipe:             *recipe,
		ConfidenceScore:    s.confidenceScore(recipe, available),
		MissingIngredients: missing,
		Substitutions:      substitutions,
	}, nil
}

// availableIngredients resolves ingredient IDs to rows. IDs with no
// match are dropped silently.
func (s *GenerationService) availableIngredients(ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	if err := s.db.Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("resolving available ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *GenerationService) buildPrompt(available []models.Ingredient, req MealGenerationRequest, user *models.User) string {
	names := make([]string, 0, len(available))
	for _, ing := range available {
		names = append(names, ing.Name)
	}

	maxPrep := "No limit"
	if req.MaxPrepTime > 0 {
		maxPrep = fmt.Sprintf("%d", req.MaxPrepTime)
	}

	restrictions := req.DietaryRestrictions
	if len(restrictions) == 0 {
		restrictions = user.DietaryRestrictionList()
	}
	cuisine := req.CuisinePreference
	if cuisine == "" {
		cuisine = "Any"
	}

	return fmt.Sprintf(`Create a %s recipe using these available ingredients: %s

Requirements:
- Servings: %d
- Meal type: %s
- Max prep time: %s minutes

User preferences:
- Dietary restrictions: %s
- Allergies: %s
- Cuisine preference: %s

Please provide the recipe in this JSON format:
{
    "name": "Recipe Name",
    "description": "Brief description",
    "instructions": "Step-by-step cooking instructions",
    "prep_time_minutes": 15,
    "cook_time_minutes": 30,
    "difficulty": "easy|medium|hard",
    "cuisine_type": "cuisine type",
    "ingredients": [
        {"name": "ingredient name", "quantity": 1, "unit": "cup", "notes": "optional notes"}
    ]
}`,
		req.MealType,
		strings.Join(names, ", "),
		req.Servings,
		req.MealType,
		maxPrep,
		joinOrNone(restrictions),
		joinOrNone(user.AllergyList()),
		cuisine,
	)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

// parseRecipeText extracts the JSON object between the first '{' and the
// last '}' of the model output. If there is none, or it does not decode,
// the raw text is kept as the instructions of a degraded recipe rather
// than failing the request.
func (s *GenerationService) parseRecipeText(text string) aiRecipe {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var parsed aiRecipe
		if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err == nil {
			return parsed
		}
		log.Warn("could not decode generated recipe JSON, keeping raw text")
	}
	return aiRecipe{
		Name:            "AI Generated Recipe",
		Description:     "A delicious recipe created by AI",
		Instructions:    text,
		PrepTimeMinutes: 15,
		CookTimeMinutes: 30,
		Difficulty:      "medium",
		CuisineType:     "international",
		Ingredients:     []aiIngredient{},
	}
}

// fallbackRecipe builds a deterministic recipe when the external call
// itself failed. Capped at the first 5 available ingredients.
func (s *GenerationService) fallbackRecipe(available []models.Ingredient, req MealGenerationRequest) aiRecipe {
	mainName := "available ingredients"
	if len(available) > 0 {
		mainName = available[0].Name
	}

	limit := len(available)
	if limit > 5 {
		limit = 5
	}
	ingredients := make([]aiIngredient, 0, limit)
	for _, ing := range available[:limit] {
		ingredients = append(ingredients, aiIngredient{
			Name:     ing.Name,
			Quantity: 1,
			Unit:     "serving",
		})
	}

	return aiRecipe{
		Name:            fmt.Sprintf("Simple %s with %s", capitalize(req.MealType), mainName),
		Description:     fmt.Sprintf("A simple %s using available ingredients", req.MealType),
		Instructions:    fmt.Sprintf("1. Prepare %s\n2. Cook according to your preference\n3. Season to taste\n4. Serve hot", mainName),
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Difficulty:      "easy",
		CuisineType:     "simple",
		Ingredients:     ingredients,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// persistRecipe writes the recipe and its ingredient links atomically.
// AI ingredient names are matched to the catalog by case-insensitive
// substring; misses create a placeholder ingredient with zeroed
// nutrients so the link always resolves.
func (s *GenerationService) persistRecipe(data aiRecipe) (*models.Recipe, error) {
	if data.PrepTimeMinutes == 0 {
		data.PrepTimeMinutes = 15
	}
	if data.CookTimeMinutes == 0 {
		data.CookTimeMinutes = 30
	}
	if data.Difficulty == "" {
		data.Difficulty = "medium"
	}
	if data.CuisineType == "" {
		data.CuisineType = "international"
	}

	recipe := models.Recipe{
		Name:            data.Name,
		Description:     data.Description,
		Instructions:    data.Instructions,
		PrepTimeMinutes: data.PrepTimeMinutes,
		CookTimeMinutes: data.CookTimeMinutes,
		Servings:        1,
		Difficulty:      data.Difficulty,
		CuisineType:     data.CuisineType,
		IsAIGenerated:   true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		for _, ing := range data.Ingredients {
			var ingredient models.Ingredient
			err := tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(ing.Name)+"%").
				First(&ingredient).Error
			if err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				ingredient = models.Ingredient{
					Name:     ing.Name,
					Category: "unknown",
				}
				if err := tx.Create(&ingredient).Error; err != nil {
					return err
				}
			}

			quantity := ing.Quantity
			if quantity == 0 {
				quantity = 1
			}
			unit := ing.Unit
			if unit == "" {
				unit = "serving"
			}
			link := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredient.ID,
				Quantity:     quantity,
				Unit:         unit,
				Notes:        ing.Notes,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persisting generated recipe: %w", err)
	}

	var populated models.Recipe
	if err := s.db.Preload("Ingredients.Ingredient").First(&populated, recipe.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// confidenceScore is the fraction of recipe ingredients whose name
// contains one of the available ingredient names as a substring.
func (s *GenerationService) confidenceScore(recipe *models.Recipe, available []models.Ingredient) float64 {
	if len(recipe.Ingredients) == 0 {
		return 0.0
	}

	availableNames := lowerNames(available)
	matches := 0
	for _, ri := range recipe.Ingredients {
		if matchesAny(strings.ToLower(ri.Ingredient.Name), availableNames) {
			matches++
		}
	}

	score := float64(matches) / float64(len(recipe.Ingredients))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// analyzeIngredients finds recipe ingredients the user does not have and
// suggests at most one same-category substitution for each, first match
// wins.
func (s *GenerationService) analyzeIngredients(recipe *models.Recipe, available []models.Ingredient) ([]string, []IngredientSubstitution) {
	availableNames := lowerNames(available)
	missing := []string{}
	substitutions := []IngredientSubstitution{}

	for _, ri := range recipe.Ingredients {
		if matchesAny(strings.ToLower(ri.Ingredient.Name), availableNames) {
			continue
		}
		missing = append(missing, ri.Ingredient.Name)
		for _, av := range available {
			if av.Category == ri.Ingredient.Category {
				substitutions = append(substitutions, IngredientSubstitution{
					Original:   ri.Ingredient.Name,
					Substitute: av.Name,
				})
				break
			}
		}
	}
	return missing, substitutions
}

func lowerNames(ingredients []models.Ingredient) []string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, strings.ToLower(ing.Name))
	}
	return names
}

func matchesAny(name string, availableNames []string) bool {
	for _, av := range availableNames {
		if strings.Contains(name, av) {
			return true
		}
	}
	return false
}
