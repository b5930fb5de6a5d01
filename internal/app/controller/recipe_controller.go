package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/recipe-catalog/internal/app/dto"
	"github.com/ikkim/recipe-catalog/internal/app/service"
	apperrors "github.com/ikkim/recipe-catalog/internal/errors"
	"github.com/ikkim/recipe-catalog/internal/middleware"
)

type RecipeController struct {
	recipeService service.RecipeService
}

func NewRecipeController(recipeService service.RecipeService) *RecipeController {
	dto.RegisterValidators()
	return &RecipeController{
		recipeService: recipeService,
	}
}

// CreateRecipe creates a recipe, reusing ingredients by name
// POST /recipes/
func (ctrl *RecipeController) CreateRecipe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fields := dto.FieldErrors(err)
		log.Warn("Invalid recipe creation request", map[string]interface{}{
			"fields": fields,
		})
		apperrors.RespondWithValidationError(c, fields)
		return
	}

	recipe, err := ctrl.recipeService.CreateRecipe(c.Request.Context(), service.CreateRecipeInput{
		Title:       req.Title,
		CookingTime: req.CookingTime,
		Description: req.Description,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecipe) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		log.Error("Failed to create recipe", err, map[string]interface{}{
			"title": req.Title,
		})
		apperrors.ParseAndRespond(c, err, "create recipe")
		return
	}

	log.Info("Recipe created successfully", map[string]interface{}{
		"recipe_id": recipe.ID,
	})

	c.JSON(http.StatusCreated, dto.NewRecipeCreatedResponse(recipe))
}

// ListRecipes returns recipe summaries, most viewed first
// GET /recipes/
func (ctrl *RecipeController) ListRecipes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	recipes, err := ctrl.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		log.Error("Failed to list recipes", err, nil)
		apperrors.ParseAndRespond(c, err, "list recipes")
		return
	}

	c.JSON(http.StatusOK, dto.NewRecipeSummaries(recipes))
}

// GetRecipe returns one recipe's detail and counts the view
// GET /recipes/:id
func (ctrl *RecipeController) GetRecipe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		log.Warn("Invalid recipe ID format", map[string]interface{}{
			"recipe_id": idStr,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Recipe id must be a positive integer")
		return
	}

	recipe, err := ctrl.recipeService.ViewRecipe(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			apperrors.NotFound(c, apperrors.RecipeNotFound, "Recipe not found")
			return
		}
		log.Error("Failed to fetch recipe", err, map[string]interface{}{
			"recipe_id": id,
		})
		apperrors.ParseAndRespond(c, err, "view recipe")
		return
	}

	c.JSON(http.StatusOK, dto.NewRecipeDetail(recipe))
}
