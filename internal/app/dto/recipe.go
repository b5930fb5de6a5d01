package dto

import "github.com/ikkim/recipe-catalog/internal/app/model"

// CreateRecipeRequest is the POST /recipes/ body.
type CreateRecipeRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=255"`
	CookingTime int      `json:"cooking_time" binding:"required,gt=0"`
	Description string   `json:"description" binding:"required,notblank"`
	Ingredients []string `json:"ingredients" binding:"required,dive,notblank,max=255"`
}

// RecipeSummary is one row of the recipe list.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	CookingTime int    `json:"cooking_time"`
	Views       int    `json:"views"`
}

// RecipeDetail is the single-recipe view. Views are deliberately absent.
type RecipeDetail struct {
	Title          string   `json:"title"`
	CookingTime    int      `json:"cooking_time"`
	Description    string   `json:"description"`
	IngredientList []string `json:"ingredient_list"`
}

// RecipeCreatedResponse is returned by POST /recipes/.
type RecipeCreatedResponse struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	CookingTime    int      `json:"cooking_time"`
	Description    string   `json:"description"`
	Views          int      `json:"views"`
	IngredientList []string `json:"ingredient_list"`
}

func NewRecipeSummaries(recipes []model.Recipe) []RecipeSummary {
	summaries := make([]RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, RecipeSummary{
			ID:          recipe.ID,
			Title:       recipe.Title,
			CookingTime: recipe.CookingTime,
			Views:       recipe.Views,
		})
	}
	return summaries
}

func NewRecipeDetail(recipe *model.Recipe) RecipeDetail {
	return RecipeDetail{
		Title:          recipe.Title,
		CookingTime:    recipe.CookingTime,
		Description:    recipe.Description,
		IngredientList: recipe.IngredientNames(),
	}
}

func NewRecipeCreatedResponse(recipe *model.Recipe) RecipeCreatedResponse {
	return RecipeCreatedResponse{
		ID:             recipe.ID,
		Title:          recipe.Title,
		CookingTime:    recipe.CookingTime,
		Description:    recipe.Description,
		Views:          recipe.Views,
		IngredientList: recipe.IngredientNames(),
	}
}
