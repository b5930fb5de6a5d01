package repository

import (
	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	WithTx(tx *gorm.DB) RecipeRepository
	Create(recipe *model.Recipe) error
	FindAllByPopularity() ([]model.Recipe, error)
	FindByIDWithIngredients(id uint) (*model.Recipe, error)
	IncrementViews(id uint) (bool, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *recipeRepository) WithTx(tx *gorm.DB) RecipeRepository {
	return &recipeRepository{db: tx}
}

// Create inserts the recipe and its recipe_ingredients rows. Ingredients
// must already be persisted.
func (r *recipeRepository) Create(recipe *model.Recipe) error {
	logger.Debug("Creating recipe in database", map[string]interface{}{
		"title":            recipe.Title,
		"cooking_time":     recipe.CookingTime,
		"ingredient_count": len(recipe.Ingredients),
	})

	if err := r.db.Create(recipe).Error; err != nil {
		logger.Error("Failed to create recipe in database", err, map[string]interface{}{
			"title": recipe.Title,
		})
		return err
	}

	logger.Debug("Recipe created in database", map[string]interface{}{
		"recipe_id": recipe.ID,
		"title":     recipe.Title,
	})
	return nil
}

// FindAllByPopularity lists recipes without ingredients, most viewed first,
// quicker recipes first among equals.
func (r *recipeRepository) FindAllByPopularity() ([]model.Recipe, error) {
	logger.Debug("Finding recipes by popularity in database", nil)

	var recipes []model.Recipe
	err := r.db.Model(&model.Recipe{}).
		Order("views DESC").
		Order("cooking_time ASC").
		Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		logger.Error("Failed to find recipes in database", err)
		return nil, err
	}

	logger.Debug("Recipes found in database", map[string]interface{}{
		"count": len(recipes),
	})
	return recipes, nil
}

func (r *recipeRepository) FindByIDWithIngredients(id uint) (*model.Recipe, error) {
	logger.Debug("Finding recipe by ID in database", map[string]interface{}{
		"recipe_id": id,
	})

	var recipe model.Recipe
	err := r.db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredients.id ASC")
	}).First(&recipe, id).Error
	if err != nil {
		logger.Error("Failed to find recipe by ID in database", err, map[string]interface{}{
			"recipe_id": id,
		})
		return nil, err
	}

	logger.Debug("Recipe found by ID in database", map[string]interface{}{
		"recipe_id":        recipe.ID,
		"ingredient_count": len(recipe.Ingredients),
	})
	return &recipe, nil
}

// IncrementViews bumps the view counter in place. It reports false when no
// recipe has the given id, in which case nothing was written.
func (r *recipeRepository) IncrementViews(id uint) (bool, error) {
	logger.Debug("Incrementing recipe views in database", map[string]interface{}{
		"recipe_id": id,
	})

	result := r.db.Model(&model.Recipe{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		logger.Error("Failed to increment recipe views in database", result.Error, map[string]interface{}{
			"recipe_id": id,
		})
		return false, result.Error
	}

	logger.Debug("Recipe views incremented in database", map[string]interface{}{
		"recipe_id":     id,
		"rows_affected": result.RowsAffected,
	})
	return result.RowsAffected > 0, nil
}
