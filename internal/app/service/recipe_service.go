package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/ikkim/recipe-catalog/internal/app/repository"
	"github.com/ikkim/recipe-catalog/internal/db"
	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidRecipe  = errors.New("invalid recipe")
)

// CreateRecipeInput carries already-validated fields for a new recipe.
type CreateRecipeInput struct {
	Title       string
	CookingTime int
	Description string
	Ingredients []string
}

type RecipeService interface {
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*model.Recipe, error)
	ImportRecipes(ctx context.Context, inputs []CreateRecipeInput) ([]model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	ViewRecipe(ctx context.Context, id uint) (*model.Recipe, error)
}

type recipeService struct {
	db             *gorm.DB
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

func NewRecipeService(
	database *gorm.DB,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
) RecipeService {
	return &recipeService{
		db:             database,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*model.Recipe, error) {
	logger.Debug("Creating recipe", map[string]interface{}{
		"title":            input.Title,
		"ingredient_count": len(input.Ingredients),
	})

	var recipe *model.Recipe
	err := db.WithinTransaction(ctx, s.db, func(tx *gorm.DB) error {
		created, err := s.createInTx(tx, input)
		if err != nil {
			return err
		}
		recipe = created
		return nil
	})
	if err != nil {
		logger.Error("Failed to create recipe", err, map[string]interface{}{
			"title": input.Title,
		})
		return nil, err
	}

	recipesCreated.Inc()
	logger.Info("Recipe created", map[string]interface{}{
		"recipe_id":        recipe.ID,
		"ingredient_count": len(recipe.Ingredients),
	})
	return recipe, nil
}

// ImportRecipes creates all inputs in one transaction; one failure discards
// the whole batch.
func (s *recipeService) ImportRecipes(ctx context.Context, inputs []CreateRecipeInput) ([]model.Recipe, error) {
	logger.Info("Importing recipes", map[string]interface{}{
		"count": len(inputs),
	})

	recipes := make([]model.Recipe, 0, len(inputs))
	err := db.WithinTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for i, input := range inputs {
			recipe, err := s.createInTx(tx, input)
			if err != nil {
				return fmt.Errorf("recipe %d (%q): %w", i+1, input.Title, err)
			}
			recipes = append(recipes, *recipe)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to import recipes", err)
		return nil, err
	}

	recipesCreated.Add(float64(len(recipes)))
	logger.Info("Recipes imported", map[string]interface{}{
		"count": len(recipes),
	})
	return recipes, nil
}

func (s *recipeService) createInTx(tx *gorm.DB, input CreateRecipeInput) (*model.Recipe, error) {
	if input.CookingTime <= 0 {
		return nil, fmt.Errorf("%w: cooking time must be positive", ErrInvalidRecipe)
	}

	ingredients, err := s.resolveIngredients(s.ingredientRepo.WithTx(tx), input.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Title:       input.Title,
		CookingTime: input.CookingTime,
		Description: input.Description,
		Views:       0,
		Ingredients: ingredients,
	}
	if err := s.recipeRepo.WithTx(tx).Create(recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// resolveIngredients maps names to stored ingredients in the given order.
// A name listed twice is attached once.
func (s *recipeService) resolveIngredients(repo repository.IngredientRepository, names []string) ([]model.Ingredient, error) {
	seen := make(map[string]struct{}, len(names))
	ingredients := make([]model.Ingredient, 0, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		ingredient, err := repo.FindOrCreateByName(name)
		if err != nil {
			return nil, fmt.Errorf("resolve ingredient %q: %w", name, err)
		}
		ingredients = append(ingredients, *ingredient)
	}
	return ingredients, nil
}

func (s *recipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := db.WithinTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.recipeRepo.WithTx(tx).FindAllByPopularity()
		if err != nil {
			return err
		}
		recipes = found
		return nil
	})
	if err != nil {
		logger.Error("Failed to list recipes", err)
		return nil, err
	}

	logger.Info("Recipes listed", map[string]interface{}{
		"count": len(recipes),
	})
	return recipes, nil
}

// ViewRecipe increments the recipe's view counter and returns it with its
// ingredients. An unknown id returns ErrRecipeNotFound and writes nothing.
func (s *recipeService) ViewRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	logger.Debug("Viewing recipe", map[string]interface{}{
		"recipe_id": id,
	})

	var recipe *model.Recipe
	err := db.WithinTransaction(ctx, s.db, func(tx *gorm.DB) error {
		repo := s.recipeRepo.WithTx(tx)

		found, err := repo.IncrementViews(id)
		if err != nil {
			return err
		}
		if !found {
			return ErrRecipeNotFound
		}

		recipe, err = repo.FindByIDWithIngredients(id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrRecipeNotFound) {
			logger.Warn("Recipe not found", map[string]interface{}{
				"recipe_id": id,
			})
			return nil, ErrRecipeNotFound
		}
		logger.Error("Failed to view recipe", err, map[string]interface{}{
			"recipe_id": id,
		})
		return nil, err
	}

	recipeViews.Inc()
	return recipe, nil
}
