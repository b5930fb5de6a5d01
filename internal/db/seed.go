package db

import (
	"context"
	"fmt"

	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
)

type sampleRecipe struct {
	id          uint
	title       string
	cookingTime int
	description string
	ingredients []string
}

var sampleRecipes = []sampleRecipe{
	{
		id:          1,
		title:       "Cucumber and tomato salad",
		cookingTime: 7,
		description: "Wash the cucumber, tomato and onion and cut them into medium pieces. " +
			"Add mayonnaise and salt, then mix.",
		ingredients: []string{"Cucumber", "Tomato", "Salt"},
	},
	{
		id:          2,
		title:       "Fried dumplings",
		cookingTime: 15,
		description: "Put frozen dumplings into a pan greased with butter. " +
			"Fry for 15 minutes on both sides over medium heat.",
		ingredients: []string{"Dumplings", "Butter"},
	},
	{
		id:          3,
		title:       "Oatmeal porridge",
		cookingTime: 25,
		description: "Put oat flakes and milk in a pot at a 1:3 ratio and simmer for 20 minutes over low heat. " +
			"Turn off the heat and let it rest covered for 5 minutes. Add a piece of butter.",
		ingredients: []string{"Oat flakes", "Milk", "Butter"},
	},
}

// Seed inserts the sample recipes when the recipes table is empty.
func Seed(ctx context.Context, database *gorm.DB) error {
	logger.Info("Seeding initial data...")

	return WithinTransaction(ctx, database, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Recipe{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			logger.Info("Recipes already seeded, skipping...", map[string]interface{}{
				"existing_count": count,
			})
			return nil
		}

		ingredients, err := seedIngredients(tx)
		if err != nil {
			return err
		}

		recipes := make([]model.Recipe, 0, len(sampleRecipes))
		for _, sample := range sampleRecipes {
			recipe := model.Recipe{
				ID:          sample.id,
				Title:       sample.title,
				CookingTime: sample.cookingTime,
				Description: sample.description,
			}
			for _, name := range sample.ingredients {
				recipe.Ingredients = append(recipe.Ingredients, ingredients[name])
			}
			recipes = append(recipes, recipe)
		}

		if err := tx.Create(&recipes).Error; err != nil {
			logger.Error("Failed to seed recipes", err)
			return fmt.Errorf("seed recipes: %w", err)
		}

		if err := syncRecipeSequence(tx); err != nil {
			return err
		}

		logger.Info("Initial data seeded successfully", map[string]interface{}{
			"recipes":     len(recipes),
			"ingredients": len(ingredients),
		})
		return nil
	})
}

// seedIngredients reuses existing rows by name and inserts the rest.
func seedIngredients(tx *gorm.DB) (map[string]model.Ingredient, error) {
	byName := make(map[string]model.Ingredient)
	for _, sample := range sampleRecipes {
		for _, name := range sample.ingredients {
			if _, ok := byName[name]; ok {
				continue
			}
			ingredient := model.Ingredient{Name: name}
			if err := tx.Where(model.Ingredient{Name: name}).FirstOrCreate(&ingredient).Error; err != nil {
				logger.Error("Failed to seed ingredient", err, map[string]interface{}{
					"name": name,
				})
				return nil, fmt.Errorf("seed ingredient %q: %w", name, err)
			}
			byName[name] = ingredient
		}
	}
	return byName, nil
}

// syncRecipeSequence moves the PostgreSQL id sequence past explicitly
// inserted ids so the next generated id does not collide.
func syncRecipeSequence(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	err := tx.Exec("SELECT setval(pg_get_serial_sequence('recipes', 'id'), (SELECT MAX(id) FROM recipes))").Error
	if err != nil {
		return fmt.Errorf("sync recipes id sequence: %w", err)
	}
	return nil
}
