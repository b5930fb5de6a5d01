package db

import (
	"fmt"

	"github.com/ikkim/recipe-catalog/internal/app/model"
	"github.com/ikkim/recipe-catalog/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := database.SetupJoinTable(&model.Recipe{}, "Ingredients", &model.RecipeIngredient{}); err != nil {
		logger.Error("Failed to set up recipe_ingredients join table", err)
		return fmt.Errorf("setup join table: %w", err)
	}

	models := []interface{}{
		&model.Ingredient{},
		&model.Recipe{},
	}

	if err := database.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
