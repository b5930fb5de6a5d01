package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ikkim/recipe-catalog/config"
	"github.com/ikkim/recipe-catalog/internal/app/repository"
	"github.com/ikkim/recipe-catalog/internal/app/service"
	"github.com/ikkim/recipe-catalog/internal/db"
	"github.com/ikkim/recipe-catalog/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/seed/main.go <xlsx_file_path> [-y]")
		os.Exit(2)
	}

	filePath := os.Args[1]
	assumeYes := len(os.Args) > 2 && os.Args[2] == "-y"

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	database, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close(database)

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	logger.Info("Reading XLSX file", logger.Fields{"path": filePath})
	inputs, err := readRecipesFromXLSX(filePath)
	if err != nil {
		logger.Fatal("Failed to read XLSX", err)
	}

	fmt.Printf("Total recipes to import: %d\n", len(inputs))

	if !assumeYes {
		fmt.Print("Do you want to proceed with the import? (yes/no): ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "yes" && confirm != "y" {
			fmt.Println("Import cancelled.")
			return
		}
	}

	recipeService := service.NewRecipeService(
		database,
		repository.NewRecipeRepository(database),
		repository.NewIngredientRepository(database),
	)

	recipes, err := recipeService.ImportRecipes(context.Background(), inputs)
	if err != nil {
		logger.Fatal("Failed to import recipes", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total recipes imported: %d\n", len(recipes))
}
