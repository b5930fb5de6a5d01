package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikkim/recipe-catalog/config"
	"github.com/ikkim/recipe-catalog/internal/app/controller"
	"github.com/ikkim/recipe-catalog/internal/app/repository"
	"github.com/ikkim/recipe-catalog/internal/app/service"
	"github.com/ikkim/recipe-catalog/internal/db"
	"github.com/ikkim/recipe-catalog/internal/router"
	"github.com/ikkim/recipe-catalog/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: cfg.Server.Environment == "development",
	})

	logger.Info("Starting Recipe Catalog Server", logger.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"db_driver":   cfg.Database.Driver,
		"log_level":   cfg.Log.Level,
	})

	// Initialize database
	database, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if cfg.Database.SeedOnStartup {
		if err := db.Seed(context.Background(), database); err != nil {
			logger.Warn("Failed to seed database", logger.Fields{
				"error": err.Error(),
			})
		}
	}

	// Initialize repositories
	recipeRepo := repository.NewRecipeRepository(database)
	ingredientRepo := repository.NewIngredientRepository(database)

	// Initialize services
	recipeService := service.NewRecipeService(database, recipeRepo, ingredientRepo)

	// Initialize controllers
	recipeController := controller.NewRecipeController(recipeService)

	// Setup router
	r := router.NewRouter(
		recipeController,
		func(ctx context.Context) error { return db.Ping(ctx, database) },
		cfg,
	)
	engine := r.Setup()

	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: engine,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started successfully", logger.Fields{
			"address": server.Addr,
			"pid":     os.Getpid(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...", logger.Fields{
		"timeout": cfg.Server.ShutdownTimeout.String(),
	})
	shutdown(server, cfg)
	logger.Info("Server stopped successfully")
}

func shutdown(server *http.Server, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
}
