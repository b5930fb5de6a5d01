package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ikkim/recipe-catalog/config"
	"github.com/ikkim/recipe-catalog/internal/app/controller"
	"github.com/ikkim/recipe-catalog/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker func(ctx context.Context) error

type Router struct {
	recipeController *controller.RecipeController
	healthCheck      HealthChecker
	config           *config.Config
}

func NewRouter(
	recipeController *controller.RecipeController,
	healthCheck HealthChecker,
	cfg *config.Config,
) *Router {
	return &Router{
		recipeController: recipeController,
		healthCheck:      healthCheck,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	if r.config.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware())
		router.GET(r.config.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if len(r.config.CORS.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	}

	router.GET("/health", r.health)

	recipes := router.Group("/recipes")
	{
		recipes.POST("/", r.recipeController.CreateRecipe)
		recipes.GET("/", r.recipeController.ListRecipes)
		recipes.GET("/:id", r.recipeController.GetRecipe)
	}

	return router
}

func (r *Router) health(c *gin.Context) {
	if r.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := r.healthCheck(ctx); err != nil {
			middleware.GetLoggerFromContext(c).Error("Health check failed", err, nil)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "database unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe API is running",
	})
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Accept", "Origin", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			cfg.AllowOriginFunc = func(string) bool { return true }
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = allowedOrigins
	return cors.New(cfg)
}
