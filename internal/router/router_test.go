package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/recipe-catalog/config"
	"github.com/ikkim/recipe-catalog/internal/app/controller"
	"github.com/ikkim/recipe-catalog/internal/app/repository"
	"github.com/ikkim/recipe-catalog/internal/app/service"
	"github.com/ikkim/recipe-catalog/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{GinMode: gin.TestMode},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func setupRouterTest(t *testing.T, health HealthChecker) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	recipeService := service.NewRecipeService(
		testDB,
		repository.NewRecipeRepository(testDB),
		repository.NewIngredientRepository(testDB),
	)
	return NewRouter(controller.NewRecipeController(recipeService), health, testConfig()).Setup()
}

func TestRouter_Health(t *testing.T) {
	engine := setupRouterTest(t, func(ctx context.Context) error { return nil })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRouter_HealthUnavailable(t *testing.T) {
	engine := setupRouterTest(t, func(ctx context.Context) error { return errors.New("down") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

func TestRouter_RecipeRoutes(t *testing.T) {
	engine := setupRouterTest(t, nil)

	body := `{"title":"Toast","cooking_time":3,"description":"Toast bread","ingredients":["Bread"]}`
	req := httptest.NewRequest(http.MethodPost, "/recipes/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Toast","cooking_time":3,"views":1}]`, w.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	engine := setupRouterTest(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/recipes/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	engine := setupRouterTest(t, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipes_http_requests_total")
}
