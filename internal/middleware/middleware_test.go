package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiddlewareTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggingMiddleware(), MetricsMiddleware())
	router.GET("/recipes/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"request_id": GetRequestID(c),
			"has_logger": GetLoggerFromContext(c) != nil,
		})
	})
	return router
}

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	router := setupMiddlewareTest()

	req := httptest.NewRequest(http.MethodGet, "/recipes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Contains(t, w.Body.String(), requestID)
}

func TestLoggingMiddleware_KeepsCallerRequestID(t *testing.T) {
	router := setupMiddlewareTest()

	req := httptest.NewRequest(http.MethodGet, "/recipes/1", nil)
	req.Header.Set(RequestIDHeader, "trace-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, GetLoggerFromContext(c))
	assert.Empty(t, GetRequestID(c))
}

func TestMetricsMiddleware_CountsByRouteTemplate(t *testing.T) {
	router := setupMiddlewareTest()
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/recipes/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/recipes/1", "/recipes/2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	router := setupMiddlewareTest()
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
