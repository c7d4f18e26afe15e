package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("iga_http")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "iga_http"))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/v1/identities/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.POST("/v1/identities", func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	})

	for _, path := range []string{"/v1/identities/1", "/v1/identities/2", "/v1/identities/3", "/health"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/identities", nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	output := scrape(t, provider)

	assertMetricLine(t, output, `iga_http_http_requests_total`,
		`method="GET".*path="/v1/identities/:id".*status_code="200"`, `3`)
	assertMetricLine(t, output, `iga_http_http_requests_total`,
		`method="POST".*path="/v1/identities".*status_code="409"`, `1`)
	assertMetricLine(t, output, `iga_http_http_requests_total`,
		`path="unknown".*status_code="404"`, `1`)
	assert.NotContains(t, output, `path="/health"`)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/v1/roles/:role/identities", routeLabel("/v1/roles/:role/identities"))
	assert.Equal(t, "unknown", routeLabel(""))
	assert.Equal(t, "/", routeLabel("/"))
}
