package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCORSRouter(enabled bool, origins string) *gin.Engine {
	router := gin.New()
	if middleware := createCORSMiddleware(enabled, origins, "X-User-Role", discardLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.GET("/v1/entitlements", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})
	router.PATCH("/v1/identities/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	assert.Nil(t, createCORSMiddleware(false, "https://hr.example.com", "X-User-Role", discardLogger()))
	assert.Nil(t, createCORSMiddleware(true, "", "X-User-Role", discardLogger()))
	assert.Nil(t, createCORSMiddleware(true, " , ", "X-User-Role", discardLogger()))
	assert.NotNil(t, createCORSMiddleware(true, "https://hr.example.com", "X-User-Role", discardLogger()))
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"https://hr.example.com", "https://admin.example.com"},
		parseOrigins(" https://hr.example.com , https://admin.example.com,"),
	)
	assert.Nil(t, parseOrigins(""))
}

func TestAllowHeaders(t *testing.T) {
	assert.Equal(t, []string{"Content-Type", "X-Groups"}, allowHeaders(" X-Groups "))
	assert.Equal(t, []string{"Content-Type"}, allowHeaders(""))
}

func TestCORSIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("HeadersAddedWhenEnabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/entitlements", nil)
		req.Header.Set("Origin", "https://hr.example.com")
		newCORSRouter(true, "https://hr.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://hr.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("NoHeadersWhenDisabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/entitlements", nil)
		req.Header.Set("Origin", "https://hr.example.com")
		newCORSRouter(false, "https://hr.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("PreflightAllowsPatchAndRoleHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/identities/1", nil)
		req.Header.Set("Origin", "https://hr.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		req.Header.Set("Access-Control-Request-Headers", "X-User-Role")
		newCORSRouter(true, "https://hr.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-User-Role")
	})
}
