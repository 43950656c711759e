//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawsalon/internal/handler/middleware"
	"pawsalon/internal/pkg/config"
	testhttp "pawsalon/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02T15:04:05Z07:00"})

	var seen string
	engine := gin.New()
	engine.Use(logger.Middleware())
	engine.GET("/t", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))

		testhttp.AssertGeneratedRequestID(t, w)
		assert.Equal(t, seen, w.Header().Get(testhttp.RequestIDHeader))
	})

	t.Run("propagated from caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", testhttp.AssertRequestID(t, w))
	})
}
