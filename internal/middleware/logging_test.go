package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "inside handler")
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))
}
