package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	t.Run("Generates a correlation id and records the status", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		base := slog.New(slog.NewJSONHandler(&buf, nil))

		var requestLogger *slog.Logger
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger = logger.FromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/san-pham", nil)

		// Act
		Logging(base)(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
		require.NotNil(t, requestLogger)
		assert.NotSame(t, base, requestLogger)
		assert.Contains(t, buf.String(), `"http_status":418`)
		assert.Contains(t, buf.String(), `"http_path":"/san-pham"`)
		assert.Contains(t, buf.String(), rr.Header().Get(RequestIDHeader))
	})

	t.Run("Keeps an incoming request id", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		base := slog.New(slog.NewJSONHandler(&buf, nil))
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")

		// Act
		Logging(base)(next).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"correlation_id":"req-123"`)
	})

	t.Run("Falls back to the default logger", func(t *testing.T) {
		rr := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			Logging(nil)(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
		})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
