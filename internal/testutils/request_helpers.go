package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
)

// CreateTestRequest builds a request carrying a discarding request logger
// and the given path values.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(logger.WithContext(req.Context(), log))
}
