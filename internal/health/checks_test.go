package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/health"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/repositories/mocks"
	healthgo "github.com/hellofresh/health-go/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewHealthHandler(t *testing.T) {
	tests := []struct {
		name        string
		contentErr  error
		commerceErr error
		want        healthgo.Status
	}{
		{"Both reachable", nil, nil, healthgo.StatusOK},
		{"Commerce down is partial", nil, errors.New("connection refused"), healthgo.StatusPartiallyAvailable},
		{"Content down is unavailable", errors.New("connection refused"), nil, healthgo.StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			content := mocks.NewContentRepository(t)
			commerce := mocks.NewProductRepository(t)
			content.On("Ping", mock.Anything).Return(tt.contentErr)
			commerce.On("Ping", mock.Anything).Return(tt.commerceErr)

			h, err := health.NewHealthHandler("test", &health.Endpoints{Content: content, Commerce: commerce})
			require.NoError(t, err)

			// Act
			check := h.Measure(context.Background())

			// Assert
			assert.Equal(t, tt.want, check.Status)
		})
	}

	t.Run("Missing client is a failure", func(t *testing.T) {
		h, err := health.NewHealthHandler("test", &health.Endpoints{})
		require.NoError(t, err)

		check := h.Measure(context.Background())

		assert.Equal(t, healthgo.StatusUnavailable, check.Status)
		assert.Contains(t, check.Failures["content-api"], "not initialized")
	})
}
