package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/services/mocks"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	validRequest := models.ContactRequest{
		Name:    "Nguyễn Văn A",
		Email:   "a@example.com",
		Phone:   "0123456789",
		Subject: "Báo giá máy in",
		Message: "Vui lòng gửi báo giá máy in laser.",
	}

	t.Run("Success - Email Sent", func(t *testing.T) {
		// Arrange
		contactService := mocks.NewContactService(t)
		handler := handlers.NewContactHandler(contactService)

		body, _ := json.Marshal(validRequest)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/contact", bytes.NewReader(body), nil)
		req.Header.Set("Content-Type", "application/json")

		contactService.On("Submit", mock.Anything, &validRequest).Return(nil).Once()

		// Act
		handler.Submit().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)
		assert.NotEmpty(t, env.Message)
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		contactService := mocks.NewContactService(t)
		handler := handlers.NewContactHandler(contactService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{invalid json")), nil)

		handler.Submit().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		contactService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input - Validation Error", func(t *testing.T) {
		contactService := mocks.NewContactService(t)
		handler := handlers.NewContactHandler(contactService)

		invalid := validRequest
		invalid.Email = "not-an-email"
		invalid.Message = "short"
		body, _ := json.Marshal(invalid)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/contact", bytes.NewReader(body), nil)

		handler.Submit().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		assert.Contains(t, env.Error.Details, "Field Email must be a valid email address")
		assert.Contains(t, env.Error.Details, "Field Message must be at least 10 characters")
		contactService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		contactService := mocks.NewContactService(t)
		handler := handlers.NewContactHandler(contactService)

		body, _ := json.Marshal(validRequest)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodPost, "/api/contact", bytes.NewReader(body), nil)

		contactService.On("Submit", mock.Anything, &validRequest).Return(appErrors.ThirdPartyError("Failed to send contact email")).Once()

		handler.Submit().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, env.Error.Code)
	})
}
