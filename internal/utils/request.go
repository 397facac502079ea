package utils

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the JSON body into dest and validates it. On
// failure the error response is already written and false is returned.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
		} else {
			response.Error(w, appErrors.BadRequestError("Invalid input data"))
		}

		return false
	}

	return true
}

// QueryInt reads a positive integer query parameter. Missing, malformed
// or non-positive values yield fallback.
func QueryInt(r *http.Request, name string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

// QueryIntPtr is QueryInt for optional parameters: nil when absent or
// invalid.
func QueryIntPtr(r *http.Request, name string) *int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n <= 0 {
		return nil
	}

	return &n
}

func QueryInt64Ptr(r *http.Request, name string) *int64 {
	n, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || n < 0 {
		return nil
	}

	return &n
}

func QueryBoolPtr(r *http.Request, name string) *bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}

	return &b
}

// QueryText reads a trimmed free-text query parameter, cut to at most
// maxRunes runes.
func QueryText(r *http.Request, name string, maxRunes int) string {
	text := strings.TrimSpace(r.URL.Query().Get(name))

	if runes := []rune(text); len(runes) > maxRunes {
		text = strings.TrimSpace(string(runes[:maxRunes]))
	}

	return text
}

// PathID parses a positive int64 path value.
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError("Invalid " + name)
	}

	return id, nil
}
