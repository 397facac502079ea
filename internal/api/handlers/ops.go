package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const RevalidateTokenHeader = "x-revalidate-token"

// OpsHandler serves the operational endpoints: client error reports and
// cache revalidation.
type OpsHandler struct {
	commerceService service.CommerceService
	revalidateToken string
	validator       *validator.Validate
	now             func() time.Time
}

func NewOpsHandler(commerceService service.CommerceService, revalidateToken string) *OpsHandler {
	return &OpsHandler{
		commerceService: commerceService,
		revalidateToken: revalidateToken,
		validator:       validator.New(),
		now:             time.Now,
	}
}

// LogClientError godoc
//
//	@Summary	Report a client-side error
//	@Tags		Operations
//	@Accept		json
//	@Produce	json
//	@Param		report	body		models.ClientErrorReport	true	"Error report"
//	@Success	200		{object}	response.APIResponse
//	@Failure	400		{object}	response.ErrorResponse	"Invalid report"
//	@Router		/api/error-logger [post]
func (h *OpsHandler) LogClientError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		log := logger.FromContext(r.Context())

		var report models.ClientErrorReport
		if !utils.ParseAndValidate(r, w, &report, h.validator) {
			return
		}

		if report.Timestamp == "" {
			report.Timestamp = models.ReportTime(h.now().UTC().Format(time.RFC3339))
		}

		log.Error("Client-side error",
			slog.String("message", report.Message),
			slog.String("stack", report.Stack),
			slog.String("url", report.URL),
			slog.String("userAgent", report.UserAgent),
			slog.String("timestamp", string(report.Timestamp)),
		)

		response.Message(w, http.StatusOK, "Error logged successfully")
	}
}

// Revalidate godoc
//
//	@Summary		Invalidate cached catalog data
//	@Description	Drops the product cache when path is "/" or under "/san-pham".
//	@Tags			Operations
//	@Accept			json
//	@Produce		json
//	@Param			x-revalidate-token	header		string						true	"Revalidation token"
//	@Param			request				body		models.RevalidateRequest	true	"Path to revalidate"
//	@Success		200					{object}	response.APIResponse
//	@Failure		400					{object}	response.APIResponse	"Path is required"
//	@Failure		401					{object}	response.ErrorResponse	"Invalid token"
//	@Router			/api/revalidate [post]
func (h *OpsHandler) Revalidate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !h.validToken(r.Header.Get(RevalidateTokenHeader)) {
			logger.FromContext(r.Context()).Warn("Revalidation rejected: invalid token")
			response.Error(w, appErrors.UnauthorizedError("Invalid token"))
			return
		}

		var req models.RevalidateRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Message(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		h.revalidate(w, r, req.Path)
	}
}

// RevalidateQuery godoc
//
//	@Summary	Invalidate cached catalog data (query form)
//	@Tags		Operations
//	@Produce	json
//	@Param		path	query		string	true	"Path to revalidate"
//	@Param		token	query		string	true	"Revalidation token"
//	@Success	200		{object}	response.APIResponse
//	@Failure	400		{object}	response.APIResponse	"Path is required"
//	@Failure	401		{object}	response.ErrorResponse	"Invalid token"
//	@Router		/api/revalidate [get]
func (h *OpsHandler) RevalidateQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if !h.validToken(r.URL.Query().Get("token")) {
			logger.FromContext(r.Context()).Warn("Revalidation rejected: invalid token")
			response.Error(w, appErrors.UnauthorizedError("Invalid token"))
			return
		}

		h.revalidate(w, r, r.URL.Query().Get("path"))
	}
}

func (h *OpsHandler) revalidate(w http.ResponseWriter, r *http.Request, path string) {
	if path == "" {
		response.Message(w, http.StatusBadRequest, "Path is required")
		return
	}

	cleared := h.commerceService.Revalidate(r.Context(), path)

	logger.FromContext(r.Context()).Info("Path revalidated", slog.String("path", path), slog.Bool("cacheCleared", cleared))
	response.Message(w, http.StatusOK, "Revalidated path: "+path)
}

func (h *OpsHandler) validToken(token string) bool {
	if h.revalidateToken == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(h.revalidateToken)) == 1
}
