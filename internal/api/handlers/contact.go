package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

// Submit godoc
//
//	@Summary		Submit the contact form
//	@Description	Validates the form and emails it to the site owner.
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			contact	body		models.ContactRequest	true	"Contact form"
//	@Success		200		{object}	response.APIResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Email delivery failed"
//	@Router			/api/contact [post]
func (h *ContactHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		log := logger.FromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			log.Warn("Invalid contact form input")
			return
		}

		if err := h.contactService.Submit(r.Context(), &req); err != nil {
			log.Error("Failed to submit contact form", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		log.Info("Contact form submitted", slog.String("email", req.Email))
		response.Message(w, http.StatusOK, "Cảm ơn bạn đã liên hệ. Chúng tôi sẽ phản hồi sớm nhất có thể.")
	}
}
