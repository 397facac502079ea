package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/aaravmahajanofficial/saonamtg-web/pkg/sendGrid"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.ContactRequest) error
}

type contactService struct {
	emailService sendGrid.EmailService
	recipient    string
}

// NewContactService forwards contact form submissions to recipient. With a
// nil emailService submissions are only logged.
func NewContactService(emailService sendGrid.EmailService, recipient string) ContactService {
	return &contactService{emailService: emailService, recipient: recipient}
}

func (c *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	log := logger.FromContext(ctx).With(slog.String("contactEmail", req.Email))

	if c.emailService == nil || c.recipient == "" {
		log.Info("Contact form received, email delivery disabled",
			slog.String("name", req.Name),
			slog.String("subject", req.Subject))

		return nil
	}

	if err := c.emailService.Send(ctx, ContactEmail(req, c.recipient)); err != nil {
		log.Error("Failed to send contact email", slog.Any("error", err))

		return appErrors.ThirdPartyError("Failed to send contact email").WithError(err)
	}

	log.Info("Contact email sent")

	return nil
}

// ContactEmail renders a submission as the notification sent to the site
// owner; replies go straight to the visitor.
func ContactEmail(req *models.ContactRequest, recipient string) *models.EmailMessage {
	phone := req.Phone
	if phone == "" {
		phone = "-"
	}

	text := fmt.Sprintf("Họ và tên: %s\nEmail: %s\nSố điện thoại: %s\nChủ đề: %s\n\n%s",
		req.Name, req.Email, phone, req.Subject, req.Message)

	htmlBody := fmt.Sprintf(
		"<p><strong>Họ và tên:</strong> %s<br><strong>Email:</strong> %s<br><strong>Số điện thoại:</strong> %s<br><strong>Chủ đề:</strong> %s</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(phone),
		html.EscapeString(req.Subject),
		strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"),
	)

	return &models.EmailMessage{
		To:          recipient,
		ReplyTo:     req.Email,
		Subject:     "[Liên hệ] " + req.Subject,
		Content:     text,
		HTMLContent: htmlBody,
	}
}
