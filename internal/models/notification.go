package models

import (
	"bytes"
	"encoding/json"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,min=9,max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type EmailMessage struct {
	To          string   `json:"to" validate:"required,email"`
	CC          []string `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	ReplyTo     string   `json:"reply_to,omitempty" validate:"omitempty,email"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
}

// ClientErrorReport is posted by the browser when a page script fails.
type ClientErrorReport struct {
	Message   string     `json:"message" validate:"required,max=2000"`
	Stack     string     `json:"stack,omitempty" validate:"max=20000"`
	URL       string     `json:"url,omitempty" validate:"max=2000"`
	UserAgent string     `json:"userAgent,omitempty" validate:"max=1000"`
	Timestamp ReportTime `json:"timestamp,omitempty" validate:"max=100"`
}

// ReportTime is the timestamp exactly as the browser sent it: an ISO
// string, a Date.toString() string or an epoch number.
type ReportTime string

func (t *ReportTime) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)

	if bytes.Equal(raw, []byte("null")) {
		*t = ""

		return nil
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}

		*t = ReportTime(s)

		return nil
	}

	*t = ReportTime(raw)

	return nil
}

type RevalidateRequest struct {
	Path string `json:"path"`
}
