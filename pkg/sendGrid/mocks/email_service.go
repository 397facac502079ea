package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

// EmailService is a mock type for the EmailService type
type EmailService struct {
	mock.Mock
}

func (_m *EmailService) Send(ctx context.Context, msg *models.EmailMessage) error {
	ret := _m.Called(ctx, msg)

	return ret.Error(0)
}

func (_m *EmailService) GetSendGridClient() *sendgrid.Client {
	ret := _m.Called()

	var r0 *sendgrid.Client
	if v := ret.Get(0); v != nil {
		r0 = v.(*sendgrid.Client)
	}

	return r0
}
