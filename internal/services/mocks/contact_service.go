package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// ContactService is a mock type for the ContactService type
type ContactService struct {
	mock.Mock
}

func (_m *ContactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	ret := _m.Called(ctx, req)

	return ret.Error(0)
}

// NewContactService creates a new instance of ContactService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContactService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContactService {
	m := &ContactService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
