package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// CommerceService is a mock type for the CommerceService type
type CommerceService struct {
	mock.Mock
}

func (_m *CommerceService) GetProducts(ctx context.Context, query models.ProductQuery) *models.ProductList {
	ret := _m.Called(ctx, query)

	var r0 *models.ProductList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.ProductList)
	}

	return r0
}

func (_m *CommerceService) GetProduct(ctx context.Context, id int64, skipCache bool) *models.Product {
	ret := _m.Called(ctx, id, skipCache)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0
}

func (_m *CommerceService) GetProductBySlug(ctx context.Context, slug string, skipCache bool) *models.Product {
	ret := _m.Called(ctx, slug, skipCache)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0
}

func (_m *CommerceService) GetProductCategories(ctx context.Context, query models.CategoryQuery) *models.CategoryList {
	ret := _m.Called(ctx, query)

	var r0 *models.CategoryList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CategoryList)
	}

	return r0
}

func (_m *CommerceService) GetRelatedProducts(ctx context.Context, id int64, limit int, skipCache bool) []models.Product {
	ret := _m.Called(ctx, id, limit, skipCache)

	var r0 []models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Product)
	}

	return r0
}

func (_m *CommerceService) Revalidate(ctx context.Context, path string) bool {
	ret := _m.Called(ctx, path)

	return ret.Bool(0)
}

// NewCommerceService creates a new instance of CommerceService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCommerceService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommerceService {
	m := &CommerceService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
