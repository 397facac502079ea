package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductList, error) {
	ret := _m.Called(ctx, query)

	var r0 *models.ProductList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.ProductList)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) FindProductsBySlug(ctx context.Context, slug string) ([]models.Product, error) {
	ret := _m.Called(ctx, slug)

	var r0 []models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) ListCategories(ctx context.Context, query models.CategoryQuery) (*models.CategoryList, error) {
	ret := _m.Called(ctx, query)

	var r0 *models.CategoryList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.CategoryList)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

// NewProductRepository creates a new instance of ProductRepository and
// registers a cleanup that asserts the expectations.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
