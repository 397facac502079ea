package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
)

const (
	DefaultProductsPerPage   = 12
	DefaultCategoriesPerPage = 100
)

// ProductRepository reads the WooCommerce v3 REST API.
type ProductRepository interface {
	ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductList, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	FindProductsBySlug(ctx context.Context, slug string) ([]models.Product, error)
	ListCategories(ctx context.Context, query models.CategoryQuery) (*models.CategoryList, error)
	Ping(ctx context.Context) error
}

type productRepository struct {
	api *upstream
}

// NewProductRepo builds a repository rooted at the versioned WooCommerce
// base URL (…/wp-json/wc/v3). editors typically carry QueryCredentials.
func NewProductRepo(baseURL string, client *http.Client, editors ...RequestEditor) ProductRepository {
	return &productRepository{api: newUpstream("commerce", baseURL, client, editors...)}
}

func (r *productRepository) ListProducts(ctx context.Context, query models.ProductQuery) (*models.ProductList, error) {
	var products []models.Product

	header, err := r.api.get(ctx, "/products", productParams(query), &products)
	if err != nil {
		return nil, err
	}

	totalPages, total := parseTotals(header)

	if products == nil {
		products = []models.Product{}
	}

	return &models.ProductList{Products: products, TotalPages: totalPages, Total: total}, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product

	if _, err := r.api.get(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) FindProductsBySlug(ctx context.Context, slug string) ([]models.Product, error) {
	var products []models.Product

	if _, err := r.api.get(ctx, "/products", url.Values{"slug": {slug}}, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) ListCategories(ctx context.Context, query models.CategoryQuery) (*models.CategoryList, error) {
	var categories []models.ProductCategory

	header, err := r.api.get(ctx, "/products/categories", categoryParams(query), &categories)
	if err != nil {
		return nil, err
	}

	totalPages, total := parseTotals(header)

	if categories == nil {
		categories = []models.ProductCategory{}
	}

	return &models.CategoryList{Categories: categories, TotalPages: totalPages, Total: total}, nil
}

func (r *productRepository) Ping(ctx context.Context) error {
	_, err := r.api.get(ctx, "/products", url.Values{"per_page": {"1"}}, nil)

	return err
}

// productParams applies the page=1/per_page=12 defaults; every other
// filter is sent only when set.
func productParams(q models.ProductQuery) url.Values {
	params := url.Values{}

	params.Set("page", strconv.Itoa(intOr(q.Page, 1)))
	params.Set("per_page", strconv.Itoa(intOr(q.PerPage, DefaultProductsPerPage)))

	if q.Category != nil {
		params.Set("category", strconv.FormatInt(*q.Category, 10))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.OrderBy != "" {
		params.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Featured != nil {
		params.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.OnSale != nil {
		params.Set("on_sale", strconv.FormatBool(*q.OnSale))
	}
	if q.Slug != "" {
		params.Set("slug", q.Slug)
	}

	return params
}

// categoryParams applies the page=1/per_page=100/hide_empty=true defaults.
func categoryParams(q models.CategoryQuery) url.Values {
	params := url.Values{}

	params.Set("page", strconv.Itoa(intOr(q.Page, 1)))
	params.Set("per_page", strconv.Itoa(intOr(q.PerPage, DefaultCategoriesPerPage)))

	hideEmpty := true
	if q.HideEmpty != nil {
		hideEmpty = *q.HideEmpty
	}
	params.Set("hide_empty", strconv.FormatBool(hideEmpty))

	if q.Parent != nil {
		params.Set("parent", strconv.FormatInt(*q.Parent, 10))
	}
	if q.OrderBy != "" {
		params.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}

	return params
}

func intOr(v *int, fallback int) int {
	if v == nil || *v <= 0 {
		return fallback
	}

	return *v
}
