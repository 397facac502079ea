package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/cache"
	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newCommerce(t *testing.T) (service.CommerceService, *mocks.ProductRepository, *cache.TTLCache, *clock) {
	t.Helper()

	clk := &clock{now: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
	store := cache.NewTTLCache(cache.WithClock(clk.Now))
	repo := mocks.NewProductRepository(t)

	return service.NewCommerceService(repo, store), repo, store, clk
}

func sampleProducts(ids ...int64) []models.Product {
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, models.Product{ID: id, Name: "Sản phẩm", Categories: []models.ProductTermRef{{ID: 7}}})
	}

	return products
}

func TestGetProducts(t *testing.T) {
	t.Run("Success - Cached after first fetch", func(t *testing.T) {
		// Arrange
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()
		query := models.ProductQuery{Page: models.IntPtr(2)}
		expected := &models.ProductList{Products: sampleProducts(1, 2), TotalPages: 3, Total: 26}

		repo.On("ListProducts", mock.Anything, query).Return(expected, nil).Once()

		// Act
		first := commerce.GetProducts(ctx, query)
		second := commerce.GetProducts(ctx, query)

		// Assert
		assert.Equal(t, expected, first)
		assert.Equal(t, expected, second)
		assert.True(t, store.Has(`products_{"page":2}`))
	})

	t.Run("Entry expires after five minutes", func(t *testing.T) {
		commerce, repo, _, clk := newCommerce(t)
		ctx := t.Context()
		query := models.ProductQuery{}

		repo.On("ListProducts", mock.Anything, query).Return(&models.ProductList{Products: sampleProducts(1), TotalPages: 1, Total: 1}, nil).Twice()

		commerce.GetProducts(ctx, query)
		clk.Advance(service.ProductsTTL)
		commerce.GetProducts(ctx, query)
		clk.Advance(time.Second)
		commerce.GetProducts(ctx, query)
	})

	t.Run("skipCache neither reads nor writes the cache", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()
		query := models.ProductQuery{SkipCache: true}

		repo.On("ListProducts", mock.Anything, query).Return(&models.ProductList{Products: sampleProducts(1)}, nil).Twice()

		commerce.GetProducts(ctx, query)
		commerce.GetProducts(ctx, query)

		assert.Zero(t, store.Size())
	})

	t.Run("Failure - Upstream error yields empty result", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()
		query := models.ProductQuery{}

		repo.On("ListProducts", mock.Anything, query).Return(nil, appErrors.UpstreamError("commerce API responded with status 500")).Twice()

		// Act
		list := commerce.GetProducts(ctx, query)
		commerce.GetProducts(ctx, query)

		// Assert
		require.NotNil(t, list)
		assert.NotNil(t, list.Products)
		assert.Empty(t, list.Products)
		assert.Zero(t, list.TotalPages)
		assert.Zero(t, list.Total)
		assert.Zero(t, store.Size(), "failures are not cached")
	})

	t.Run("Concurrent misses share one upstream call", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)
		ctx := t.Context()
		query := models.ProductQuery{Search: "máy in"}

		repo.On("ListProducts", mock.Anything, query).
			Run(func(mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
			Return(&models.ProductList{Products: sampleProducts(1), TotalPages: 1, Total: 1}, nil).Once()

		var wg sync.WaitGroup
		results := make([]*models.ProductList, 10)

		for i := range results {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()
				results[i] = commerce.GetProducts(ctx, query)
			}(i)
		}

		wg.Wait()

		for _, r := range results {
			require.NotNil(t, r)
			assert.Equal(t, 1, r.Total)
		}
	})

	t.Run("Cancelled caller does not fail a shared load", func(t *testing.T) {
		// Arrange
		commerce, repo, store, _ := newCommerce(t)
		query := models.ProductQuery{Search: "máy chiếu"}
		expected := &models.ProductList{Products: sampleProducts(1, 2), TotalPages: 1, Total: 2}

		started := make(chan struct{})
		release := make(chan struct{})

		var loadCtx context.Context

		repo.On("ListProducts", mock.Anything, query).
			Run(func(args mock.Arguments) {
				loadCtx = args.Get(0).(context.Context)
				close(started)
				<-release
			}).
			Return(expected, nil).Once()

		firstCtx, cancel := context.WithCancel(t.Context())

		first := make(chan *models.ProductList, 1)
		go func() { first <- commerce.GetProducts(firstCtx, query) }()
		<-started

		second := make(chan *models.ProductList, 1)
		go func() { second <- commerce.GetProducts(context.Background(), query) }()
		time.Sleep(20 * time.Millisecond)

		// Act
		cancel()
		abandoned := <-first
		close(release)
		joined := <-second

		// Assert
		assert.Empty(t, abandoned.Products)
		require.NotNil(t, loadCtx)
		assert.NoError(t, loadCtx.Err())
		assert.Equal(t, expected, joined)
		assert.Eventually(t, func() bool {
			return store.Has(cache.ProductsKey(query))
		}, time.Second, 5*time.Millisecond)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Cached", func(t *testing.T) {
		commerce, repo, store, clk := newCommerce(t)
		ctx := t.Context()
		product := &models.Product{ID: 42, Name: "Máy in Canon"}

		repo.On("GetProductByID", mock.Anything, int64(42)).Return(product, nil).Once()

		assert.Equal(t, product, commerce.GetProduct(ctx, 42, false))
		clk.Advance(service.ProductTTL)
		assert.Equal(t, product, commerce.GetProduct(ctx, 42, false))
		assert.True(t, store.Has("product_42"))
	})

	t.Run("Not found", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)

		repo.On("GetProductByID", mock.Anything, int64(404)).Return(nil, appErrors.NotFoundError("commerce API resource not found")).Once()

		assert.Nil(t, commerce.GetProduct(t.Context(), 404, false))
		assert.Zero(t, store.Size())
	})

	t.Run("Failure - Upstream error", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)

		repo.On("GetProductByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset")).Once()

		assert.Nil(t, commerce.GetProduct(t.Context(), 1, false))
	})
}

func TestGetProductBySlug(t *testing.T) {
	t.Run("Success - Exact slug match", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()

		repo.On("FindProductsBySlug", mock.Anything, "may-in").Return([]models.Product{
			{ID: 1, Slug: "may-in-2"},
			{ID: 2, Slug: "may-in"},
		}, nil).Once()

		product := commerce.GetProductBySlug(ctx, "may-in", false)
		cached := commerce.GetProductBySlug(ctx, "may-in", false)

		require.NotNil(t, product)
		assert.Equal(t, int64(2), product.ID)
		assert.Equal(t, product, cached)
		assert.True(t, store.Has("product_slug_may-in"))
	})

	t.Run("Missing product is not cached", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()

		repo.On("FindProductsBySlug", mock.Anything, "khong-co").Return([]models.Product{}, nil).Twice()

		assert.Nil(t, commerce.GetProductBySlug(ctx, "khong-co", false))
		assert.Nil(t, commerce.GetProductBySlug(ctx, "khong-co", false))
		assert.Zero(t, store.Size())
	})

	t.Run("Failure - Upstream error", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)

		repo.On("FindProductsBySlug", mock.Anything, "may-in").Return(nil, appErrors.UpstreamError("commerce API request failed")).Once()

		assert.Nil(t, commerce.GetProductBySlug(t.Context(), "may-in", false))
	})
}

func TestGetProductCategories(t *testing.T) {
	t.Run("Success - Cached for fifteen minutes", func(t *testing.T) {
		commerce, repo, _, clk := newCommerce(t)
		ctx := t.Context()
		query := models.CategoryQuery{}
		expected := &models.CategoryList{Categories: []models.ProductCategory{{ID: 7, Slug: "may-in"}}, TotalPages: 1, Total: 1}

		repo.On("ListCategories", mock.Anything, query).Return(expected, nil).Twice()

		assert.Equal(t, expected, commerce.GetProductCategories(ctx, query))
		clk.Advance(service.CategoriesTTL)
		assert.Equal(t, expected, commerce.GetProductCategories(ctx, query))
		clk.Advance(time.Second)
		assert.Equal(t, expected, commerce.GetProductCategories(ctx, query))
	})

	t.Run("Failure - Upstream error", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)
		query := models.CategoryQuery{HideEmpty: models.BoolPtr(false)}

		repo.On("ListCategories", mock.Anything, query).Return(nil, errors.New("timeout")).Once()

		list := commerce.GetProductCategories(t.Context(), query)

		require.NotNil(t, list)
		assert.Empty(t, list.Categories)
		assert.Zero(t, list.TotalPages)
	})
}

func TestGetRelatedProducts(t *testing.T) {
	relatedQuery := func(category int64, perPage int) models.ProductQuery {
		return models.ProductQuery{Category: models.Int64Ptr(category), PerPage: models.IntPtr(perPage)}
	}

	t.Run("Success - First category, source product dropped", func(t *testing.T) {
		// Arrange
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()
		product := &models.Product{ID: 3, Categories: []models.ProductTermRef{{ID: 7}, {ID: 8}}}

		repo.On("GetProductByID", mock.Anything, int64(3)).Return(product, nil).Once()
		repo.On("ListProducts", mock.Anything, relatedQuery(7, 5)).
			Return(&models.ProductList{Products: sampleProducts(1, 2, 3, 4, 5)}, nil).Once()

		// Act
		related := commerce.GetRelatedProducts(ctx, 3, 0, false)
		again := commerce.GetRelatedProducts(ctx, 3, 4, false)

		// Assert
		require.Len(t, related, 4)
		for _, p := range related {
			assert.NotEqual(t, int64(3), p.ID)
		}
		assert.Equal(t, []int64{1, 2, 4, 5}, []int64{related[0].ID, related[1].ID, related[2].ID, related[3].ID})
		assert.Equal(t, related, again)
		assert.True(t, store.Has("related_products_3_4"))
	})

	t.Run("Truncated to limit when the source is not in the page", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)
		ctx := t.Context()

		repo.On("GetProductByID", mock.Anything, int64(9)).Return(&models.Product{ID: 9, Categories: []models.ProductTermRef{{ID: 7}}}, nil).Once()
		repo.On("ListProducts", mock.Anything, relatedQuery(7, 3)).
			Return(&models.ProductList{Products: sampleProducts(1, 2, 4)}, nil).Once()

		related := commerce.GetRelatedProducts(ctx, 9, 2, false)

		assert.Len(t, related, 2)
	})

	t.Run("Product without categories", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)

		repo.On("GetProductByID", mock.Anything, int64(3)).Return(&models.Product{ID: 3}, nil).Once()

		related := commerce.GetRelatedProducts(t.Context(), 3, 4, false)

		assert.NotNil(t, related)
		assert.Empty(t, related)
		repo.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})

	t.Run("Unknown product", func(t *testing.T) {
		commerce, repo, _, _ := newCommerce(t)

		repo.On("GetProductByID", mock.Anything, int64(404)).Return(nil, appErrors.NotFoundError("commerce API resource not found")).Once()

		assert.Empty(t, commerce.GetRelatedProducts(t.Context(), 404, 4, false))
	})

	t.Run("Listing failure is not cached", func(t *testing.T) {
		commerce, repo, store, _ := newCommerce(t)
		ctx := t.Context()

		repo.On("GetProductByID", mock.Anything, int64(3)).Return(&models.Product{ID: 3, Categories: []models.ProductTermRef{{ID: 7}}}, nil).Once()
		repo.On("ListProducts", mock.Anything, relatedQuery(7, 5)).Return(nil, errors.New("timeout")).Twice()

		assert.Empty(t, commerce.GetRelatedProducts(ctx, 3, 4, false))
		assert.Empty(t, commerce.GetRelatedProducts(ctx, 3, 4, false))
		assert.False(t, store.Has("related_products_3_4"))
	})
}

func TestRevalidate(t *testing.T) {
	tests := []struct {
		path    string
		cleared bool
	}{
		{path: "/", cleared: true},
		{path: "/san-pham", cleared: true},
		{path: "/san-pham/may-in-canon", cleared: true},
		{path: "/tin-tuc", cleared: false},
		{path: "/gioi-thieu", cleared: false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			commerce, _, store, _ := newCommerce(t)
			store.Set("product_1", &models.Product{ID: 1}, time.Minute)

			cleared := commerce.Revalidate(t.Context(), tc.path)

			assert.Equal(t, tc.cleared, cleared)
			assert.Equal(t, !tc.cleared, store.Has("product_1"))
		})
	}
}
