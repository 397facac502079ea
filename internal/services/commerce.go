package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/cache"
	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	repository "github.com/aaravmahajanofficial/saonamtg-web/internal/repositories"
	"golang.org/x/sync/singleflight"
)

const (
	ProductsTTL        = 300 * time.Second
	ProductTTL         = 600 * time.Second
	ProductSlugTTL     = 600 * time.Second
	CategoriesTTL      = 900 * time.Second
	RelatedProductsTTL = 600 * time.Second

	DefaultRelatedLimit = 4
)

// CommerceService is the read-through cached view of the product catalog.
// Its methods never fail: upstream errors are logged and replaced by an
// empty result.
type CommerceService interface {
	GetProducts(ctx context.Context, query models.ProductQuery) *models.ProductList
	GetProduct(ctx context.Context, id int64, skipCache bool) *models.Product
	GetProductBySlug(ctx context.Context, slug string, skipCache bool) *models.Product
	GetProductCategories(ctx context.Context, query models.CategoryQuery) *models.CategoryList
	GetRelatedProducts(ctx context.Context, id int64, limit int, skipCache bool) []models.Product
	Revalidate(ctx context.Context, path string) bool
}

type commerceService struct {
	repo  repository.ProductRepository
	cache cache.Store
	group singleflight.Group
}

func NewCommerceService(repo repository.ProductRepository, store cache.Store) CommerceService {
	return &commerceService{repo: repo, cache: store}
}

func (s *commerceService) GetProducts(ctx context.Context, query models.ProductQuery) *models.ProductList {
	list, err := s.products(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch products",
			slog.String("cacheKey", cache.ProductsKey(query)),
			slog.Any("error", err))

		return &models.ProductList{Products: []models.Product{}}
	}

	return list
}

func (s *commerceService) GetProduct(ctx context.Context, id int64, skipCache bool) *models.Product {
	product, err := s.product(ctx, id, skipCache)
	if err != nil {
		if !appErrors.IsNotFound(err) {
			logger.FromContext(ctx).Error("Failed to fetch product", slog.Int64("productId", id), slog.Any("error", err))
		}

		return nil
	}

	return product
}

func (s *commerceService) GetProductBySlug(ctx context.Context, slug string, skipCache bool) *models.Product {
	product, err := readThrough(ctx, s, cache.ProductSlugKey(slug), ProductSlugTTL, skipCache,
		func(ctx context.Context) (*models.Product, bool, error) {
			products, err := s.repo.FindProductsBySlug(ctx, slug)
			if err != nil {
				return nil, false, err
			}

			for i := range products {
				if products[i].Slug == slug {
					return &products[i], true, nil
				}
			}

			// a missing product is not cached
			return nil, false, nil
		})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch product by slug", slog.String("slug", slug), slog.Any("error", err))

		return nil
	}

	return product
}

func (s *commerceService) GetProductCategories(ctx context.Context, query models.CategoryQuery) *models.CategoryList {
	list, err := readThrough(ctx, s, cache.CategoriesKey(query), CategoriesTTL, query.SkipCache,
		func(ctx context.Context) (*models.CategoryList, bool, error) {
			list, err := s.repo.ListCategories(ctx, query)

			return list, err == nil, err
		})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch product categories", slog.Any("error", err))

		return &models.CategoryList{Categories: []models.ProductCategory{}}
	}

	return list
}

// GetRelatedProducts returns up to limit other products from the first
// category of product id.
func (s *commerceService) GetRelatedProducts(ctx context.Context, id int64, limit int, skipCache bool) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related, err := readThrough(ctx, s, cache.RelatedProductsKey(id, limit), RelatedProductsTTL, skipCache,
		func(ctx context.Context) ([]models.Product, bool, error) {
			product, err := s.product(ctx, id, skipCache)
			if err != nil {
				if appErrors.IsNotFound(err) {
					return []models.Product{}, false, nil
				}

				return nil, false, err
			}

			if len(product.Categories) == 0 {
				return []models.Product{}, false, nil
			}

			// one extra so that dropping the product itself still fills limit
			list, err := s.products(ctx, models.ProductQuery{
				Category:  models.Int64Ptr(product.Categories[0].ID),
				PerPage:   models.IntPtr(limit + 1),
				SkipCache: skipCache,
			})
			if err != nil {
				return nil, false, err
			}

			related := make([]models.Product, 0, limit)
			for _, p := range list.Products {
				if p.ID == id {
					continue
				}

				if len(related) == limit {
					break
				}

				related = append(related, p)
			}

			return related, true, nil
		})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to fetch related products", slog.Int64("productId", id), slog.Any("error", err))

		return []models.Product{}
	}

	return related
}

// Revalidate drops the cached catalog when path is the home page or under
// /san-pham. It reports whether anything was invalidated.
func (s *commerceService) Revalidate(ctx context.Context, path string) bool {
	if path != "/" && !strings.HasPrefix(path, "/san-pham") {
		return false
	}

	dropped := s.cache.Size()
	s.cache.Clear()

	logger.FromContext(ctx).Info("Commerce cache revalidated", slog.String("path", path), slog.Int("entries", dropped))

	return true
}

func (s *commerceService) products(ctx context.Context, query models.ProductQuery) (*models.ProductList, error) {
	return readThrough(ctx, s, cache.ProductsKey(query), ProductsTTL, query.SkipCache,
		func(ctx context.Context) (*models.ProductList, bool, error) {
			list, err := s.repo.ListProducts(ctx, query)

			return list, err == nil, err
		})
}

func (s *commerceService) product(ctx context.Context, id int64, skipCache bool) (*models.Product, error) {
	return readThrough(ctx, s, cache.ProductKey(id), ProductTTL, skipCache,
		func(ctx context.Context) (*models.Product, bool, error) {
			product, err := s.repo.GetProductByID(ctx, id)

			return product, err == nil, err
		})
}

// readThrough serves key from the cache and loads it on a miss. Concurrent
// misses on one key share a single load. The loader decides whether its
// result is stored; skipCache bypasses the cache in both directions.
//
// The shared load is detached from the caller that started it, so a
// cancelled caller only abandons its own wait. The client timeout still
// bounds the upstream call.
func readThrough[T any](
	ctx context.Context,
	s *commerceService,
	key string,
	ttl time.Duration,
	skipCache bool,
	load func(context.Context) (T, bool, error),
) (T, error) {
	if skipCache {
		v, _, err := load(ctx)

		return v, err
	}

	if v, ok := cache.GetAs[T](s.cache, key); ok {
		return v, nil
	}

	flight := s.group.DoChan(key, func() (any, error) {
		// a flight that finished between the lookup above and DoChan
		if v, ok := cache.GetAs[T](s.cache, key); ok {
			return v, nil
		}

		v, store, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}

		if store {
			s.cache.Set(key, v, ttl)
		}

		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	case res := <-flight:
		v, _ := res.Val.(T)

		return v, res.Err
	}
}
