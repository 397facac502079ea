package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// ContentRepository is a mock type for the ContentRepository type
type ContentRepository struct {
	mock.Mock
}

func (_m *ContentRepository) posts(ret mock.Arguments) ([]models.Post, error) {
	var r0 []models.Post
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Post)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) terms(ret mock.Arguments) ([]models.Term, error) {
	var r0 []models.Term
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Term)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) FindPages(ctx context.Context, slug string) ([]models.Post, error) {
	return _m.posts(_m.Called(ctx, slug))
}

func (_m *ContentRepository) ListPages(ctx context.Context) ([]models.Post, error) {
	return _m.posts(_m.Called(ctx))
}

func (_m *ContentRepository) ListMenuPages(ctx context.Context) ([]models.MenuPage, error) {
	ret := _m.Called(ctx)

	var r0 []models.MenuPage
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.MenuPage)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) FindPosts(ctx context.Context, slug string) ([]models.Post, error) {
	return _m.posts(_m.Called(ctx, slug))
}

func (_m *ContentRepository) ListPosts(ctx context.Context, params models.PostListParams) (*models.PostList, error) {
	ret := _m.Called(ctx, params)

	var r0 *models.PostList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.PostList)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) ListCategories(ctx context.Context) ([]models.Term, error) {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentRepository) ListTags(ctx context.Context) ([]models.Term, error) {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentRepository) ListWooCategoryTerms(ctx context.Context) ([]models.Term, error) {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentRepository) ListProductCatTerms(ctx context.Context) ([]models.Term, error) {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentRepository) GetMenuLocation(ctx context.Context, location string) (*models.Menu, error) {
	ret := _m.Called(ctx, location)

	var r0 *models.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Menu)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) GetOptions(ctx context.Context) (*models.GlobalSettings, error) {
	ret := _m.Called(ctx)

	var r0 *models.GlobalSettings
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.GlobalSettings)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) GetSiteInfo(ctx context.Context) (*models.SiteInfo, error) {
	ret := _m.Called(ctx)

	var r0 *models.SiteInfo
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.SiteInfo)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) GetMedia(ctx context.Context, id int64) (*models.Media, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Media
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Media)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.User)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) Search(ctx context.Context, query, subtype string) ([]models.SearchResult, error) {
	ret := _m.Called(ctx, query, subtype)

	var r0 []models.SearchResult
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.SearchResult)
	}

	return r0, ret.Error(1)
}

func (_m *ContentRepository) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}

// NewContentRepository creates a new instance of ContentRepository and
// registers a cleanup that asserts the expectations.
func NewContentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContentRepository {
	m := &ContentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
