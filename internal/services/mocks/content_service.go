package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/stretchr/testify/mock"
)

// ContentService is a mock type for the ContentService type
type ContentService struct {
	mock.Mock
}

func (_m *ContentService) GetPage(ctx context.Context, slug string) *models.Post {
	ret := _m.Called(ctx, slug)

	var r0 *models.Post
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Post)
	}

	return r0
}

func (_m *ContentService) GetAllPages(ctx context.Context) []models.Post {
	ret := _m.Called(ctx)

	var r0 []models.Post
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Post)
	}

	return r0
}

func (_m *ContentService) GetPost(ctx context.Context, slug string) *models.Post {
	ret := _m.Called(ctx, slug)

	var r0 *models.Post
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Post)
	}

	return r0
}

func (_m *ContentService) GetPosts(ctx context.Context, page, perPage int, query models.PostQuery) *models.PostList {
	ret := _m.Called(ctx, page, perPage, query)

	var r0 *models.PostList
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.PostList)
	}

	return r0
}

func (_m *ContentService) GetCategories(ctx context.Context) []models.Term {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentService) GetTags(ctx context.Context) []models.Term {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentService) GetProductCategoryTerms(ctx context.Context) []models.Term {
	return _m.terms(_m.Called(ctx))
}

func (_m *ContentService) GetMenuItems(ctx context.Context, location string) *models.Menu {
	ret := _m.Called(ctx, location)

	var r0 *models.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Menu)
	}

	return r0
}

func (_m *ContentService) GetGlobalSettings(ctx context.Context) *models.GlobalSettings {
	ret := _m.Called(ctx)

	var r0 *models.GlobalSettings
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.GlobalSettings)
	}

	return r0
}

func (_m *ContentService) GetMedia(ctx context.Context, id int64) *models.Media {
	ret := _m.Called(ctx, id)

	var r0 *models.Media
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Media)
	}

	return r0
}

func (_m *ContentService) GetUser(ctx context.Context, id int64) *models.User {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.User)
	}

	return r0
}

func (_m *ContentService) SearchContent(ctx context.Context, query, subtype string) []models.SearchResult {
	ret := _m.Called(ctx, query, subtype)

	var r0 []models.SearchResult
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.SearchResult)
	}

	return r0
}

func (_m *ContentService) terms(ret mock.Arguments) []models.Term {
	var r0 []models.Term
	if v := ret.Get(0); v != nil {
		r0 = v.([]models.Term)
	}

	return r0
}

// NewContentService creates a new instance of ContentService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContentService {
	m := &ContentService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
