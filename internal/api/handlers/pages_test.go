package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/api/handlers"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/services/mocks"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/testutils"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageFixture struct {
	content  *mocks.ContentService
	commerce *mocks.CommerceService
	handler  *handlers.PageHandler
}

func newPageFixture(t *testing.T) pageFixture {
	t.Helper()

	renderer, err := views.New("https://saonamtg.com")
	require.NoError(t, err)

	content := mocks.NewContentService(t)
	commerce := mocks.NewCommerceService(t)

	content.On("GetMenuItems", mock.Anything, handlers.MenuLocation).Return(&models.Menu{Items: []models.MenuItem{{ID: 1, Title: "Trang chủ", URL: "/"}}})
	content.On("GetGlobalSettings", mock.Anything).Return(&models.GlobalSettings{SiteName: "Sao Nam TG"})

	return pageFixture{
		content:  content,
		commerce: commerce,
		handler:  handlers.NewPageHandler(content, commerce, renderer),
	}
}

func post(id int64, slug, title string) models.Post {
	return models.Post{ID: id, Slug: slug, Title: models.Rendered{Rendered: title}, Date: "2024-03-01T10:00:00"}
}

func TestHomePage(t *testing.T) {
	// Arrange
	f := newPageFixture(t)
	f.content.On("GetPage", mock.Anything, "homepage").Return(nil)
	f.content.On("GetPosts", mock.Anything, 1, handlers.HomePostsCount, models.PostQuery{}).
		Return(&models.PostList{Posts: []models.Post{post(1, "khai-truong", "Khai trương chi nhánh")}, TotalPages: 1, Total: 1})

	rr := httptest.NewRecorder()
	req := testutils.CreateTestRequest(http.MethodGet, "/", nil, nil)

	// Act
	f.handler.Home().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Khai trương chi nhánh")
	assert.Contains(t, rr.Body.String(), "/tin-tuc/khai-truong")
	assert.Contains(t, rr.Body.String(), "Dịch vụ của chúng tôi")
}

func TestContentPages(t *testing.T) {
	t.Run("Renders the WordPress page", func(t *testing.T) {
		f := newPageFixture(t)
		page := &models.Post{ID: 5, Slug: "gioi-thieu", Content: models.Rendered{Rendered: "<p>Nội dung từ WordPress</p>"}}
		f.content.On("GetPage", mock.Anything, "gioi-thieu").Return(page)

		rr := httptest.NewRecorder()
		f.handler.About().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/gioi-thieu", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Nội dung từ WordPress")
		assert.NotContains(t, rr.Body.String(), "Giá trị cốt lõi")
	})

	t.Run("Falls back to built-in copy", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetPage", mock.Anything, "dich-vu").Return(nil)

		rr := httptest.NewRecorder()
		f.handler.Services().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/dich-vu", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Lắp đặt hệ thống camera giám sát")
	})

	t.Run("Contact page shows the form", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetPage", mock.Anything, "lien-he").Return(nil)

		rr := httptest.NewRecorder()
		f.handler.Contact().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/lien-he", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `id="contact-form"`)
	})
}

func TestNewsPages(t *testing.T) {
	categories := []models.Term{{ID: 3, Name: "Tin công ty", Slug: "tin-cong-ty", Count: 4}}

	t.Run("Listing forwards filters and paginates", func(t *testing.T) {
		// Arrange
		f := newPageFixture(t)
		f.content.On("GetPosts", mock.Anything, 2, handlers.NewsPerPage, models.PostQuery{Category: "tin-cong-ty", Search: "may"}).
			Return(&models.PostList{Posts: []models.Post{post(1, "a", "Bài A")}, TotalPages: 3, Total: 30})
		f.content.On("GetCategories", mock.Anything).Return(categories)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/tin-tuc?page=2&category=tin-cong-ty&search=may", nil, nil)

		// Act
		f.handler.News().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Bài A")
		assert.Contains(t, body, "/tin-tuc?category=tin-cong-ty&amp;search=may&amp;page=3")
		assert.Contains(t, body, "/tin-tuc/danh-muc/tin-cong-ty")
	})

	t.Run("Empty search result message", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetPosts", mock.Anything, 1, handlers.NewsPerPage, models.PostQuery{Search: "xyz"}).
			Return(&models.PostList{Posts: []models.Post{}})
		f.content.On("GetCategories", mock.Anything).Return([]models.Term{})

		rr := httptest.NewRecorder()
		f.handler.News().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/tin-tuc?search=xyz", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Không tìm thấy bài viết nào với từ khóa")
	})

	t.Run("Unknown category is a 404", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetCategories", mock.Anything).Return(categories)
		f.content.On("GetPosts", mock.Anything, 1, handlers.TermPostsPerPage, models.PostQuery{Category: "khong-co"}).
			Return(&models.PostList{Posts: []models.Post{}})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/tin-tuc/danh-muc/khong-co", nil, map[string]string{"slug": "khong-co"})
		f.handler.NewsCategory().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Danh mục không tồn tại")
	})

	t.Run("Known tag lists its posts", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetTags", mock.Anything).Return([]models.Term{{ID: 8, Name: "Máy in", Slug: "may-in"}})
		f.content.On("GetPosts", mock.Anything, 1, handlers.TermPostsPerPage, models.PostQuery{Tag: "may-in"}).
			Return(&models.PostList{Posts: []models.Post{post(2, "b", "Bài B")}, TotalPages: 1, Total: 1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/tin-tuc/tag/may-in", nil, map[string]string{"slug": "may-in"})
		f.handler.NewsTag().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Thẻ: Máy in")
		assert.Contains(t, rr.Body.String(), "Bài B")
	})
}

func TestPostPage(t *testing.T) {
	t.Run("Missing post is a 404", func(t *testing.T) {
		f := newPageFixture(t)
		f.content.On("GetPost", mock.Anything, "khong-co").Return(nil)
		f.content.On("GetPosts", mock.Anything, 1, handlers.RecentPostsCount, models.PostQuery{}).Return(&models.PostList{Posts: []models.Post{}})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/tin-tuc/khong-co", nil, map[string]string{"slug": "khong-co"})
		f.handler.Post().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Bài viết không tồn tại")
	})

	t.Run("Post with terms and recent posts", func(t *testing.T) {
		f := newPageFixture(t)
		current := post(1, "bai-mot", "Bài một")
		current.Content = models.Rendered{Rendered: "<p>Nội dung bài một</p>"}
		current.Embedded = &models.Embedded{Terms: [][]models.Term{
			{{ID: 3, Name: "Tin công ty", Slug: "tin-cong-ty", Taxonomy: "category"}},
			{{ID: 9, Name: "Máy chiếu", Slug: "may-chieu", Taxonomy: "post_tag"}},
		}}
		f.content.On("GetPost", mock.Anything, "bai-mot").Return(&current)
		f.content.On("GetPosts", mock.Anything, 1, handlers.RecentPostsCount, models.PostQuery{}).
			Return(&models.PostList{Posts: []models.Post{current, post(2, "bai-hai", "Bài hai")}})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/tin-tuc/bai-mot", nil, map[string]string{"slug": "bai-mot"})
		f.handler.Post().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Nội dung bài một")
		assert.Contains(t, body, "/tin-tuc/danh-muc/tin-cong-ty")
		assert.Contains(t, body, "/tin-tuc/tag/may-chieu")
		assert.Contains(t, body, "/tin-tuc/bai-hai")
		assert.NotContains(t, body, `<li><a href="/tin-tuc/bai-mot">`)
	})
}

func TestProductPages(t *testing.T) {
	categories := &models.CategoryList{Categories: []models.ProductCategory{{ID: 15, Name: "Máy in", Slug: "may-in", Count: 2}}, TotalPages: 1, Total: 1}

	t.Run("Category slug is resolved to its id", func(t *testing.T) {
		// Arrange
		f := newPageFixture(t)
		f.commerce.On("GetProductCategories", mock.Anything, models.CategoryQuery{}).Return(categories)
		f.commerce.On("GetProducts", mock.Anything, models.ProductQuery{
			Page:     models.IntPtr(1),
			PerPage:  models.IntPtr(handlers.ProductsPerPage),
			Category: models.Int64Ptr(15),
		}).Return(&models.ProductList{Products: []models.Product{{ID: 7, Name: "Canon LBP", Slug: "canon-lbp", Price: "2500000"}}, TotalPages: 1, Total: 1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/san-pham?category=may-in", nil, nil)

		// Act
		f.handler.Products().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Canon LBP")
		assert.Contains(t, rr.Body.String(), "2.500.000")
		assert.Contains(t, rr.Body.String(), `value="may-in" selected`)
	})

	t.Run("Unknown category slug lists everything", func(t *testing.T) {
		f := newPageFixture(t)
		f.commerce.On("GetProductCategories", mock.Anything, models.CategoryQuery{}).Return(categories)
		f.commerce.On("GetProducts", mock.Anything, models.ProductQuery{
			Page:    models.IntPtr(1),
			PerPage: models.IntPtr(handlers.ProductsPerPage),
			Search:  "canon",
		}).Return(&models.ProductList{Products: []models.Product{}})

		rr := httptest.NewRecorder()
		f.handler.Products().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/san-pham?category=khong-co&search=canon", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Không tìm thấy sản phẩm nào.")
	})

	t.Run("Product detail with related products", func(t *testing.T) {
		f := newPageFixture(t)
		product := &models.Product{ID: 7, Name: "Canon LBP", Slug: "canon-lbp", Price: "2500000", Description: "<p>Máy in laser</p>", StockStatus: "instock"}
		f.commerce.On("GetProductBySlug", mock.Anything, "canon-lbp", false).Return(product)
		f.commerce.On("GetRelatedProducts", mock.Anything, int64(7), 4, false).
			Return([]models.Product{{ID: 8, Name: "Canon MF", Slug: "canon-mf"}})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/san-pham/canon-lbp", nil, map[string]string{"slug": "canon-lbp"})
		f.handler.Product().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Máy in laser")
		assert.Contains(t, body, "Còn hàng")
		assert.Contains(t, body, "Sản phẩm liên quan")
		assert.Contains(t, body, "/san-pham/canon-mf")
	})

	t.Run("Missing product is a 404", func(t *testing.T) {
		f := newPageFixture(t)
		f.commerce.On("GetProductBySlug", mock.Anything, "khong-co", false).Return(nil)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequest(http.MethodGet, "/san-pham/khong-co", nil, map[string]string{"slug": "khong-co"})
		f.handler.Product().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Sản phẩm không tồn tại")
		f.commerce.AssertNotCalled(t, "GetRelatedProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStaticAndNotFoundPages(t *testing.T) {
	tests := []struct {
		name     string
		handler  func(h *handlers.PageHandler) http.HandlerFunc
		target   string
		status   int
		contains string
	}{
		{"Account", (*handlers.PageHandler).Account, "/tai-khoan", http.StatusOK, "Tài khoản của tôi"},
		{"Register", (*handlers.PageHandler).Register, "/dang-ky", http.StatusOK, "Đăng ký tài khoản"},
		{"Catch-all", (*handlers.PageHandler).NotFound, "/khong-ton-tai", http.StatusNotFound, "Không tìm thấy trang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPageFixture(t)
			rr := httptest.NewRecorder()

			tt.handler(f.handler).ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, tt.target, nil, nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(http.ResponseWriter, int, string, any) error {
	return errors.New("template exploded")
}

func TestRenderFailure(t *testing.T) {
	content := mocks.NewContentService(t)
	content.On("GetMenuItems", mock.Anything, handlers.MenuLocation).Return(&models.Menu{})
	content.On("GetGlobalSettings", mock.Anything).Return(&models.GlobalSettings{})
	handler := handlers.NewPageHandler(content, mocks.NewCommerceService(t), failingRenderer{})

	rr := httptest.NewRecorder()
	handler.Account().ServeHTTP(rr, testutils.CreateTestRequest(http.MethodGet, "/tai-khoan", nil, nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
