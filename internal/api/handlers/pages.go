package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/views"
	"golang.org/x/sync/errgroup"
)

const (
	MenuLocation     = "primary"
	HomePostsCount   = 3
	NewsPerPage      = 12
	TermPostsPerPage = 9
	RecentPostsCount = 5
	ProductsPerPage  = 12

	// MaxSearchLength bounds search terms, which take part in cache keys.
	MaxSearchLength = 100
)

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

type PageHandler struct {
	contentService  service.ContentService
	commerceService service.CommerceService
	renderer        Renderer
}

func NewPageHandler(contentService service.ContentService, commerceService service.CommerceService, renderer Renderer) *PageHandler {
	return &PageHandler{contentService: contentService, commerceService: commerceService, renderer: renderer}
}

func (h *PageHandler) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		view := &views.HomeView{Services: views.DefaultServices()}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			view.Page = h.contentService.GetPage(gctx, "homepage")
			return nil
		})
		g.Go(func() error {
			view.Posts = h.contentService.GetPosts(gctx, 1, HomePostsCount, models.PostQuery{}).Posts
			return nil
		})
		_ = g.Wait()

		h.render(ctx, w, r, http.StatusOK, "home", view)
	}
}

func (h *PageHandler) About() http.HandlerFunc {
	return h.contentPage("gioi-thieu", "about", "Giới thiệu")
}

func (h *PageHandler) Services() http.HandlerFunc {
	return h.contentPage("dich-vu", "services", "Dịch vụ")
}

func (h *PageHandler) Contact() http.HandlerFunc {
	return h.contentPage("lien-he", "contact", "Liên hệ")
}

// contentPage renders a WordPress page by slug; the template carries the
// fallback copy for when the page does not exist.
func (h *PageHandler) contentPage(slug, name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		view := &views.ContentPageView{Page: h.contentService.GetPage(ctx, slug)}
		view.Title = title

		h.render(ctx, w, r, http.StatusOK, name, view)
	}
}

func (h *PageHandler) News() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		page := utils.QueryInt(r, "page", 1)
		category := r.URL.Query().Get("category")
		search := utils.QueryText(r, "search", MaxSearchLength)

		view := &views.NewsView{
			Heading:        "Tin tức mới nhất",
			Subheading:     "Cập nhật tin tức mới nhất về công nghệ và giải pháp kinh doanh",
			ActiveCategory: category,
			Search:         search,
		}
		view.Title = "Tin tức"
		view.Description = "Cập nhật tin tức mới nhất từ Sao Nam TG về thiết bị văn phòng, công nghệ và các giải pháp kinh doanh."

		var list *models.PostList

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			list = h.contentService.GetPosts(gctx, page, NewsPerPage, models.PostQuery{Category: category, Search: search})
			return nil
		})
		g.Go(func() error {
			view.Categories = h.contentService.GetCategories(gctx)
			return nil
		})
		_ = g.Wait()

		query := url.Values{}
		if category != "" {
			query.Set("category", category)
		}
		if search != "" {
			query.Set("search", search)
		}

		view.Posts = list.Posts
		view.Pager = models.Pager{Current: page, TotalPages: list.TotalPages, BaseURL: withQuery("/tin-tuc", query)}

		h.render(ctx, w, r, http.StatusOK, "news", view)
	}
}

func (h *PageHandler) NewsCategory() http.HandlerFunc {
	return h.termListing(termListing{
		kind:       "category",
		basePath:   "/tin-tuc/danh-muc/",
		terms:      h.contentService.GetCategories,
		query:      func(slug string) models.PostQuery { return models.PostQuery{Category: slug} },
		notFound:   "Danh mục không tồn tại",
		notFoundMs: "Không tìm thấy danh mục bạn đang tìm kiếm.",
		heading:    "Danh mục: ",
	})
}

func (h *PageHandler) NewsTag() http.HandlerFunc {
	return h.termListing(termListing{
		kind:       "tag",
		basePath:   "/tin-tuc/tag/",
		terms:      h.contentService.GetTags,
		query:      func(slug string) models.PostQuery { return models.PostQuery{Tag: slug} },
		notFound:   "Thẻ không tồn tại",
		notFoundMs: "Không tìm thấy thẻ bạn đang tìm kiếm.",
		heading:    "Thẻ: ",
	})
}

type termListing struct {
	kind       string
	basePath   string
	terms      func(context.Context) []models.Term
	query      func(slug string) models.PostQuery
	notFound   string
	notFoundMs string
	heading    string
}

func (h *PageHandler) termListing(cfg termListing) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		slug := r.PathValue("slug")
		page := utils.QueryInt(r, "page", 1)

		var (
			terms []models.Term
			list  *models.PostList
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			terms = cfg.terms(gctx)
			return nil
		})
		g.Go(func() error {
			list = h.contentService.GetPosts(gctx, page, TermPostsPerPage, cfg.query(slug))
			return nil
		})
		_ = g.Wait()

		term := models.FindTerm(terms, slug)
		if term == nil {
			logger.FromContext(ctx).Info("Unknown term", slog.String("kind", cfg.kind), slog.String("slug", slug))
			h.notFound(ctx, w, r, cfg.notFound, cfg.notFoundMs, "/tin-tuc", "Quay lại trang Tin tức")
			return
		}

		view := &views.NewsView{
			Heading:        cfg.heading + term.Name,
			Subheading:     term.Description,
			Posts:          list.Posts,
			ActiveCategory: slug,
			Pager:          models.Pager{Current: page, TotalPages: list.TotalPages, BaseURL: cfg.basePath + slug},
		}
		view.Title = term.Name

		if cfg.kind == "category" {
			view.Categories = terms
		}

		h.render(ctx, w, r, http.StatusOK, "news", view)
	}
}

func (h *PageHandler) Post() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		slug := r.PathValue("slug")

		var (
			post   *models.Post
			recent *models.PostList
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			post = h.contentService.GetPost(gctx, slug)
			return nil
		})
		g.Go(func() error {
			recent = h.contentService.GetPosts(gctx, 1, RecentPostsCount, models.PostQuery{})
			return nil
		})
		_ = g.Wait()

		if post == nil {
			h.notFound(ctx, w, r, "Bài viết không tồn tại", "Không tìm thấy bài viết bạn đang tìm kiếm.", "/tin-tuc", "Quay lại trang Tin tức")
			return
		}

		view := &views.PostView{
			Post:       post,
			Categories: post.EmbeddedTerms("category"),
			Tags:       post.EmbeddedTerms("post_tag"),
		}
		view.Title = post.Title.Rendered

		for _, p := range recent.Posts {
			if p.ID != post.ID {
				view.Recent = append(view.Recent, p)
			}
		}

		h.render(ctx, w, r, http.StatusOK, "post", view)
	}
}

func (h *PageHandler) Products() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		page := utils.QueryInt(r, "page", 1)
		categorySlug := r.URL.Query().Get("category")
		search := utils.QueryText(r, "search", MaxSearchLength)

		categories := h.commerceService.GetProductCategories(ctx, models.CategoryQuery{})

		query := models.ProductQuery{
			Page:    models.IntPtr(page),
			PerPage: models.IntPtr(ProductsPerPage),
			Search:  search,
		}

		// an unknown category slug lists everything
		if category := categories.FindBySlug(categorySlug); category != nil {
			query.Category = models.Int64Ptr(category.ID)
		}

		list := h.commerceService.GetProducts(ctx, query)

		params := url.Values{}
		if categorySlug != "" {
			params.Set("category", categorySlug)
		}
		if search != "" {
			params.Set("search", search)
		}

		view := &views.ProductsView{
			Products:       list.Products,
			Categories:     categories.Categories,
			ActiveCategory: categorySlug,
			Search:         search,
			Total:          list.Total,
			Pager:          models.Pager{Current: page, TotalPages: list.TotalPages, BaseURL: withQuery("/san-pham", params)},
		}
		view.Title = "Sản phẩm"

		h.render(ctx, w, r, http.StatusOK, "products", view)
	}
}

func (h *PageHandler) Product() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := utils.WithPageTimeout(r.Context())
		defer cancel()

		product := h.commerceService.GetProductBySlug(ctx, r.PathValue("slug"), false)
		if product == nil {
			h.notFound(ctx, w, r, "Sản phẩm không tồn tại", "Không tìm thấy sản phẩm bạn đang tìm kiếm.", "/san-pham", "Quay lại trang Sản phẩm")
			return
		}

		view := &views.ProductView{
			Product: product,
			Related: h.commerceService.GetRelatedProducts(ctx, product.ID, service.DefaultRelatedLimit, false),
		}
		view.Title = product.Name

		h.render(ctx, w, r, http.StatusOK, "product", view)
	}
}

func (h *PageHandler) Account() http.HandlerFunc {
	return h.static("account", "Tài khoản của tôi")
}

func (h *PageHandler) Register() http.HandlerFunc {
	return h.static("register", "Đăng ký tài khoản")
}

func (h *PageHandler) static(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := &views.StaticView{}
		view.Title = title

		h.render(r.Context(), w, r, http.StatusOK, name, view)
	}
}

// NotFound is the catch-all for unknown paths.
func (h *PageHandler) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.notFound(r.Context(), w, r, "Không tìm thấy trang", "Trang bạn đang tìm kiếm không tồn tại hoặc đã bị di chuyển.", "/", "Về trang chủ")
	}
}

func (h *PageHandler) notFound(ctx context.Context, w http.ResponseWriter, r *http.Request, heading, message, backURL, backLabel string) {
	view := &views.NotFoundView{Heading: heading, Message: message, BackURL: backURL, BackLabel: backLabel}
	view.Title = heading

	h.render(ctx, w, r, http.StatusNotFound, "notfound", view)
}

// render loads the shared layout data and writes the page.
func (h *PageHandler) render(ctx context.Context, w http.ResponseWriter, r *http.Request, status int, name string, page views.Page) {
	var (
		menu     *models.Menu
		settings *models.GlobalSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		menu = h.contentService.GetMenuItems(gctx, MenuLocation)
		return nil
	})
	g.Go(func() error {
		settings = h.contentService.GetGlobalSettings(gctx)
		return nil
	})
	_ = g.Wait()

	page.SetLayout(menu, settings, r.URL.Path)

	if err := h.renderer.Render(w, status, name, page); err != nil {
		logger.FromContext(ctx).Error("Failed to render page", slog.String("template", name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}

	return path + "?" + query.Encode()
}
