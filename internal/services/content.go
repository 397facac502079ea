package service

import (
	"context"
	"log/slog"
	"strings"

	appErrors "github.com/aaravmahajanofficial/saonamtg-web/internal/errors"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	repository "github.com/aaravmahajanofficial/saonamtg-web/internal/repositories"
)

const (
	DefaultSearchType = "post"
	DefaultLogoURL    = "/logo.png"
	DefaultLogoAlt    = "Sao Nam TG Logo"
)

// DefaultMenu is the navigation used when neither the menus plugin nor the
// page list is available.
func DefaultMenu() *models.Menu {
	return &models.Menu{Items: []models.MenuItem{
		{ID: 1, Title: "Trang chủ", URL: "/"},
		{ID: 2, Title: "Giới thiệu", URL: "/gioi-thieu"},
		{ID: 3, Title: "Sản phẩm", URL: "/san-pham"},
		{ID: 4, Title: "Dịch Vụ", URL: "/dich-vu"},
		{ID: 5, Title: "Tin Tức", URL: "/tin-tuc"},
		{ID: 6, Title: "Liên hệ", URL: "/lien-he"},
	}}
}

func DefaultSettings() *models.GlobalSettings {
	return &models.GlobalSettings{
		SiteName:        "Sao Nam TG",
		SiteDescription: "Công ty TNHH Thương mại và Dịch vụ Sao Nam",
		SiteLogo:        &models.SiteLogo{URL: DefaultLogoURL, Alt: DefaultLogoAlt},
		ContactEmail:    "info@saonamtg.com",
		ContactPhone:    "0123456789",
		SocialLinks:     []models.SocialLink{},
	}
}

// ContentService reads the WordPress site. It has no cache, and like
// CommerceService it never returns errors: failures are logged and
// replaced by nil, an empty list or a fallback value.
type ContentService interface {
	GetPage(ctx context.Context, slug string) *models.Post
	GetAllPages(ctx context.Context) []models.Post
	GetPost(ctx context.Context, slug string) *models.Post
	GetPosts(ctx context.Context, page, perPage int, query models.PostQuery) *models.PostList
	GetCategories(ctx context.Context) []models.Term
	GetTags(ctx context.Context) []models.Term
	GetProductCategoryTerms(ctx context.Context) []models.Term
	GetMenuItems(ctx context.Context, location string) *models.Menu
	GetGlobalSettings(ctx context.Context) *models.GlobalSettings
	GetMedia(ctx context.Context, id int64) *models.Media
	GetUser(ctx context.Context, id int64) *models.User
	SearchContent(ctx context.Context, query, subtype string) []models.SearchResult
}

type contentService struct {
	repo       repository.ContentRepository
	siteOrigin string
}

// NewContentService takes the public site origin, used to make relative
// logo URLs absolute.
func NewContentService(repo repository.ContentRepository, siteOrigin string) ContentService {
	return &contentService{repo: repo, siteOrigin: strings.TrimRight(siteOrigin, "/")}
}

func (s *contentService) GetPage(ctx context.Context, slug string) *models.Post {
	pages, err := s.repo.FindPages(ctx, slug)
	if err != nil {
		logFailure(ctx, "Failed to fetch page", err, slog.String("slug", slug))

		return nil
	}

	return first(pages)
}

func (s *contentService) GetAllPages(ctx context.Context) []models.Post {
	pages, err := s.repo.ListPages(ctx)
	if err != nil {
		logFailure(ctx, "Failed to fetch pages", err)

		return []models.Post{}
	}

	return orEmpty(pages)
}

func (s *contentService) GetPost(ctx context.Context, slug string) *models.Post {
	posts, err := s.repo.FindPosts(ctx, slug)
	if err != nil {
		logFailure(ctx, "Failed to fetch post", err, slog.String("slug", slug))

		return nil
	}

	return first(posts)
}

// GetPosts resolves the category and tag slugs of query to ids first; a
// slug that matches no term drops that filter.
func (s *contentService) GetPosts(ctx context.Context, page, perPage int, query models.PostQuery) *models.PostList {
	params := models.PostListParams{
		Page:    page,
		PerPage: perPage,
		Search:  query.Search,
		Author:  query.Author,
	}

	if query.Category != "" {
		if term := models.FindTerm(s.GetCategories(ctx), query.Category); term != nil {
			params.CategoryID = term.ID
		}
	}

	if query.Tag != "" {
		if term := models.FindTerm(s.GetTags(ctx), query.Tag); term != nil {
			params.TagID = term.ID
		}
	}

	list, err := s.repo.ListPosts(ctx, params)
	if err != nil {
		logFailure(ctx, "Failed to fetch posts", err)

		return &models.PostList{Posts: []models.Post{}}
	}

	return list
}

func (s *contentService) GetCategories(ctx context.Context) []models.Term {
	terms, err := s.repo.ListCategories(ctx)
	if err != nil {
		logFailure(ctx, "Failed to fetch categories", err)

		return []models.Term{}
	}

	return orEmpty(terms)
}

func (s *contentService) GetTags(ctx context.Context) []models.Term {
	terms, err := s.repo.ListTags(ctx)
	if err != nil {
		logFailure(ctx, "Failed to fetch tags", err)

		return []models.Term{}
	}

	return orEmpty(terms)
}

// GetProductCategoryTerms prefers the WooCommerce endpoint and falls back
// to the product_cat taxonomy.
func (s *contentService) GetProductCategoryTerms(ctx context.Context) []models.Term {
	return FirstOf[[]models.Term](ctx,
		func(ctx context.Context) ([]models.Term, bool) {
			terms, err := s.repo.ListWooCategoryTerms(ctx)
			if err != nil {
				logger.FromContext(ctx).Info("WooCommerce categories unavailable, trying product_cat", slog.Any("error", err))

				return nil, false
			}

			return orEmpty(terms), true
		},
		func(ctx context.Context) ([]models.Term, bool) {
			terms, err := s.repo.ListProductCatTerms(ctx)
			if err != nil {
				logFailure(ctx, "Failed to fetch product categories", err)

				return nil, false
			}

			return orEmpty(terms), true
		},
		Static([]models.Term{}),
	)
}

// GetMenuItems tries the menus plugin, then builds a menu from the page
// list, then falls back to DefaultMenu.
func (s *contentService) GetMenuItems(ctx context.Context, location string) *models.Menu {
	return FirstOf[*models.Menu](ctx,
		func(ctx context.Context) (*models.Menu, bool) {
			menu, err := s.repo.GetMenuLocation(ctx, location)
			if err != nil {
				logger.FromContext(ctx).Info("Menu location unavailable, trying pages",
					slog.String("location", location), slog.Any("error", err))

				return nil, false
			}

			return menu, len(menu.Items) > 0
		},
		func(ctx context.Context) (*models.Menu, bool) {
			pages, err := s.repo.ListMenuPages(ctx)
			if err != nil {
				logFailure(ctx, "Failed to fetch pages for menu", err, slog.String("location", location))

				return nil, false
			}

			if len(pages) == 0 {
				return nil, false
			}

			return menuFromPages(pages), true
		},
		Static(DefaultMenu()),
	)
}

// GetGlobalSettings tries the ACF options page, then the REST index, then
// DefaultSettings.
func (s *contentService) GetGlobalSettings(ctx context.Context) *models.GlobalSettings {
	return FirstOf[*models.GlobalSettings](ctx,
		func(ctx context.Context) (*models.GlobalSettings, bool) {
			settings, err := s.repo.GetOptions(ctx)
			if err != nil {
				logger.FromContext(ctx).Info("ACF options unavailable, trying site info", slog.Any("error", err))

				return nil, false
			}

			if settings == nil {
				return nil, false
			}

			if settings.SiteLogo != nil && settings.SiteLogo.URL != "" {
				settings.SiteLogo.URL = s.absolute(settings.SiteLogo.URL)
			}

			return settings, true
		},
		func(ctx context.Context) (*models.GlobalSettings, bool) {
			info, err := s.repo.GetSiteInfo(ctx)
			if err != nil {
				logFailure(ctx, "Failed to fetch global settings", err)

				return nil, false
			}

			return s.settingsFromSiteInfo(info), true
		},
		Static(DefaultSettings()),
	)
}

func (s *contentService) GetMedia(ctx context.Context, id int64) *models.Media {
	media, err := s.repo.GetMedia(ctx, id)
	if err != nil {
		logFailure(ctx, "Failed to fetch media", err, slog.Int64("mediaId", id))

		return nil
	}

	return media
}

func (s *contentService) GetUser(ctx context.Context, id int64) *models.User {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		logFailure(ctx, "Failed to fetch user", err, slog.Int64("userId", id))

		return nil
	}

	return user
}

func (s *contentService) SearchContent(ctx context.Context, query, subtype string) []models.SearchResult {
	if subtype == "" {
		subtype = DefaultSearchType
	}

	results, err := s.repo.Search(ctx, query, subtype)
	if err != nil {
		logFailure(ctx, "Failed to search content", err, slog.String("query", query))

		return []models.SearchResult{}
	}

	return orEmpty(results)
}

func (s *contentService) settingsFromSiteInfo(info *models.SiteInfo) *models.GlobalSettings {
	settings := &models.GlobalSettings{
		SiteName:        info.Name,
		SiteDescription: info.Description,
		SiteURL:         info.URL,
	}

	if info.SiteLogoURL != "" {
		settings.SiteLogo = &models.SiteLogo{URL: s.absolute(info.SiteLogoURL), Alt: info.Name}

		return settings
	}

	alt := info.Name
	if alt == "" {
		alt = DefaultLogoAlt
	}

	settings.SiteLogo = &models.SiteLogo{URL: DefaultLogoURL, Alt: alt}

	return settings
}

func (s *contentService) absolute(u string) string {
	if strings.HasPrefix(u, "http") {
		return u
	}

	return s.siteOrigin + u
}

func menuFromPages(pages []models.MenuPage) *models.Menu {
	items := make([]models.MenuItem, 0, len(pages))

	for i, page := range pages {
		url := "/" + page.Slug
		if page.Slug == "home" {
			url = "/"
		}

		items = append(items, models.MenuItem{
			ID:    page.ID,
			Title: page.Title.Rendered,
			URL:   url,
			Order: i + 1,
		})
	}

	return &models.Menu{Items: items}
}

// logFailure logs err unless it is a plain not-found, which callers treat
// as an ordinary empty result.
func logFailure(ctx context.Context, msg string, err error, attrs ...any) {
	if appErrors.IsNotFound(err) {
		return
	}

	logger.FromContext(ctx).Error(msg, append(attrs, slog.Any("error", err))...)
}

func first[T any](items []T) *T {
	if len(items) == 0 {
		return nil
	}

	return &items[0]
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
