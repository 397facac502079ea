package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
)

const (
	DefaultPostsPerPage = 10
	termsPerPage        = "100"
)

// ContentRepository reads the WordPress REST API: wp/v2 resources plus the
// plugin namespaces (menus, ACF, WooCommerce) served from the API root.
type ContentRepository interface {
	FindPages(ctx context.Context, slug string) ([]models.Post, error)
	ListPages(ctx context.Context) ([]models.Post, error)
	ListMenuPages(ctx context.Context) ([]models.MenuPage, error)
	FindPosts(ctx context.Context, slug string) ([]models.Post, error)
	ListPosts(ctx context.Context, params models.PostListParams) (*models.PostList, error)
	ListCategories(ctx context.Context) ([]models.Term, error)
	ListTags(ctx context.Context) ([]models.Term, error)
	ListWooCategoryTerms(ctx context.Context) ([]models.Term, error)
	ListProductCatTerms(ctx context.Context) ([]models.Term, error)
	GetMenuLocation(ctx context.Context, location string) (*models.Menu, error)
	GetOptions(ctx context.Context) (*models.GlobalSettings, error)
	GetSiteInfo(ctx context.Context) (*models.SiteInfo, error)
	GetMedia(ctx context.Context, id int64) (*models.Media, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	Search(ctx context.Context, query, subtype string) ([]models.SearchResult, error)
	Ping(ctx context.Context) error
}

type contentRepository struct {
	v2   *upstream
	root *upstream
}

// NewContentRepo takes the wp/v2 base URL and the bare /wp-json root.
func NewContentRepo(v2URL, rootURL string, client *http.Client) ContentRepository {
	return &contentRepository{
		v2:   newUpstream("content", v2URL, client),
		root: newUpstream("content", rootURL, client),
	}
}

func (r *contentRepository) FindPages(ctx context.Context, slug string) ([]models.Post, error) {
	var pages []models.Post

	_, err := r.v2.get(ctx, "/pages", url.Values{"slug": {slug}, "_embed": {"true"}}, &pages)

	return pages, err
}

func (r *contentRepository) ListPages(ctx context.Context) ([]models.Post, error) {
	var pages []models.Post

	_, err := r.v2.get(ctx, "/pages", url.Values{"per_page": {"100"}, "_embed": {"true"}}, &pages)

	return pages, err
}

func (r *contentRepository) ListMenuPages(ctx context.Context) ([]models.MenuPage, error) {
	var pages []models.MenuPage

	params := url.Values{
		"per_page": {"20"},
		"_fields":  {"id,title,slug"},
		"orderby":  {"menu_order"},
		"order":    {"asc"},
	}

	_, err := r.v2.get(ctx, "/pages", params, &pages)

	return pages, err
}

func (r *contentRepository) FindPosts(ctx context.Context, slug string) ([]models.Post, error) {
	var posts []models.Post

	_, err := r.v2.get(ctx, "/posts", url.Values{"slug": {slug}, "_embed": {"true"}}, &posts)

	return posts, err
}

func (r *contentRepository) ListPosts(ctx context.Context, p models.PostListParams) (*models.PostList, error) {
	page := p.Page
	if page <= 0 {
		page = 1
	}

	perPage := p.PerPage
	if perPage <= 0 {
		perPage = DefaultPostsPerPage
	}

	params := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
		"_embed":   {"true"},
	}

	if p.CategoryID > 0 {
		params.Set("categories", strconv.FormatInt(p.CategoryID, 10))
	}
	if p.TagID > 0 {
		params.Set("tags", strconv.FormatInt(p.TagID, 10))
	}
	if p.Search != "" {
		params.Set("search", p.Search)
	}
	if p.Author > 0 {
		params.Set("author", strconv.FormatInt(p.Author, 10))
	}

	var posts []models.Post

	header, err := r.v2.get(ctx, "/posts", params, &posts)
	if err != nil {
		return nil, err
	}

	totalPages, total := parseTotals(header)

	if posts == nil {
		posts = []models.Post{}
	}

	return &models.PostList{Posts: posts, TotalPages: totalPages, Total: total}, nil
}

func (r *contentRepository) ListCategories(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term

	_, err := r.v2.get(ctx, "/categories", url.Values{"per_page": {termsPerPage}, "hide_empty": {"true"}}, &terms)

	return terms, err
}

func (r *contentRepository) ListTags(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term

	_, err := r.v2.get(ctx, "/tags", url.Values{"per_page": {termsPerPage}, "hide_empty": {"true"}}, &terms)

	return terms, err
}

func (r *contentRepository) ListWooCategoryTerms(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term

	_, err := r.root.get(ctx, "/wc/v3/products/categories", url.Values{"per_page": {termsPerPage}}, &terms)

	return terms, err
}

func (r *contentRepository) ListProductCatTerms(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term

	_, err := r.v2.get(ctx, "/product_cat", url.Values{"per_page": {termsPerPage}}, &terms)

	return terms, err
}

func (r *contentRepository) GetMenuLocation(ctx context.Context, location string) (*models.Menu, error) {
	var menu models.Menu

	if _, err := r.root.get(ctx, "/menus/v1/locations/"+url.PathEscape(location), nil, &menu); err != nil {
		return nil, err
	}

	return &menu, nil
}

// GetOptions returns the ACF options page, or nil when ACF has no fields
// (it answers {"acf": false} in that case).
func (r *contentRepository) GetOptions(ctx context.Context) (*models.GlobalSettings, error) {
	var body struct {
		ACF json.RawMessage `json:"acf"`
	}

	if _, err := r.root.get(ctx, "/acf/v3/options/options", nil, &body); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(body.ACF)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}

	var settings models.GlobalSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *contentRepository) GetSiteInfo(ctx context.Context) (*models.SiteInfo, error) {
	var info models.SiteInfo

	if _, err := r.root.get(ctx, "/", nil, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

func (r *contentRepository) GetMedia(ctx context.Context, id int64) (*models.Media, error) {
	var media models.Media

	if _, err := r.v2.get(ctx, "/media/"+strconv.FormatInt(id, 10), nil, &media); err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *contentRepository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User

	if _, err := r.v2.get(ctx, "/users/"+strconv.FormatInt(id, 10), nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *contentRepository) Search(ctx context.Context, query, subtype string) ([]models.SearchResult, error) {
	var results []models.SearchResult

	params := url.Values{"search": {query}, "type": {subtype}, "_embed": {"true"}}

	_, err := r.v2.get(ctx, "/search", params, &results)

	return results, err
}

func (r *contentRepository) Ping(ctx context.Context) error {
	_, err := r.root.get(ctx, "/", url.Values{"_fields": {"name"}}, nil)

	return err
}
