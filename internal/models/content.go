package models

// Rendered is the WordPress {"rendered": "..."} wrapper used for titles,
// content and excerpts.
type Rendered struct {
	Rendered string `json:"rendered"`
}

type Term struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Count       int    `json:"count,omitempty"`
	Description string `json:"description,omitempty"`
	Taxonomy    string `json:"taxonomy,omitempty"`
}

type FeaturedMedia struct {
	SourceURL string `json:"source_url"`
	AltText   string `json:"alt_text,omitempty"`
}

type Embedded struct {
	FeaturedMedia []FeaturedMedia `json:"wp:featuredmedia,omitempty"`
	Terms         [][]Term        `json:"wp:term,omitempty"`
	Author        []User          `json:"author,omitempty"`
}

// Post is a WordPress post or page.
type Post struct {
	ID            int64     `json:"id"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Slug          string    `json:"slug"`
	Date          string    `json:"date"`
	Link          string    `json:"link,omitempty"`
	Author        int64     `json:"author,omitempty"`
	FeaturedMedia int64     `json:"featured_media"`
	MenuOrder     int       `json:"menu_order,omitempty"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// FeaturedImage returns the embedded featured media, if requested and present.
func (p *Post) FeaturedImage() *FeaturedMedia {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return nil
	}

	return &p.Embedded.FeaturedMedia[0]
}

// EmbeddedTerms returns the embedded terms of one taxonomy ("category", "post_tag").
func (p *Post) EmbeddedTerms(taxonomy string) []Term {
	if p.Embedded == nil {
		return nil
	}

	var out []Term
	for _, group := range p.Embedded.Terms {
		for _, term := range group {
			if term.Taxonomy == taxonomy {
				out = append(out, term)
			}
		}
	}

	return out
}

type PostQuery struct {
	Category string `json:"category,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Search   string `json:"search,omitempty"`
	Author   int64  `json:"author,omitempty"`
}

// PostListParams is a PostQuery after term slugs were resolved to ids.
type PostListParams struct {
	Page       int
	PerPage    int
	CategoryID int64
	TagID      int64
	Search     string
	Author     int64
}

type PostList struct {
	Posts      []Post `json:"posts"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}

type MediaSize struct {
	SourceURL string `json:"source_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type MediaDetails struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	Sizes  map[string]MediaSize `json:"sizes,omitempty"`
}

type Media struct {
	ID           int64         `json:"id"`
	SourceURL    string        `json:"source_url"`
	AltText      string        `json:"alt_text,omitempty"`
	MediaDetails *MediaDetails `json:"media_details,omitempty"`
}

type User struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	AvatarURLs map[string]string `json:"avatar_urls,omitempty"`
}

// SearchResult is an item of the WordPress /search endpoint.
type SearchResult struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// FindTerm returns the term with the given slug.
func FindTerm(terms []Term, slug string) *Term {
	for i := range terms {
		if terms[i].Slug == slug {
			return &terms[i]
		}
	}

	return nil
}
