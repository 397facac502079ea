package models

// Product mirrors the WooCommerce v3 product resource. Only the fields the
// site renders are decoded.
type Product struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	Permalink        string             `json:"permalink"`
	DateCreated      string             `json:"date_created"`
	DateModified     string             `json:"date_modified"`
	Type             string             `json:"type"`
	Status           string             `json:"status"`
	Featured         bool               `json:"featured"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	SKU              string             `json:"sku"`
	Price            string             `json:"price"`
	RegularPrice     string             `json:"regular_price"`
	SalePrice        string             `json:"sale_price"`
	PriceHTML        string             `json:"price_html"`
	OnSale           bool               `json:"on_sale"`
	StockQuantity    *int64             `json:"stock_quantity"`
	StockStatus      string             `json:"stock_status"`
	Categories       []ProductTermRef   `json:"categories"`
	Tags             []ProductTermRef   `json:"tags"`
	Images           []ProductImage     `json:"images"`
	Attributes       []ProductAttribute `json:"attributes"`
	RelatedIDs       []int64            `json:"related_ids"`
	MenuOrder        int                `json:"menu_order"`
}

type ProductTermRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductImage struct {
	ID   int64  `json:"id"`
	Src  string `json:"src"`
	Name string `json:"name"`
	Alt  string `json:"alt"`
}

type ProductAttribute struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

type ProductCategory struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Parent      int64         `json:"parent"`
	Description string        `json:"description"`
	Display     string        `json:"display"`
	Image       *ProductImage `json:"image"`
	MenuOrder   int           `json:"menu_order"`
	Count       int           `json:"count"`
}

// InStock reports the WooCommerce stock status.
func (p *Product) InStock() bool {
	return p.StockStatus == "" || p.StockStatus == "instock"
}

// FirstImage returns the product's main image, if any.
func (p *Product) FirstImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}

	return &p.Images[0]
}

// ProductQuery holds the /products filters. Unset pointer fields are not
// sent upstream and do not take part in the cache key.
type ProductQuery struct {
	Page      *int   `json:"page,omitempty"`
	PerPage   *int   `json:"per_page,omitempty"`
	Category  *int64 `json:"category,omitempty"`
	Search    string `json:"search,omitempty" validate:"max=100"`
	OrderBy   string `json:"orderby,omitempty" validate:"omitempty,oneof=date id include title slug price popularity rating menu_order"`
	Order     string `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	Featured  *bool  `json:"featured,omitempty"`
	OnSale    *bool  `json:"on_sale,omitempty"`
	Slug      string `json:"slug,omitempty"`
	SkipCache bool   `json:"skipCache,omitempty"`
}

type CategoryQuery struct {
	Page      *int   `json:"page,omitempty"`
	PerPage   *int   `json:"per_page,omitempty"`
	Parent    *int64 `json:"parent,omitempty"`
	OrderBy   string `json:"orderby,omitempty"`
	Order     string `json:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	HideEmpty *bool  `json:"hide_empty,omitempty"`
	SkipCache bool   `json:"skipCache,omitempty"`
}

type ProductList struct {
	Products   []Product `json:"products"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total"`
}

type CategoryList struct {
	Categories []ProductCategory `json:"categories"`
	TotalPages int               `json:"totalPages"`
	Total      int               `json:"total"`
}

// FindBySlug returns the category with the given slug.
func (l CategoryList) FindBySlug(slug string) *ProductCategory {
	for i := range l.Categories {
		if l.Categories[i].Slug == slug {
			return &l.Categories[i]
		}
	}

	return nil
}

func IntPtr(v int) *int       { return &v }
func Int64Ptr(v int64) *int64 { return &v }
func BoolPtr(v bool) *bool    { return &v }
