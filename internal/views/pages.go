package views

import "github.com/aaravmahajanofficial/saonamtg-web/internal/models"

type Service struct {
	Title       string
	Description string
	Icon        string
	Link        string
}

// DefaultServices are shown on the home page.
func DefaultServices() []Service {
	return []Service{
		{
			Title:       "Thiết bị văn phòng",
			Description: "Chuyên phân phối thiết bị văn phòng như máy in, máy photo, máy đa chức năng, màn hình chuyên dụng, màn hình tương tác, máy chiếu, ....",
			Icon:        "/desktop.svg",
			Link:        "/san-pham",
		},
		{
			Title:       "Hệ thống điện nhẹ (ELV)",
			Description: "Cung cấp toàn bộ giải pháp cho Hệ thống điện nhẹ (ELV) như hệ thống camera giám sát (CCTV); hệ thống Âm thanh công cộng (PA); hệ thống mạng (Network); ....",
			Icon:        "/network.svg",
			Link:        "/dich-vu",
		},
		{
			Title:       "Dịch vụ trọn gói",
			Description: "Cung cấp trọn gói các dịch vụ như tư vấn-thiết kế, cho thuê, triển khai dự án, dịch vụ bảo hành-bảo trì",
			Icon:        "/service.svg",
			Link:        "/dich-vu",
		},
	}
}

type HomeView struct {
	Layout
	Page     *models.Post
	Posts    []models.Post
	Services []Service
}

// ContentPageView renders a WordPress page, or the built-in copy when
// the page is missing.
type ContentPageView struct {
	Layout
	Page *models.Post
}

type NewsView struct {
	Layout
	Heading        string
	Subheading     string
	Posts          []models.Post
	Categories     []models.Term
	ActiveCategory string
	Search         string
	Pager          models.Pager
}

type PostView struct {
	Layout
	Post       *models.Post
	Categories []models.Term
	Tags       []models.Term
	Recent     []models.Post
}

type ProductsView struct {
	Layout
	Products       []models.Product
	Categories     []models.ProductCategory
	ActiveCategory string
	Search         string
	Total          int
	Pager          models.Pager
}

type ProductView struct {
	Layout
	Product *models.Product
	Related []models.Product
}

type NotFoundView struct {
	Layout
	Heading   string
	Message   string
	BackURL   string
	BackLabel string
}

// StaticView carries only the layout.
type StaticView struct {
	Layout
}
