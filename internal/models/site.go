package models

type MenuItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Order int    `json:"order,omitempty"`
}

type Menu struct {
	Items []MenuItem `json:"items"`
}

// MenuPage is the trimmed page shape requested with _fields=id,title,slug.
type MenuPage struct {
	ID    int64    `json:"id"`
	Title Rendered `json:"title"`
	Slug  string   `json:"slug"`
}

type SiteLogo struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type GlobalSettings struct {
	SiteName        string       `json:"site_name"`
	SiteDescription string       `json:"site_description"`
	SiteURL         string       `json:"site_url,omitempty"`
	SiteLogo        *SiteLogo    `json:"site_logo,omitempty"`
	ContactEmail    string       `json:"contact_email,omitempty"`
	ContactPhone    string       `json:"contact_phone,omitempty"`
	ContactAddress  string       `json:"contact_address,omitempty"`
	SocialLinks     []SocialLink `json:"social_links,omitempty"`
}

// SiteInfo is the index document served at the REST API root.
type SiteInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Home        string `json:"home"`
	SiteLogoURL string `json:"site_logo_url"`
}
