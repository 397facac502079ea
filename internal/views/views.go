package views

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/saonamtg-web/internal/models"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/utils/format"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	layoutFile   = "templates/layout.html"
	partialsFile = "templates/partials.html"
)

// Layout is the data every page shares: navigation, site settings and
// the document head.
type Layout struct {
	Title       string
	Description string
	Path        string
	Menu        *models.Menu
	Settings    *models.GlobalSettings
	Year        int
}

func (l *Layout) SetLayout(menu *models.Menu, settings *models.GlobalSettings, path string) {
	l.Menu = menu
	l.Settings = settings
	l.Path = path
	l.Year = time.Now().Year()
}

// Page is implemented by every view model through the embedded Layout.
type Page interface {
	SetLayout(menu *models.Menu, settings *models.GlobalSettings, path string)
}

// Renderer holds one parsed template set per page file.
type Renderer struct {
	pages map[string]*template.Template
}

func New(siteOrigin string) (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	funcs := Funcs(siteOrigin)
	pages := make(map[string]*template.Template, len(files))

	for _, file := range files {
		if file == layoutFile || file == partialsFile {
			continue
		}

		tmpl, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, layoutFile, partialsFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(file, "templates/"), ".html")
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes page name into a buffer first so that a template error
// never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)

	return err
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, _ := fs.Sub(staticFS, "static")

	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func Funcs(siteOrigin string) template.FuncMap {
	return template.FuncMap{
		"excerpt": func(s string) string {
			return format.ExtractExcerpt(s, format.DefaultExcerptLength)
		},
		// sanitized by the bluemonday policy before being trusted
		"content": func(s string) template.HTML {
			return template.HTML(format.FormatContent(s))
		},
		"text": html.UnescapeString,
		"date": format.FormatDate,
		"price": func(s string) string {
			amount, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return "Liên hệ"
			}

			return format.FormatCurrency(amount)
		},
		"phone":    format.FormatPhoneNumber,
		"truncate": format.TruncateText,
		"imageURL": func(s string) string {
			return format.EnsureAbsoluteImageURL(s, siteOrigin)
		},
		"imageSize": format.GetImageSizeURL,
		"path":      format.WPURLToPath,
		"postImage": func(p models.Post) string {
			if img := p.FeaturedImage(); img != nil {
				return format.EnsureAbsoluteImageURL(img.SourceURL, siteOrigin)
			}

			return format.PlaceholderImage
		},
		"productImage": func(p models.Product) string {
			if img := p.FirstImage(); img != nil {
				return format.EnsureAbsoluteImageURL(img.Src, siteOrigin)
			}

			return format.PlaceholderImage
		},
	}
}
