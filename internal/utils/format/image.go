package format

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	PlaceholderImage = "/placeholder.jpg"
	uploadsPath      = "/wp-content/uploads/"
)

var dimensionsPattern = regexp.MustCompile(`(?i)-(\d+)x(\d+)\.(jpe?g|png|gif|webp)$`)

// WordPress intermediate image sizes, as suffixes before the extension.
var imageSizeSuffixes = map[string]string{
	"thumbnail": "-150x150",
	"medium":    "-300x300",
	"large":     "-1024x1024",
}

// WPURLToPath reduces an absolute WordPress URL to its path; anything that
// is not an absolute URL is returned unchanged.
func WPURLToPath(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return raw
	}

	if p := u.EscapedPath(); p != "" {
		return p
	}

	return "/"
}

// GetImageDimensions reads the "-WxH.ext" suffix WordPress appends to
// resized uploads.
func GetImageDimensions(raw string) (width, height int, ok bool) {
	m := dimensionsPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, 0, false
	}

	width, _ = strconv.Atoi(m[1])
	height, _ = strconv.Atoi(m[2])

	return width, height, true
}

// GetImageSizeURL points raw at one of the thumbnail/medium/large
// variants. "full", "" and unknown sizes return raw as-is.
func GetImageSizeURL(raw, size string) string {
	suffix, ok := imageSizeSuffixes[size]
	if raw == "" || !ok {
		return raw
	}

	dot := strings.LastIndex(raw, ".")
	if dot < 0 {
		return raw
	}

	return raw[:dot] + suffix + raw[dot:]
}

func EnsureAbsoluteImageURL(raw, origin string) string {
	if raw == "" {
		return PlaceholderImage
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}

	// uploads served from the content origin
	if strings.Contains(raw, uploadsPath) {
		return strings.TrimRight(origin, "/") + raw
	}

	return raw
}

// ShouldUnoptimizeImage reports whether an image must be served as-is:
// empty and local URLs, and anything under WordPress uploads.
func ShouldUnoptimizeImage(raw string) bool {
	if raw == "" || !strings.HasPrefix(raw, "http") {
		return true
	}

	return strings.Contains(raw, uploadsPath)
}
