// Package format holds the pure text, date, number and image URL helpers
// applied to upstream content before it is rendered.
package format

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const DefaultExcerptLength = 150

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonSlugPattern    = regexp.MustCompile(`[^a-z0-9]+`)

	contentPolicy = newContentPolicy()
)

func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "em", "u",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "a", "img",
	)
	p.AllowAttrs("href", "src", "alt", "class", "title").Globally()
	p.AllowStandardURLs()

	return p
}

// FormatContent sanitizes upstream rich text down to a fixed allowlist of
// tags and attributes so it can be injected into a page as-is.
func FormatContent(html string) string {
	if html == "" {
		return ""
	}

	return contentPolicy.Sanitize(html)
}

// ExtractExcerpt turns HTML into plain text of at most maxLength runes,
// cutting at the last word boundary and appending "...". A non-positive
// maxLength means DefaultExcerptLength.
func ExtractExcerpt(html string, maxLength int) string {
	if html == "" {
		return ""
	}

	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	plain := tagPattern.ReplaceAllString(html, "")
	plain = strings.ReplaceAll(plain, "&nbsp;", " ")
	plain = strings.TrimSpace(whitespacePattern.ReplaceAllString(plain, " "))

	r := []rune(plain)
	if len(r) <= maxLength {
		return plain
	}

	truncated := string(r[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}

	return truncated + "..."
}

// TruncateText cuts text to maxLength runes and appends "..." when it was
// longer.
func TruncateText(text string, maxLength int) string {
	r := []rune(text)
	if len(r) <= maxLength {
		return text
	}

	if maxLength < 0 {
		maxLength = 0
	}

	return string(r[:maxLength]) + "..."
}

// GenerateSlug builds a URL-safe ASCII slug, e.g. "Máy in Đa năng" becomes
// "may-in-da-nang".
func GenerateSlug(text string) string {
	// đ has no decomposition, so it is mapped by hand after mark removal.
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningMark)), norm.NFC)

	stripped, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		stripped = strings.ToLower(text)
	}

	stripped = strings.NewReplacer("đ", "d", "Đ", "d").Replace(stripped)
	slug := nonSlugPattern.ReplaceAllString(stripped, "-")

	return strings.Trim(slug, "-")
}

// isCombiningMark matches the Combining Diacritical Marks block, which
// covers every Vietnamese tone and vowel mark after NFD.
func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}
