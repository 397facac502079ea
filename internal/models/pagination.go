package models

import (
	"strconv"
	"strings"
)

// Pager is the view model of a numbered pagination bar.
type Pager struct {
	Current    int
	TotalPages int
	BaseURL    string
}

func (p Pager) HasPrev() bool { return p.Current > 1 }
func (p Pager) HasNext() bool { return p.Current < p.TotalPages }
func (p Pager) Prev() int     { return p.Current - 1 }
func (p Pager) Next() int     { return p.Current + 1 }

// Pages lists every page number, for small page counts.
func (p Pager) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}

	return pages
}

// URL links to page n, keeping any query already present in BaseURL.
func (p Pager) URL(n int) string {
	sep := "?"
	if strings.Contains(p.BaseURL, "?") {
		sep = "&"
	}

	return p.BaseURL + sep + "page=" + strconv.Itoa(n)
}
