package listutil

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 50

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 25, 50, 100, 200}

// Params are the list parameters of a roster-style request.
type Params struct {
	Page    int    // 1-indexed
	PerPage int    // one of PerPageOptions
	Sort    string // "" keeps store order
	Desc    bool
	Search  string
	Filters map[string]string // only recognised keys
}

// PageInfo carries pagination metadata.
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Parse reads page, per_page, sort, dir, q and the named filters from query values.
// PRE: none
// POST: Unknown sort columns and filter keys are dropped; Page >= 1
func Parse(q url.Values, sortable, filterKeys []string) Params {
	p := Params{Page: 1, PerPage: DefaultPerPage, Filters: map[string]string{}}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("per_page")); err == nil && slices.Contains(PerPageOptions, n) {
		p.PerPage = n
	}
	if col := q.Get("sort"); slices.Contains(sortable, col) {
		p.Sort = col
	}
	p.Desc = q.Get("dir") == "desc"
	p.Search = strings.TrimSpace(q.Get("q"))
	for _, key := range filterKeys {
		if v := strings.TrimSpace(q.Get(key)); v != "" {
			p.Filters[key] = v
		}
	}
	return p
}

// NewPageInfo computes pagination metadata, clamping page into range.
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := max(1, (total+perPage-1)/perPage)
	return PageInfo{
		Page:       max(1, min(page, totalPages)),
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the index of the first row on the page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Paginate returns the rows of the requested page.
// POST: The returned slice is never nil
func Paginate[T any](rows []T, p Params) ([]T, PageInfo) {
	info := NewPageInfo(p.Page, p.PerPage, len(rows))
	start := min(info.Offset(), len(rows))
	end := min(start+info.PerPage, len(rows))
	page := make([]T, end-start)
	copy(page, rows[start:end])
	return page, info
}

// MatchesSearch reports whether any field contains the search text, case-insensitively.
// An empty search matches everything.
func MatchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
