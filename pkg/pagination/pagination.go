// Package pagination parses page requests from query strings and shapes
// paged results, including RFC 8288 navigation links.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/scaffold/pkg/query"
)

// Query parameter names.
const (
	ParamPage     = "page"
	ParamPageSize = "page_size"
	ParamSearch   = "search"
	ParamSort     = "sort"
)

type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize clamps Page to at least 1 and PageSize into [1, MaxPageSize],
// substituting DefaultPageSize for an unset size.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Values encodes the request back into query parameters, the inverse of
// PageRequestFromQuery.
func (r PageRequest) Values() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(r.Page))
	v.Set(ParamPageSize, strconv.Itoa(r.PageSize))
	if r.Search != nil {
		v.Set(ParamSearch, *r.Search)
	}
	if len(r.Sort) > 0 {
		parts := make([]string, len(r.Sort))
		for i, s := range r.Sort {
			if s.Descending {
				parts[i] = "-" + s.Field
			} else {
				parts[i] = s.Field
			}
		}
		v.Set(ParamSort, strings.Join(parts, ","))
	}
	return v
}

// PageRequestFromQuery reads page, page_size, search and sort from values.
// Unparseable numbers fall back to the configured defaults.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	req := PageRequest{
		Page:     atoi(values.Get(ParamPage)),
		PageSize: atoi(values.Get(ParamPageSize)),
		Sort:     query.ParseSortFields(values.Get(ParamSort)),
	}
	if s := strings.TrimSpace(values.Get(ParamSearch)); s != "" {
		req.Search = &s
	}
	req.Normalize(cfg)
	return req
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult computes TotalPages (never below 1) and replaces nil data
// with an empty slice so results always encode as a JSON array.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}
	pages := 1
	if pageSize > 0 && total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}
	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}

func (p PageResult[T]) HasNext() bool { return p.Page < p.TotalPages }

func (p PageResult[T]) HasPrev() bool { return p.Page > 1 }

// Link builds a Link header value with prev and next relations for the
// result, rooted at base. It returns "" when there is a single page.
func (p PageResult[T]) Link(base *url.URL, req PageRequest) string {
	var links []string
	if p.HasPrev() {
		links = append(links, fmt.Sprintf("<%s>; rel=%q", PageURL(base, req, p.Page-1), "prev"))
	}
	if p.HasNext() {
		links = append(links, fmt.Sprintf("<%s>; rel=%q", PageURL(base, req, p.Page+1), "next"))
	}
	return strings.Join(links, ", ")
}

// PageURL returns base with its query replaced by req moved to page.
func PageURL(base *url.URL, req PageRequest, page int) string {
	req.Page = page
	u := *base
	u.RawQuery = req.Values().Encode()
	return u.String()
}
