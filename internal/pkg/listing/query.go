// Package listing composes directory listing pages from URL query state:
// server-side facets, client-side free text search, active filters and the
// empty state.
package listing

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"net/url"
	"strconv"
	"strings"
)

// Query is the bookmarkable state of a listing page.
type Query struct {
	Search    string `json:"pretraga,omitempty"`
	City      string `json:"grad,omitempty"`
	Category  string `json:"kategorija,omitempty"`
	Specialty string `json:"specijalnost,omitempty"`
	Sort      string `json:"sortiranje,omitempty"`
	Page      int    `json:"stranica,omitempty"`
}

// encodeOrder is the canonical key order of an encoded query.
var encodeOrder = []string{
	constvars.URLQueryParamSearch,
	constvars.URLQueryParamCity,
	constvars.URLQueryParamCategory,
	constvars.URLQueryParamSpecialty,
	constvars.URLQueryParamSort,
	constvars.URLQueryParamPage,
}

var sortOptions = map[string]bool{
	constvars.SortByName:    true,
	constvars.SortByRating:  true,
	constvars.SortByReviews: true,
	constvars.SortByNewest:  true,
}

// Parse reads a Query from URL values. Unknown sort values and invalid pages
// are dropped rather than rejected, so a mangled bookmark still renders.
func Parse(values url.Values) Query {
	query := Query{
		Search:    strings.Join(strings.Fields(values.Get(constvars.URLQueryParamSearch)), " "),
		City:      normalizeFacet(values.Get(constvars.URLQueryParamCity)),
		Category:  normalizeFacet(values.Get(constvars.URLQueryParamCategory)),
		Specialty: normalizeFacet(values.Get(constvars.URLQueryParamSpecialty)),
	}

	if sort := strings.TrimSpace(values.Get(constvars.URLQueryParamSort)); sortOptions[sort] {
		query.Sort = sort
	}

	if page, err := strconv.Atoi(values.Get(constvars.URLQueryParamPage)); err == nil && page > 1 {
		if page > constvars.MaxListingPage {
			page = constvars.MaxListingPage
		}
		query.Page = page
	}

	return query
}

func normalizeFacet(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if len(value) > constvars.SlugMaxLength {
		return ""
	}
	for _, r := range value {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return ""
		}
	}
	return value
}

// PageNumber returns the 1-based page.
func (q Query) PageNumber() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

// IsFiltered reports whether any filter, search or sort is active.
func (q Query) IsFiltered() bool {
	return q.Search != "" || q.City != "" || q.Category != "" || q.Specialty != "" || q.Sort != ""
}

// IsEmpty reports whether the query equals the bare listing.
func (q Query) IsEmpty() bool {
	return !q.IsFiltered() && q.PageNumber() == 1
}

func (q Query) get(key string) string {
	switch key {
	case constvars.URLQueryParamSearch:
		return q.Search
	case constvars.URLQueryParamCity:
		return q.City
	case constvars.URLQueryParamCategory:
		return q.Category
	case constvars.URLQueryParamSpecialty:
		return q.Specialty
	case constvars.URLQueryParamSort:
		return q.Sort
	case constvars.URLQueryParamPage:
		if q.PageNumber() > 1 {
			return strconv.Itoa(q.Page)
		}
	}
	return ""
}

// Without returns a copy of q with key cleared. Any filter change resets
// pagination.
func (q Query) Without(key string) Query {
	switch key {
	case constvars.URLQueryParamSearch:
		q.Search = ""
	case constvars.URLQueryParamCity:
		q.City = ""
	case constvars.URLQueryParamCategory:
		q.Category = ""
	case constvars.URLQueryParamSpecialty:
		q.Specialty = ""
	case constvars.URLQueryParamSort:
		q.Sort = ""
	}
	q.Page = 0
	return q
}

// WithPage returns a copy of q pointing at page.
func (q Query) WithPage(page int) Query {
	if page <= 1 {
		page = 0
	}
	q.Page = page
	return q
}

// Encode returns the canonical query string: fixed key order, empty values
// omitted, page 1 omitted.
func (q Query) Encode() string {
	var b strings.Builder
	for _, key := range encodeOrder {
		value := q.get(key)
		if value == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// URL returns basePath with the canonical query, or the bare basePath when
// no filter is active.
func (q Query) URL(basePath string) string {
	return Route{BasePath: basePath}.URL(q)
}

// BackendParams returns the facets, sort and page for the directory backend.
// Free text never leaves the portal; it is applied locally by Apply.
func (q Query) BackendParams() url.Values {
	params := url.Values{}
	if q.City != "" {
		params.Set(constvars.BackendQueryParamCity, q.City)
	}
	if q.Category != "" {
		params.Set(constvars.BackendQueryParamCategory, q.Category)
	}
	if q.Specialty != "" {
		params.Set(constvars.BackendQueryParamSpecialty, q.Specialty)
	}
	if q.Sort != "" {
		params.Set(constvars.BackendQueryParamSort, backendSort[q.Sort])
	}
	params.Set(constvars.BackendQueryParamPage, strconv.Itoa(q.PageNumber()))
	params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(constvars.DefaultListingPageSize))
	return params
}

var backendSort = map[string]string{
	constvars.SortByName:    "name",
	constvars.SortByRating:  "-rating",
	constvars.SortByReviews: "-reviews_count",
	constvars.SortByNewest:  "-created_at",
}

// Route describes where a listing lives. Listings that carry the city as a
// path segment (e.g. /domovi-njega/sarajevo) set CityInPath.
type Route struct {
	BasePath   string
	CityInPath bool
}

func (r Route) URL(q Query) string {
	path := r.BasePath
	if r.CityInPath && q.City != "" {
		path = strings.TrimSuffix(path, "/") + "/" + url.PathEscape(q.City)
		q.City = ""
	}
	encoded := q.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}
