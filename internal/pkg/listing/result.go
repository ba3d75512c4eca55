package listing

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/textnorm"
)

const (
	EmptyStateFilteredMessage = "Nema rezultata za odabrane filtere. Pokušajte ukloniti neki od filtera ili promijeniti pojam pretrage."
	EmptyStateBareMessage     = "Trenutno nema unosa u ovoj kategoriji."
	ClearFiltersLabel         = "Očisti sve filtere"
)

var filterLabels = map[string]string{
	constvars.URLQueryParamSearch:    "Pretraga",
	constvars.URLQueryParamCity:      "Grad",
	constvars.URLQueryParamCategory:  "Kategorija",
	constvars.URLQueryParamSpecialty: "Specijalnost",
	constvars.URLQueryParamSort:      "Sortiranje",
}

type ActiveFilter struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	RemoveURL string `json:"remove_url"`
}

type EmptyState struct {
	Message       string `json:"message"`
	ClearURL      string `json:"clear_url,omitempty"`
	ClearLabel    string `json:"clear_label,omitempty"`
	FiltersActive bool   `json:"filters_active"`
}

type Pagination struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	PrevURL    string `json:"prev_url,omitempty"`
	NextURL    string `json:"next_url,omitempty"`
}

// Result is the data of a listing page.
type Result[T any] struct {
	Items         []T            `json:"items"`
	Total         int            `json:"total"`
	Count         int            `json:"count"`
	Query         Query          `json:"query"`
	CanonicalURL  string         `json:"canonical_url"`
	ActiveFilters []ActiveFilter `json:"active_filters"`
	ClearURL      string         `json:"clear_url"`
	EmptyState    *EmptyState    `json:"empty_state,omitempty"`
	Pagination    *Pagination    `json:"pagination,omitempty"`
}

// Apply filters items by the free text search of query, ignoring case and
// diacritics. textOf returns the searchable text of an item.
func Apply[T any](items []T, query Query, textOf func(T) string) []T {
	if query.Search == "" {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if textnorm.Contains(textOf(item), query.Search) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Compose builds the listing result for the fetched page. Total is the
// unfiltered size of the fetched page; Count is what remains after the
// local text search.
func Compose[T any](route Route, query Query, fetched []T, textOf func(T) string) Result[T] {
	if fetched == nil {
		fetched = []T{}
	}
	items := Apply(fetched, query, textOf)

	result := Result[T]{
		Items:         items,
		Total:         len(fetched),
		Count:         len(items),
		Query:         query,
		CanonicalURL:  route.URL(query),
		ActiveFilters: ActiveFilters(route, query),
		ClearURL:      route.BasePath,
	}
	if result.Count == 0 {
		result.EmptyState = NewEmptyState(route, query)
	}
	return result
}

// ActiveFilters lists every active filter with the URL that removes it.
func ActiveFilters(route Route, query Query) []ActiveFilter {
	filters := []ActiveFilter{}
	for _, key := range encodeOrder {
		if key == constvars.URLQueryParamPage {
			continue
		}
		value := query.get(key)
		if value == "" {
			continue
		}
		filters = append(filters, ActiveFilter{
			Key:       key,
			Label:     filterLabels[key],
			Value:     value,
			RemoveURL: route.URL(query.Without(key)),
		})
	}
	return filters
}

func NewEmptyState(route Route, query Query) *EmptyState {
	if !query.IsFiltered() {
		return &EmptyState{Message: EmptyStateBareMessage}
	}
	return &EmptyState{
		Message:       EmptyStateFilteredMessage,
		ClearURL:      route.BasePath,
		ClearLabel:    ClearFiltersLabel,
		FiltersActive: true,
	}
}

// WithPagination attaches pagination links computed from the backend totals.
func (r Result[T]) WithPagination(route Route, perPage, totalItems, totalPages int) Result[T] {
	page := r.Query.PageNumber()
	if perPage <= 0 {
		perPage = constvars.DefaultListingPageSize
	}
	if totalPages <= 0 && totalItems > 0 {
		totalPages = (totalItems + perPage - 1) / perPage
	}

	pagination := &Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
	if page > 1 {
		pagination.PrevURL = route.URL(r.Query.WithPage(page - 1))
	}
	if page < totalPages {
		pagination.NextURL = route.URL(r.Query.WithPage(page + 1))
	}
	r.Pagination = pagination
	return r
}
