package constvars

const (
	URLParamSlug             = "slug"
	URLParamCity             = "grad"
	URLParamRegistrationType = "tip"
	URLParamStep             = "korak"
)

// Listing query keys. They are part of the public, bookmarkable URL surface.
const (
	URLQueryParamSearch    = "pretraga"
	URLQueryParamCity      = "grad"
	URLQueryParamCategory  = "kategorija"
	URLQueryParamSpecialty = "specijalnost"
	URLQueryParamSort      = "sortiranje"
	URLQueryParamPage      = "stranica"
)

// Backend query keys.
const (
	BackendQueryParamCity      = "city"
	BackendQueryParamCategory  = "category"
	BackendQueryParamSpecialty = "specialty"
	BackendQueryParamSort      = "sort"
	BackendQueryParamPage      = "page"
	BackendQueryParamPerPage   = "per_page"
	BackendQueryParamFields    = "fields"
)

const (
	SortByName    = "naziv"
	SortByRating  = "ocjena"
	SortByReviews = "recenzije"
	SortByNewest  = "najnovije"
)

const (
	DefaultListingPageSize = 24
	MaxListingPage         = 500
	DefaultReviewsLimit    = 20
)
