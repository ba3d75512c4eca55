package directory

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/links"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/seo"
	"fmt"
)

const HomeLabel = "Početna"

// ListingConfig describes one listing page type.
type ListingConfig[T any] struct {
	Route       listing.Route
	Title       string
	Description string
	Label       string
	TextOf      func(T) string
	NameOf      func(T) string
	PathOf      func(T) string
}

// BuildListingPage composes the listing result of a fetched page with its
// metadata. Anything but the bare first page is kept out of the index.
func BuildListingPage[T any](builder *seo.Builder, cfg ListingConfig[T], query listing.Query, page Page[T]) *responses.PageModel {
	result := listing.Compose(cfg.Route, query, page.Items, cfg.TextOf)

	perPage, totalItems, totalPages := constvars.DefaultListingPageSize, len(page.Items), 1
	if page.Meta != nil {
		perPage, totalItems, totalPages = page.Meta.PerPage, page.Meta.Total, page.Meta.LastPage
	}
	result = result.WithPagination(cfg.Route, perPage, totalItems, totalPages)

	title := cfg.Title
	if query.PageNumber() > 1 {
		title = fmt.Sprintf("%s - stranica %d", title, query.PageNumber())
	}

	metadata := builder.Page(title, cfg.Description, result.CanonicalURL)
	if !query.IsEmpty() {
		metadata.NoIndex()
	}

	items := make([]seo.ListItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, seo.ListItem{Name: cfg.NameOf(item), Path: cfg.PathOf(item)})
	}
	metadata.WithJSONLD(builder.ItemList(items)).WithBreadcrumbs(builder,
		seo.Breadcrumb{Name: HomeLabel, Path: constvars.PagePathHome},
		seo.Breadcrumb{Name: cfg.Label, Path: cfg.Route.BasePath},
	)

	return &responses.PageModel{
		Data: result,
		SEO:  metadata,
	}
}

// NotFoundPage is rendered for unknown or malformed slugs.
func NotFoundPage(builder *seo.Builder, path, message, listingPath, listingLabel string) *responses.PageModel {
	return responses.NewNotFoundPage(builder.NotFound(path), message, listingPath, listingLabel)
}

// ProfilePath joins a profile base path and slug.
func ProfilePath(basePath, slug string) string {
	return basePath + "/" + slug
}

// Location is what the maps link needs.
type Location struct {
	Latitude  *float64
	Longitude *float64
	Address   string
	City      string
}

// Extras builds the browser integrations of a profile page.
func Extras(builder *seo.Builder, path, title string, location *Location, videoURL string) responses.ProfileExtras {
	extras := responses.ProfileExtras{
		Share: links.Share(builder.AbsoluteURL(path), title),
	}
	if location != nil {
		extras.DirectionsURL = links.Directions(location.Latitude, location.Longitude, location.Address, location.City)
	}
	if embedURL, ok := links.YouTubeEmbed(videoURL); ok {
		extras.VideoEmbedURL = embedURL
	}
	return extras
}

// Rating converts backend aggregates for JSON-LD.
func Rating(value *float64, count int) *seo.Rating {
	if value == nil {
		return nil
	}
	return &seo.Rating{Value: *value, Count: count}
}
