package responses

import (
	"bhzdravlje-service/internal/pkg/links"
	"bhzdravlje-service/internal/pkg/seo"
)

// PageModel is what the web client renders for every page.
type PageModel struct {
	Data     interface{}   `json:"data,omitempty"`
	SEO      *seo.Metadata `json:"seo"`
	NotFound bool          `json:"not_found,omitempty"`
	Message  string        `json:"message,omitempty"`
	Links    *EscapeLinks  `json:"links,omitempty"`
}

// EscapeLinks lead away from a not-found page.
type EscapeLinks struct {
	Home         string `json:"home"`
	Listing      string `json:"listing,omitempty"`
	ListingLabel string `json:"listing_label,omitempty"`
}

func NewNotFoundPage(metadata *seo.Metadata, message, listingPath, listingLabel string) *PageModel {
	return &PageModel{
		SEO:      metadata,
		NotFound: true,
		Message:  message,
		Links: &EscapeLinks{
			Home:         "/",
			Listing:      listingPath,
			ListingLabel: listingLabel,
		},
	}
}

// ProfileExtras are the browser integrations attached to a profile page.
type ProfileExtras struct {
	DirectionsURL string           `json:"directions_url,omitempty"`
	Share         links.ShareLinks `json:"share"`
	VideoEmbedURL string           `json:"video_embed_url,omitempty"`
}
