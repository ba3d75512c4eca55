// Package seo builds page metadata: title, description, canonical URL,
// robots directive, OpenGraph tags and schema.org JSON-LD.
package seo

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"strings"
	"unicode/utf8"
)

const (
	DescriptionMaxRunes = 160

	RobotsIndex   = "index,follow"
	RobotsNoIndex = "noindex,follow"
)

type Metadata struct {
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Canonical   string                   `json:"canonical"`
	Robots      string                   `json:"robots"`
	OpenGraph   OpenGraph                `json:"open_graph"`
	JSONLD      []map[string]interface{} `json:"json_ld,omitempty"`
	Breadcrumbs []Breadcrumb             `json:"breadcrumbs,omitempty"`
}

type OpenGraph struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	SiteName    string `json:"site_name"`
	Locale      string `json:"locale"`
}

type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Builder creates metadata for pages of one site.
type Builder struct {
	baseURL      string
	defaultImage string
}

func NewBuilder(baseURL, defaultImage string) *Builder {
	return &Builder{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		defaultImage: defaultImage,
	}
}

// AbsoluteURL resolves a site path against the base URL.
func (b *Builder) AbsoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.baseURL + path
}

// Page builds indexable metadata. canonicalPath may carry a canonical query.
func (b *Builder) Page(title, description, canonicalPath string) *Metadata {
	fullTitle := Title(title)
	description = TrimDescription(description)
	canonical := b.AbsoluteURL(canonicalPath)

	return &Metadata{
		Title:       fullTitle,
		Description: description,
		Canonical:   canonical,
		Robots:      RobotsIndex,
		OpenGraph: OpenGraph{
			Type:        "website",
			Title:       fullTitle,
			Description: description,
			URL:         canonical,
			Image:       b.defaultImage,
			SiteName:    constvars.SiteName,
			Locale:      constvars.SiteLocale,
		},
	}
}

// NotFound builds metadata for a missing page. It is never indexed.
func (b *Builder) NotFound(path string) *Metadata {
	return b.Page("Stranica nije pronađena", "Tražena stranica ne postoji ili je uklonjena.", path).NoIndex()
}

// Title appends the site suffix once.
func Title(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return constvars.SiteName
	}
	if strings.HasSuffix(title, constvars.SiteTitleSuffix) {
		return title
	}
	return title + constvars.SiteTitleSuffix
}

// TrimDescription collapses whitespace and cuts at a word boundary so the
// result fits in DescriptionMaxRunes, ellipsis included.
func TrimDescription(description string) string {
	description = strings.Join(strings.Fields(description), " ")
	if utf8.RuneCountInString(description) <= DescriptionMaxRunes {
		return description
	}

	runes := []rune(description)
	cut := string(runes[:DescriptionMaxRunes-1])
	if idx := strings.LastIndex(cut, " "); idx > DescriptionMaxRunes/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,.;:-") + "…"
}

func (m *Metadata) NoIndex() *Metadata {
	m.Robots = RobotsNoIndex
	return m
}

func (m *Metadata) WithType(ogType string) *Metadata {
	m.OpenGraph.Type = ogType
	return m
}

func (m *Metadata) WithImage(image string) *Metadata {
	if image != "" {
		m.OpenGraph.Image = image
	}
	return m
}

func (m *Metadata) WithJSONLD(documents ...map[string]interface{}) *Metadata {
	for _, document := range documents {
		if document != nil {
			m.JSONLD = append(m.JSONLD, document)
		}
	}
	return m
}

// WithBreadcrumbs sets the visible trail and adds the matching BreadcrumbList.
func (m *Metadata) WithBreadcrumbs(b *Builder, crumbs ...Breadcrumb) *Metadata {
	m.Breadcrumbs = crumbs
	return m.WithJSONLD(b.BreadcrumbList(crumbs))
}
