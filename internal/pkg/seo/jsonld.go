package seo

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"math"
)

const schemaContext = "https://schema.org"

// Schema.org types used by the directory.
const (
	TypePhysician           = "Physician"
	TypeMedicalClinic       = "MedicalClinic"
	TypeDiagnosticLab       = "DiagnosticLab"
	TypeDaySpa              = "DaySpa"
	TypeNursingHome         = "NursingHome"
	TypeMedicalOrganization = "MedicalOrganization"
)

type PostalAddress struct {
	StreetAddress string
	Locality      string
	Region        string
	PostalCode    string
}

type Rating struct {
	Value float64
	Count int
}

// Organization is the input for provider JSON-LD documents.
type Organization struct {
	Type             string
	AdditionalType   string
	Name             string
	Path             string
	Description      string
	Image            string
	Telephone        string
	Email            string
	Website          string
	Address          *PostalAddress
	Latitude         *float64
	Longitude        *float64
	MedicalSpecialty string
	Rating           *Rating
	OpeningHours     []string
}

type Article struct {
	Headline      string
	Description   string
	Path          string
	Image         string
	AuthorName    string
	DatePublished string
	Section       string
}

type QA struct {
	Name        string
	Text        string
	Path        string
	DateCreated string
	AuthorName  string
	Answers     []QAAnswer
}

type QAAnswer struct {
	Text        string
	DateCreated string
	AuthorName  string
}

type ListItem struct {
	Name string
	Path string
}

// ProviderDocument renders a Physician or an organization document.
func (b *Builder) ProviderDocument(org Organization) map[string]interface{} {
	document := map[string]interface{}{
		"@context": schemaContext,
		"@type":    org.Type,
		"name":     org.Name,
		"url":      b.AbsoluteURL(org.Path),
	}
	setIfNotEmpty(document, "additionalType", org.AdditionalType)
	setIfNotEmpty(document, "description", TrimDescription(org.Description))
	setIfNotEmpty(document, "image", org.Image)
	setIfNotEmpty(document, "telephone", org.Telephone)
	setIfNotEmpty(document, "email", org.Email)
	setIfNotEmpty(document, "sameAs", org.Website)
	setIfNotEmpty(document, "medicalSpecialty", org.MedicalSpecialty)
	if len(org.OpeningHours) > 0 {
		document["openingHours"] = org.OpeningHours
	}

	if org.Address != nil {
		address := map[string]interface{}{
			"@type":          "PostalAddress",
			"addressCountry": constvars.SiteCountryCode,
		}
		setIfNotEmpty(address, "streetAddress", org.Address.StreetAddress)
		setIfNotEmpty(address, "addressLocality", org.Address.Locality)
		setIfNotEmpty(address, "addressRegion", org.Address.Region)
		setIfNotEmpty(address, "postalCode", org.Address.PostalCode)
		document["address"] = address
	}

	if org.Latitude != nil && org.Longitude != nil {
		document["geo"] = map[string]interface{}{
			"@type":     "GeoCoordinates",
			"latitude":  *org.Latitude,
			"longitude": *org.Longitude,
		}
	}

	if rating := AggregateRating(org.Rating); rating != nil {
		document["aggregateRating"] = rating
	}
	return document
}

// AggregateRating is only emitted when there is at least one review.
func AggregateRating(rating *Rating) map[string]interface{} {
	if rating == nil || rating.Count <= 0 || rating.Value <= 0 {
		return nil
	}
	return map[string]interface{}{
		"@type":       "AggregateRating",
		"ratingValue": math.Round(rating.Value*10) / 10,
		"reviewCount": rating.Count,
		"bestRating":  5,
		"worstRating": 1,
	}
}

func (b *Builder) BlogPosting(article Article) map[string]interface{} {
	document := map[string]interface{}{
		"@context":         schemaContext,
		"@type":            "BlogPosting",
		"headline":         article.Headline,
		"url":              b.AbsoluteURL(article.Path),
		"mainEntityOfPage": b.AbsoluteURL(article.Path),
		"inLanguage":       constvars.SiteLanguage,
		"publisher": map[string]interface{}{
			"@type": "Organization",
			"name":  constvars.SiteName,
			"url":   b.AbsoluteURL("/"),
		},
	}
	setIfNotEmpty(document, "description", TrimDescription(article.Description))
	setIfNotEmpty(document, "image", article.Image)
	setIfNotEmpty(document, "datePublished", article.DatePublished)
	setIfNotEmpty(document, "articleSection", article.Section)
	if article.AuthorName != "" {
		document["author"] = map[string]interface{}{"@type": "Person", "name": article.AuthorName}
	}
	return document
}

func (b *Builder) QAPage(qa QA) map[string]interface{} {
	question := map[string]interface{}{
		"@type":       "Question",
		"name":        qa.Name,
		"text":        qa.Text,
		"answerCount": len(qa.Answers),
	}
	setIfNotEmpty(question, "dateCreated", qa.DateCreated)
	if qa.AuthorName != "" {
		question["author"] = map[string]interface{}{"@type": "Person", "name": qa.AuthorName}
	}

	if len(qa.Answers) > 0 {
		answers := make([]map[string]interface{}, 0, len(qa.Answers))
		for _, answer := range qa.Answers {
			item := map[string]interface{}{
				"@type": "Answer",
				"text":  answer.Text,
				"url":   b.AbsoluteURL(qa.Path),
			}
			setIfNotEmpty(item, "dateCreated", answer.DateCreated)
			if answer.AuthorName != "" {
				item["author"] = map[string]interface{}{"@type": "Person", "name": answer.AuthorName}
			}
			answers = append(answers, item)
		}
		question["suggestedAnswer"] = answers
	}

	return map[string]interface{}{
		"@context":   schemaContext,
		"@type":      "QAPage",
		"mainEntity": question,
	}
}

func (b *Builder) ItemList(items []ListItem) map[string]interface{} {
	elements := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"url":      b.AbsoluteURL(item.Path),
		})
	}
	return map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "ItemList",
		"numberOfItems":   len(items),
		"itemListElement": elements,
	}
}

func (b *Builder) BreadcrumbList(crumbs []Breadcrumb) map[string]interface{} {
	if len(crumbs) == 0 {
		return nil
	}
	elements := make([]map[string]interface{}, 0, len(crumbs))
	for i, crumb := range crumbs {
		elements = append(elements, map[string]interface{}{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     b.AbsoluteURL(crumb.Path),
		})
	}
	return map[string]interface{}{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}
}

func setIfNotEmpty(document map[string]interface{}, key, value string) {
	if value != "" {
		document[key] = value
	}
}
