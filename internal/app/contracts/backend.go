package contracts

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"context"
	"net/url"
)

// ResourceBackend reads one directory collection by page or by slug.
type ResourceBackend[T any] interface {
	FindAll(ctx context.Context, params url.Values) ([]T, *models.ListMeta, error)
	FindBySlug(ctx context.Context, slug string) (*T, error)
	// ListAll walks the collection page by page, stopping after maxPages.
	ListAll(ctx context.Context, maxPages int) ([]T, error)
}

type ReviewedBackend[T any] interface {
	ResourceBackend[T]
	FindReviews(ctx context.Context, slug string, limit int) ([]models.Review, error)
}

type DoctorBackend interface {
	ReviewedBackend[models.Doctor]
}

type FacilityBackend[T models.Facility] interface {
	ReviewedBackend[T]
}

type BlogBackend interface {
	ResourceBackend[models.BlogPost]
	FindRelated(ctx context.Context, post *models.BlogPost, limit int) ([]models.BlogPost, error)
}

type QuestionBackend interface {
	ResourceBackend[models.Question]
	Create(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error)
}

type CityBackend interface {
	ResourceBackend[models.City]
}

type SpecialtyBackend interface {
	FindAll(ctx context.Context) ([]models.Specialty, error)
}

type RegistrationBackend interface {
	Register(ctx context.Context, registrationType string, payload map[string]interface{}) (map[string]interface{}, error)
}

type BackendHealthChecker interface {
	Ping(ctx context.Context) error
}
