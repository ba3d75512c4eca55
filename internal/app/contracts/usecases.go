package contracts

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/listing"
	"context"
)

// DirectoryUsecase serves the listing and profile pages of one entity type.
// Unknown slugs yield a not-found page model, never an error.
type DirectoryUsecase interface {
	GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error)
	GetProfile(ctx context.Context, slug string) (*responses.PageModel, error)
}

type DoctorUsecase interface {
	DirectoryUsecase
}

type FacilityUsecase interface {
	DirectoryUsecase
	EntityType() string
}

type BlogUsecase interface {
	DirectoryUsecase
}

type QuestionUsecase interface {
	DirectoryUsecase
	AskQuestion(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error)
}

type CityUsecase interface {
	FindAll(ctx context.Context) ([]models.City, error)
	GetCityPage(ctx context.Context, slug string) (*responses.PageModel, error)
}

type SpecialtyUsecase interface {
	FindAll(ctx context.Context) ([]models.Specialty, error)
}

type RegistrationUsecase interface {
	GetDefinition(ctx context.Context, registrationType string) (*responses.RegistrationDefinition, error)
	ValidateStep(ctx context.Context, registrationType string, step int, request *requests.RegistrationStep) (*responses.StepResult, error)
	Submit(ctx context.Context, registrationType string, request *requests.RegistrationStep) (*responses.RegistrationSubmitted, error)
}

type CalculatorUsecase interface {
	CalculateBMI(ctx context.Context, request *requests.CalculateBMI) (*responses.BMIResult, error)
	CalculateDueDate(ctx context.Context, request *requests.CalculateDueDate) (*responses.DueDateResult, error)
}

type SitemapUsecase interface {
	Generate(ctx context.Context) error
	GetSitemap(ctx context.Context) ([]byte, error)
	GetRobots() []byte
}
