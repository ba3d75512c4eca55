package doctors

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/seo"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

const (
	listingTitle       = "Doktori u Bosni i Hercegovini"
	listingDescription = "Pronađite doktora po specijalnosti i gradu, pročitajte recenzije pacijenata i zakažite pregled."
	listingLabel       = "Doktori"
)

type doctorUsecase struct {
	DoctorBackend contracts.DoctorBackend
	Cache         directory.Cache
	SEO           *seo.Builder
	Log           *zap.Logger
	listCfg       directory.ListingConfig[models.Doctor]
}

func NewDoctorUsecase(
	doctorBackend contracts.DoctorBackend,
	cache directory.Cache,
	seoBuilder *seo.Builder,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorBackend: doctorBackend,
		Cache:         cache,
		SEO:           seoBuilder,
		Log:           logger,
		listCfg: directory.ListingConfig[models.Doctor]{
			Route:       listing.Route{BasePath: constvars.PagePathDoctors},
			Title:       listingTitle,
			Description: listingDescription,
			Label:       listingLabel,
			TextOf:      models.Doctor.SearchText,
			NameOf:      models.Doctor.FullName,
			PathOf: func(d models.Doctor) string {
				return directory.ProfilePath(constvars.PagePathDoctor, d.Slug)
			},
		},
	}
}

func (uc *doctorUsecase) GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetListing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingListingFiltersKey, query),
	)

	page, err := directory.FetchPage[models.Doctor](ctx, uc.Cache, uc.DoctorBackend, constvars.EntityTypeDoctor, query.BackendParams())
	if err != nil {
		uc.Log.Error("doctorUsecase.GetListing error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return directory.BuildListingPage(uc.SEO, uc.listCfg, query, page), nil
}

// GetProfile loads the doctor and the reviews concurrently. A review failure
// only blanks the reviews block.
func (uc *doctorUsecase) GetProfile(ctx context.Context, slug string) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	path := directory.ProfilePath(constvars.PagePathDoctor, slug)
	uc.Log.Info("doctorUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlugKey, slug),
	)

	if err := utils.ValidateSlug(slug); err != nil {
		return uc.notFound(path), nil
	}

	var (
		wg         sync.WaitGroup
		doctor     *models.Doctor
		reviews    []models.Review
		doctorErr  error
		reviewsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		doctor, doctorErr = directory.FetchItem[models.Doctor](ctx, uc.Cache, uc.DoctorBackend, constvars.EntityTypeDoctor, slug)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = uc.DoctorBackend.FindReviews(ctx, slug, constvars.DefaultReviewsLimit)
	}()
	wg.Wait()

	if doctorErr != nil {
		if exceptions.IsNotFound(doctorErr) {
			uc.Log.Info("doctorUsecase.GetProfile doctor not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSlugKey, slug),
			)
			return uc.notFound(path), nil
		}
		uc.Log.Error("doctorUsecase.GetProfile error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(doctorErr),
		)
		return nil, doctorErr
	}

	profile := responses.DoctorProfile{
		Doctor:  *doctor,
		Reviews: reviews,
		Extras: directory.Extras(uc.SEO, path, doctor.FullName(), &directory.Location{
			Latitude:  doctor.Latitude,
			Longitude: doctor.Longitude,
			Address:   doctor.Address,
			City:      doctor.CityName(),
		}, doctor.VideoURL),
	}
	if reviewsErr != nil {
		uc.Log.Warn("doctorUsecase.GetProfile reviews unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(reviewsErr),
		)
		profile.Reviews = []models.Review{}
		profile.ReviewsError = constvars.ErrClientReviewsUnavailable
	}

	return &responses.PageModel{
		Data: profile,
		SEO:  uc.metadata(doctor, path),
	}, nil
}

func (uc *doctorUsecase) metadata(doctor *models.Doctor, path string) *seo.Metadata {
	title := doctor.FullName()
	if specialty := doctor.SpecialtyName(); specialty != "" {
		title += ", " + specialty
	}
	if city := doctor.CityName(); city != "" {
		title += " - " + city
	}

	description := doctor.Bio
	if description == "" {
		description = title + ". Pogledajte kontakt, lokaciju i recenzije pacijenata."
	}

	var address *seo.PostalAddress
	if doctor.Address != "" || doctor.City != nil {
		address = &seo.PostalAddress{StreetAddress: doctor.Address, Locality: doctor.CityName()}
		if doctor.City != nil {
			address.Region = doctor.City.Region
			address.PostalCode = doctor.City.PostalCode
		}
	}

	document := uc.SEO.ProviderDocument(seo.Organization{
		Type:             seo.TypePhysician,
		Name:             doctor.FullName(),
		Path:             path,
		Description:      doctor.Bio,
		Image:            doctor.PhotoURL,
		Telephone:        doctor.Phone,
		Email:            doctor.Email,
		Address:          address,
		Latitude:         doctor.Latitude,
		Longitude:        doctor.Longitude,
		MedicalSpecialty: doctor.SpecialtyName(),
		Rating:           directory.Rating(doctor.Rating, doctor.ReviewCount),
	})

	return uc.SEO.Page(title, description, path).
		WithType("profile").
		WithImage(doctor.PhotoURL).
		WithJSONLD(document).
		WithBreadcrumbs(uc.SEO,
			seo.Breadcrumb{Name: directory.HomeLabel, Path: constvars.PagePathHome},
			seo.Breadcrumb{Name: listingLabel, Path: constvars.PagePathDoctors},
			seo.Breadcrumb{Name: doctor.FullName(), Path: path},
		)
}

func (uc *doctorUsecase) notFound(path string) *responses.PageModel {
	return directory.NotFoundPage(uc.SEO, path, constvars.ErrClientDoctorNotFound, constvars.PagePathDoctors, listingLabel)
}
