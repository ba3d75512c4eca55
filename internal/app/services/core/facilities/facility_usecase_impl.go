package facilities

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

type facilityUsecase[T models.Facility] struct {
	FacilityBackend contracts.FacilityBackend[T]
	Cache           directory.Cache
	SEO             *seo.Builder
	Log             *zap.Logger
	kind            Kind[T]
	listCfg         directory.ListingConfig[T]
}

func NewFacilityUsecase[T models.Facility](
	kind Kind[T],
	facilityBackend contracts.FacilityBackend[T],
	cache directory.Cache,
	seoBuilder *seo.Builder,
	logger *zap.Logger,
) contracts.FacilityUsecase {
	return &facilityUsecase[T]{
		FacilityBackend: facilityBackend,
		Cache:           cache,
		SEO:             seoBuilder,
		Log:             logger,
		kind:            kind,
		listCfg: directory.ListingConfig[T]{
			Route:       listing.Route{BasePath: kind.ListingPath, CityInPath: kind.CityInPath},
			Title:       kind.ListingTitle,
			Description: kind.ListingDescription,
			Label:       kind.ListingLabel,
			TextOf: func(facility T) string {
				return facility.SearchText()
			},
			NameOf: func(facility T) string {
				return facility.Core().Name
			},
			PathOf: func(facility T) string {
				return directory.ProfilePath(kind.ProfilePath, facility.Core().Slug)
			},
		},
	}
}

func (uc *facilityUsecase[T]) EntityType() string {
	return uc.kind.EntityType
}

func (uc *facilityUsecase[T]) GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("facilityUsecase.GetListing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, uc.kind.EntityType),
		zap.Any(constvars.LoggingListingFiltersKey, query),
	)

	page, err := directory.FetchPage[T](ctx, uc.Cache, uc.FacilityBackend, uc.kind.EntityType, query.BackendParams())
	if err != nil {
		uc.Log.Error("facilityUsecase.GetListing error fetching facilities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, uc.kind.EntityType),
			zap.Error(err),
		)
		return nil, err
	}

	return directory.BuildListingPage(uc.SEO, uc.listCfg, query, page), nil
}

func (uc *facilityUsecase[T]) GetProfile(ctx context.Context, slug string) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	path := directory.ProfilePath(uc.kind.ProfilePath, slug)
	uc.Log.Info("facilityUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, uc.kind.EntityType),
		zap.String(constvars.LoggingSlugKey, slug),
	)

	if err := utils.ValidateSlug(slug); err != nil {
		return uc.notFound(path), nil
	}

	var (
		wg          sync.WaitGroup
		facility    *T
		reviews     []models.Review
		facilityErr error
		reviewsErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		facility, facilityErr = directory.FetchItem[T](ctx, uc.Cache, uc.FacilityBackend, uc.kind.EntityType, slug)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = uc.FacilityBackend.FindReviews(ctx, slug, constvars.DefaultReviewsLimit)
	}()
	wg.Wait()

	if facilityErr != nil {
		if exceptions.IsNotFound(facilityErr) {
			return uc.notFound(path), nil
		}
		uc.Log.Error("facilityUsecase.GetProfile error fetching facility",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, uc.kind.EntityType),
			zap.Error(facilityErr),
		)
		return nil, facilityErr
	}

	core := (*facility).Core()
	profile := responses.FacilityProfile[T]{
		Facility: *facility,
		Type:     uc.kind.EntityType,
		Reviews:  reviews,
		Extras: directory.Extras(uc.SEO, path, core.Name, &directory.Location{
			Latitude:  core.Latitude,
			Longitude: core.Longitude,
			Address:   core.Address,
			City:      core.CityName(),
		}, core.VideoURL),
	}
	if reviewsErr != nil {
		uc.Log.Warn("facilityUsecase.GetProfile reviews unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(reviewsErr),
		)
		profile.Reviews = []models.Review{}
		profile.ReviewsError = constvars.ErrClientReviewsUnavailable
	}

	return &responses.PageModel{
		Data: profile,
		SEO:  uc.metadata(*facility, path),
	}, nil
}

func (uc *facilityUsecase[T]) metadata(facility T, path string) *seo.Metadata {
	core := facility.Core()
	title := core.Name
	if city := core.CityName(); city != "" {
		title += " - " + city
	}

	description := core.Description
	if description == "" {
		description = title + ". Adresa, kontakt, radno vrijeme i recenzije."
	}

	var address *seo.PostalAddress
	if core.Address != "" || core.City != nil {
		address = &seo.PostalAddress{StreetAddress: core.Address, Locality: core.CityName()}
		if core.City != nil {
			address.Region = core.City.Region
			address.PostalCode = core.City.PostalCode
		}
	}

	document := uc.SEO.ProviderDocument(seo.Organization{
		Type:             uc.kind.SchemaType,
		AdditionalType:   uc.kind.AdditionalType,
		Name:             core.Name,
		Path:             path,
		Description:      core.Description,
		Image:            core.LogoURL,
		Telephone:        core.Phone,
		Email:            core.Email,
		Website:          core.Website,
		Address:          address,
		Latitude:         core.Latitude,
		Longitude:        core.Longitude,
		MedicalSpecialty: uc.kind.specialty(facility),
		Rating:           directory.Rating(core.Rating, core.ReviewCount),
		OpeningHours:     core.WorkingHours,
	})

	return uc.SEO.Page(title, description, path).
		WithImage(core.LogoURL).
		WithJSONLD(document).
		WithBreadcrumbs(uc.SEO,
			seo.Breadcrumb{Name: directory.HomeLabel, Path: constvars.PagePathHome},
			seo.Breadcrumb{Name: uc.kind.ListingLabel, Path: uc.kind.ListingPath},
			seo.Breadcrumb{Name: core.Name, Path: path},
		)
}

func (uc *facilityUsecase[T]) notFound(path string) *responses.PageModel {
	return directory.NotFoundPage(uc.SEO, path, uc.kind.NotFoundMessage, uc.kind.ListingPath, uc.kind.ListingLabel)
}
