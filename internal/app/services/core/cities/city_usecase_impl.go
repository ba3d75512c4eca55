package cities

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/seo"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

const (
	citySectionSize    = 6
	cityListMaxPages   = 10
	citiesListingLabel = "Gradovi"

	sectionDoctors      = "doctors"
	sectionClinics      = "clinics"
	sectionLaboratories = "laboratories"
	sectionSpas         = "spas"
	sectionCareHomes    = "care_homes"
)

type cityUsecase struct {
	CityBackend       contracts.CityBackend
	DoctorBackend     contracts.DoctorBackend
	ClinicBackend     contracts.FacilityBackend[models.Clinic]
	LaboratoryBackend contracts.FacilityBackend[models.Laboratory]
	SpaBackend        contracts.FacilityBackend[models.Spa]
	CareHomeBackend   contracts.FacilityBackend[models.CareHome]
	Cache             directory.Cache
	SEO               *seo.Builder
	Log               *zap.Logger
}

func NewCityUsecase(
	cityBackend contracts.CityBackend,
	doctorBackend contracts.DoctorBackend,
	clinicBackend contracts.FacilityBackend[models.Clinic],
	laboratoryBackend contracts.FacilityBackend[models.Laboratory],
	spaBackend contracts.FacilityBackend[models.Spa],
	careHomeBackend contracts.FacilityBackend[models.CareHome],
	cache directory.Cache,
	seoBuilder *seo.Builder,
	logger *zap.Logger,
) contracts.CityUsecase {
	return &cityUsecase{
		CityBackend:       cityBackend,
		DoctorBackend:     doctorBackend,
		ClinicBackend:     clinicBackend,
		LaboratoryBackend: laboratoryBackend,
		SpaBackend:        spaBackend,
		CareHomeBackend:   careHomeBackend,
		Cache:             cache,
		SEO:               seoBuilder,
		Log:               logger,
	}
}

// FindAll returns every city, served from redis when possible.
func (uc *cityUsecase) FindAll(ctx context.Context) ([]models.City, error) {
	requestID := utils.GetRequestID(ctx)

	cities, err := directory.Reference(ctx, uc.Cache, constvars.RedisKeyCityList, func(ctx context.Context) ([]models.City, error) {
		return uc.CityBackend.ListAll(ctx, cityListMaxPages)
	})
	if err != nil {
		uc.Log.Error("cityUsecase.FindAll error fetching cities",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("cityUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(cities)),
	)
	return cities, nil
}

// GetCityPage resolves the city, then loads every section in parallel. A
// failed section carries its own message and never fails the page.
func (uc *cityUsecase) GetCityPage(ctx context.Context, slug string) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	path := directory.ProfilePath(constvars.PagePathCity, slug)
	uc.Log.Info("cityUsecase.GetCityPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlugKey, slug),
	)

	if err := utils.ValidateSlug(slug); err != nil {
		return uc.notFound(path), nil
	}

	city, err := directory.FetchItem[models.City](ctx, uc.Cache, uc.CityBackend, constvars.EntityTypeCity, slug)
	if err != nil {
		if exceptions.IsNotFound(err) {
			return uc.notFound(path), nil
		}
		uc.Log.Error("cityUsecase.GetCityPage error resolving city",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	params := url.Values{}
	params.Set(constvars.BackendQueryParamCity, city.Slug)
	params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(citySectionSize))
	cityQuery := listing.Query{City: city.Slug}

	page := responses.CityPage{City: *city}

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		page.Doctors = loadSection[models.Doctor](ctx, uc, sectionDoctors, uc.DoctorBackend, params,
			cityQuery.URL(constvars.PagePathDoctors))
	}()
	go func() {
		defer wg.Done()
		page.Clinics = loadSection[models.Clinic](ctx, uc, sectionClinics, uc.ClinicBackend, params,
			cityQuery.URL(constvars.PagePathClinics))
	}()
	go func() {
		defer wg.Done()
		page.Laboratories = loadSection[models.Laboratory](ctx, uc, sectionLaboratories, uc.LaboratoryBackend, params,
			cityQuery.URL(constvars.PagePathLaboratories))
	}()
	go func() {
		defer wg.Done()
		page.Spas = loadSection[models.Spa](ctx, uc, sectionSpas, uc.SpaBackend, params,
			cityQuery.URL(constvars.PagePathSpas))
	}()
	go func() {
		defer wg.Done()
		page.CareHomes = loadSection[models.CareHome](ctx, uc, sectionCareHomes, uc.CareHomeBackend, params,
			listing.Route{BasePath: constvars.PagePathCareHomes, CityInPath: true}.URL(cityQuery))
	}()
	wg.Wait()

	return &responses.PageModel{
		Data: page,
		SEO:  uc.metadata(city, path),
	}, nil
}

func loadSection[T any](ctx context.Context, uc *cityUsecase, section string, backend contracts.ResourceBackend[T], params url.Values, listingURL string) responses.CitySection[T] {
	result := responses.CitySection[T]{
		Items:      []T{},
		ListingURL: listingURL,
	}

	var fetched directory.Page[T]
	err := utils.LogOperation(ctx, uc.Log, "cityUsecase.loadSection."+section, func() error {
		var err error
		fetched, err = directory.FetchPage[T](ctx, uc.Cache, backend, constvars.EntityTypeCity+":"+section, params)
		return err
	})
	if err != nil {
		metrics.CitySectionFailures.WithLabelValues(section).Inc()
		result.Error = constvars.ErrClientSectionUnavailable
		return result
	}

	result.Items = fetched.Items
	result.Total = len(fetched.Items)
	if fetched.Meta != nil {
		result.Total = fetched.Meta.Total
	}
	return result
}

func (uc *cityUsecase) metadata(city *models.City, path string) *seo.Metadata {
	title := "Doktori i zdravstvene ustanove - " + city.Name
	description := "Doktori, klinike, laboratorije, banje i domovi njege u gradu " + city.Name + ". Kontakti, lokacije i recenzije na jednom mjestu."

	return uc.SEO.Page(title, description, path).
		WithBreadcrumbs(uc.SEO,
			seo.Breadcrumb{Name: directory.HomeLabel, Path: constvars.PagePathHome},
			seo.Breadcrumb{Name: citiesListingLabel, Path: constvars.PagePathCities},
			seo.Breadcrumb{Name: city.Name, Path: path},
		)
}

func (uc *cityUsecase) notFound(path string) *responses.PageModel {
	return directory.NotFoundPage(uc.SEO, path, constvars.ErrClientCityNotFound, constvars.PagePathCities, citiesListingLabel)
}
