package cities

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/seo"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBackend[T any] struct {
	mock.Mock
}

func (m *mockBackend[T]) FindAll(ctx context.Context, params url.Values) ([]T, *models.ListMeta, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]T)
	meta, _ := args.Get(1).(*models.ListMeta)
	return items, meta, args.Error(2)
}

func (m *mockBackend[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	args := m.Called(ctx, slug)
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func (m *mockBackend[T]) ListAll(ctx context.Context, maxPages int) ([]T, error) {
	args := m.Called(ctx, maxPages)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockBackend[T]) FindReviews(ctx context.Context, slug string, limit int) ([]models.Review, error) {
	args := m.Called(ctx, slug, limit)
	reviews, _ := args.Get(0).([]models.Review)
	return reviews, args.Error(1)
}

type backends struct {
	cities       *mockBackend[models.City]
	doctors      *mockBackend[models.Doctor]
	clinics      *mockBackend[models.Clinic]
	laboratories *mockBackend[models.Laboratory]
	spas         *mockBackend[models.Spa]
	careHomes    *mockBackend[models.CareHome]
}

func newBackends() backends {
	return backends{
		cities:       new(mockBackend[models.City]),
		doctors:      new(mockBackend[models.Doctor]),
		clinics:      new(mockBackend[models.Clinic]),
		laboratories: new(mockBackend[models.Laboratory]),
		spas:         new(mockBackend[models.Spa]),
		careHomes:    new(mockBackend[models.CareHome]),
	}
}

func (b backends) usecase() *cityUsecase {
	return NewCityUsecase(
		b.cities, b.doctors, b.clinics, b.laboratories, b.spas, b.careHomes,
		directory.Cache{}, seo.NewBuilder("https://bhzdravlje.ba", ""), zap.NewNop(),
	).(*cityUsecase)
}

func TestGetCityPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed section does not block the others", func(t *testing.T) {
		b := newBackends()
		b.cities.On("FindBySlug", ctx, "tuzla").Return(&models.City{Slug: "tuzla", Name: "Tuzla"}, nil)
		b.doctors.On("FindAll", ctx, mock.Anything).
			Return([]models.Doctor{{Slug: "a"}, {Slug: "b"}}, &models.ListMeta{Total: 17}, nil)
		b.clinics.On("FindAll", ctx, mock.Anything).
			Return(nil, nil, exceptions.ErrBackendUnavailable(errors.New("timeout")))
		b.laboratories.On("FindAll", ctx, mock.Anything).Return([]models.Laboratory{}, nil, nil)
		b.spas.On("FindAll", ctx, mock.Anything).Return([]models.Spa{{Category: "termalna"}}, nil, nil)
		b.careHomes.On("FindAll", ctx, mock.Anything).Return([]models.CareHome{}, nil, nil)

		page, err := b.usecase().GetCityPage(ctx, "tuzla")
		require.NoError(t, err)
		assert.False(t, page.NotFound)

		data := page.Data.(responses.CityPage)
		assert.Equal(t, "Tuzla", data.City.Name)

		assert.Empty(t, data.Doctors.Error)
		assert.Len(t, data.Doctors.Items, 2)
		assert.Equal(t, 17, data.Doctors.Total)
		assert.Equal(t, "/doktori?grad=tuzla", data.Doctors.ListingURL)

		assert.Equal(t, constvars.ErrClientSectionUnavailable, data.Clinics.Error)
		assert.NotNil(t, data.Clinics.Items)
		assert.Empty(t, data.Clinics.Items)

		assert.Equal(t, 1, data.Spas.Total)
		assert.Equal(t, "/domovi-njega/tuzla", data.CareHomes.ListingURL)

		params := b.doctors.Calls[0].Arguments.Get(1).(url.Values)
		assert.Equal(t, "tuzla", params.Get(constvars.BackendQueryParamCity))
	})

	t.Run("Unknown city", func(t *testing.T) {
		b := newBackends()
		b.cities.On("FindBySlug", ctx, "atlantida").Return(nil, exceptions.ErrNotFound(nil, constvars.ErrClientNotFound, "city"))

		page, err := b.usecase().GetCityPage(ctx, "atlantida")
		require.NoError(t, err)
		assert.True(t, page.NotFound)
		assert.Equal(t, constvars.ErrClientCityNotFound, page.Message)
		b.doctors.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("City lookup outage fails the page", func(t *testing.T) {
		b := newBackends()
		b.cities.On("FindBySlug", ctx, "tuzla").Return(nil, exceptions.ErrBackendStatus(500))

		page, err := b.usecase().GetCityPage(ctx, "tuzla")
		assert.Nil(t, page)
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCodeOf(err))
	})
}

func TestFindAllCities(t *testing.T) {
	ctx := context.Background()
	b := newBackends()
	b.cities.On("ListAll", ctx, cityListMaxPages).Return([]models.City{{Slug: "mostar"}}, nil)

	cities, err := b.usecase().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 1)
}
