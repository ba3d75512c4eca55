package controllers

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/listing"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockQuestionUsecase struct {
	mock.Mock
}

func (m *mockQuestionUsecase) GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error) {
	args := m.Called(ctx, query)
	page, _ := args.Get(0).(*responses.PageModel)
	return page, args.Error(1)
}

func (m *mockQuestionUsecase) GetProfile(ctx context.Context, slug string) (*responses.PageModel, error) {
	args := m.Called(ctx, slug)
	page, _ := args.Get(0).(*responses.PageModel)
	return page, args.Error(1)
}

func (m *mockQuestionUsecase) AskQuestion(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error) {
	args := m.Called(ctx, request)
	question, _ := args.Get(0).(*models.Question)
	return question, args.Error(1)
}

type mockRegistrationUsecase struct {
	mock.Mock
}

func (m *mockRegistrationUsecase) GetDefinition(ctx context.Context, registrationType string) (*responses.RegistrationDefinition, error) {
	args := m.Called(ctx, registrationType)
	definition, _ := args.Get(0).(*responses.RegistrationDefinition)
	return definition, args.Error(1)
}

func (m *mockRegistrationUsecase) ValidateStep(ctx context.Context, registrationType string, step int, request *requests.RegistrationStep) (*responses.StepResult, error) {
	args := m.Called(ctx, registrationType, step, request)
	result, _ := args.Get(0).(*responses.StepResult)
	return result, args.Error(1)
}

func (m *mockRegistrationUsecase) Submit(ctx context.Context, registrationType string, request *requests.RegistrationStep) (*responses.RegistrationSubmitted, error) {
	args := m.Called(ctx, registrationType, request)
	result, _ := args.Get(0).(*responses.RegistrationSubmitted)
	return result, args.Error(1)
}

type mockSitemapUsecase struct {
	mock.Mock
}

func (m *mockSitemapUsecase) Generate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSitemapUsecase) GetSitemap(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	document, _ := args.Get(0).([]byte)
	return document, args.Error(1)
}

func (m *mockSitemapUsecase) GetRobots() []byte {
	return m.Called().Get(0).([]byte)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// serve routes a single request through chi so URL params resolve.
func serve(method, pattern, target string, body string, handler http.HandlerFunc, headers map[string]string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, handler)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestDirectoryController(t *testing.T) {
	usecase := new(mockQuestionUsecase)
	ctrl := NewDirectoryController(zap.NewNop(), usecase, time.Second)

	t.Run("City path segment becomes the city facet", func(t *testing.T) {
		usecase.On("GetListing", mock.Anything, mock.MatchedBy(func(q listing.Query) bool {
			return q.City == "tuzla" && q.Sort == "ocjena"
		})).Return(&responses.PageModel{Data: []string{}}, nil).Once()

		rr := serve(http.MethodGet, "/domovi-njega/{grad}", "/domovi-njega/tuzla?sortiranje=ocjena&grad=mostar", "", ctrl.GetListing, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, true, decodeBody(t, rr)["success"])
	})

	t.Run("Unknown slug answers with the not found page", func(t *testing.T) {
		page := responses.NewNotFoundPage(nil, "Doktor nije pronađen", "/doktori", "Svi doktori")
		usecase.On("GetProfile", mock.Anything, "nepostojeci").Return(page, nil).Once()

		rr := serve(http.MethodGet, "/doktor/{slug}", "/doktor/nepostojeci", "", ctrl.GetProfile, nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeBody(t, rr)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["not_found"])
		assert.Equal(t, "/doktori", data["links"].(map[string]interface{})["listing"])
	})

	t.Run("Backend failure is a banner error", func(t *testing.T) {
		usecase.On("GetProfile", mock.Anything, "dr-a").Return(nil, exceptions.ErrBackendUnavailable(errors.New("dial tcp"))).Once()

		rr := serve(http.MethodGet, "/doktor/{slug}", "/doktor/dr-a", "", ctrl.GetProfile, nil)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, false, decodeBody(t, rr)["success"])
	})

	t.Run("Deadline is reported as a timeout", func(t *testing.T) {
		usecase.On("GetProfile", mock.Anything, "spor").Return(nil, context.DeadlineExceeded).Once()

		rr := serve(http.MethodGet, "/doktor/{slug}", "/doktor/spor", "", ctrl.GetProfile, nil)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	usecase.AssertExpectations(t)
}

func TestQuestionController_AskQuestion(t *testing.T) {
	usecase := new(mockQuestionUsecase)
	ctrl := NewQuestionController(zap.NewNop(), usecase, time.Second)

	usecase.On("AskQuestion", mock.Anything, mock.MatchedBy(func(r *requests.CreateQuestion) bool {
		return r.Title == "Bol u leđima nakon trčanja"
	})).Return(&models.Question{Slug: "bol-u-ledjima"}, nil).Once()

	rr := serve(http.MethodPost, "/pitanja", "/pitanja",
		`{"title":"Bol u leđima nakon trčanja","content":"Već dvije sedmice osjećam bol nakon trčanja."}`,
		ctrl.AskQuestion, nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, constvars.CreateQuestionSuccessMessage, decodeBody(t, rr)["message"])

	t.Run("Malformed body", func(t *testing.T) {
		rr := serve(http.MethodPost, "/pitanja", "/pitanja", `{"title":`, ctrl.AskQuestion, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	usecase.AssertExpectations(t)
}

func TestRegistrationController(t *testing.T) {
	usecase := new(mockRegistrationUsecase)
	ctrl := NewRegistrationController(zap.NewNop(), usecase, time.Second)
	const pattern = "/registracija/{tip}/korak/{korak}"

	t.Run("Header token is used when the body has none", func(t *testing.T) {
		usecase.On("ValidateStep", mock.Anything, "klinika", 2, mock.MatchedBy(func(r *requests.RegistrationStep) bool {
			return r.StepToken == "header-token"
		})).Return(&responses.StepResult{Step: 2, NextStep: 3, StepToken: "next"}, nil).Once()

		rr := serve(http.MethodPost, pattern, "/registracija/klinika/korak/2", `{"data":{"name":"Poliklinika"}}`,
			ctrl.ValidateStep, map[string]string{constvars.HeaderXStepToken: "header-token"})

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeBody(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["next_step"])
	})

	t.Run("Body token wins over the header", func(t *testing.T) {
		usecase.On("ValidateStep", mock.Anything, "klinika", 3, mock.MatchedBy(func(r *requests.RegistrationStep) bool {
			return r.StepToken == "body-token"
		})).Return(&responses.StepResult{Step: 3, Completed: true, StepToken: "done"}, nil).Once()

		rr := serve(http.MethodPost, pattern, "/registracija/klinika/korak/3", `{"step_token":"body-token","data":{}}`,
			ctrl.ValidateStep, map[string]string{constvars.HeaderXStepToken: "header-token"})

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Non numeric step is not found", func(t *testing.T) {
		rr := serve(http.MethodPost, pattern, "/registracija/klinika/korak/dva", `{"data":{}}`, ctrl.ValidateStep, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Field errors are returned keyed by field", func(t *testing.T) {
		fieldErr := exceptions.ErrFieldValidation(map[string][]string{"password_confirmation": {"lozinke se ne podudaraju"}}, "validation failed")
		usecase.On("Submit", mock.Anything, "klinika", mock.Anything).Return(nil, fieldErr).Once()

		rr := serve(http.MethodPost, "/registracija/{tip}", "/registracija/klinika", `{"data":{}}`, ctrl.Submit, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		errs := decodeBody(t, rr)["errors"].(map[string]interface{})
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "password_confirmation")
	})

	t.Run("Submit success is created", func(t *testing.T) {
		usecase.On("Submit", mock.Anything, "banja", mock.Anything).Return(&responses.RegistrationSubmitted{
			Type:    "banja",
			Message: constvars.RegistrationSuccessMessage,
		}, nil).Once()

		rr := serve(http.MethodPost, "/registracija/{tip}", "/registracija/banja", `{"data":{}}`, ctrl.Submit, nil)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, constvars.RegistrationSuccessMessage, decodeBody(t, rr)["message"])
	})

	usecase.AssertExpectations(t)
}

func TestSitemapController(t *testing.T) {
	usecase := new(mockSitemapUsecase)
	ctrl := NewSitemapController(zap.NewNop(), usecase)

	t.Run("Not generated yet", func(t *testing.T) {
		usecase.On("GetSitemap", mock.Anything).Return(nil, exceptions.ErrSitemapNotReady(nil)).Once()

		rr := serve(http.MethodGet, "/sitemap.xml", "/sitemap.xml", "", ctrl.GetSitemap, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("Cached document", func(t *testing.T) {
		usecase.On("GetSitemap", mock.Anything).Return([]byte("<urlset></urlset>"), nil).Once()

		rr := serve(http.MethodGet, "/sitemap.xml", "/sitemap.xml", "", ctrl.GetSitemap, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMEApplicationXMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Equal(t, "<urlset></urlset>", rr.Body.String())
	})

	t.Run("Robots", func(t *testing.T) {
		usecase.On("GetRobots").Return([]byte("User-agent: *\n")).Once()

		rr := serve(http.MethodGet, "/robots.txt", "/robots.txt", "", ctrl.GetRobots, nil)

		assert.Equal(t, constvars.MIMETextPlainCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Equal(t, "User-agent: *\n", rr.Body.String())
	})

	usecase.AssertExpectations(t)
}

func TestHealthController(t *testing.T) {
	up := pingFunc(func(ctx context.Context) error { return nil })
	down := pingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	t.Run("All dependencies up", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "v1", map[string]Pinger{"redis": up, "backend": up})
		rr := serve(http.MethodGet, "/health", "/health", "", ctrl.Health, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		data := decodeBody(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, "ok", data["status"])
		assert.Equal(t, "v1", data["version"])
	})

	t.Run("One dependency down", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "v1", map[string]Pinger{"redis": up, "minio": down})
		rr := serve(http.MethodGet, "/health", "/health", "", ctrl.Health, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		data := decodeBody(t, rr)["data"].(map[string]interface{})
		assert.Equal(t, "degraded", data["status"])
		dependencies := data["dependencies"].(map[string]interface{})
		assert.Equal(t, "ok", dependencies["redis"])
		assert.Equal(t, "connection refused", dependencies["minio"])
	})
}
