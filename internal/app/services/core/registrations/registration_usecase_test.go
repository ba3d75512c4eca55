package registrations

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/app/services/shared/jwtmanager"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

type mockRegistrationBackend struct {
	mock.Mock
}

func (m *mockRegistrationBackend) Register(ctx context.Context, registrationType string, payload map[string]interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, registrationType, payload)
	created, _ := args.Get(0).(map[string]interface{})
	return created, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, data []byte, objectName, contentType string) (string, error) {
	args := m.Called(ctx, data, objectName, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	return m.Called(ctx, request).Error(0)
}

type fixture struct {
	backend *mockRegistrationBackend
	storage *mockStorage
	mailer  *mockMailer
	usecase *registrationUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := jwtmanager.NewStepTokenManager(&config.InternalConfig{
		Registration: config.AppRegistration{StepTokenSecret: "registration-test-secret"},
	}, zap.NewNop())
	require.NoError(t, err)

	f := &fixture{
		backend: new(mockRegistrationBackend),
		storage: new(mockStorage),
		mailer:  new(mockMailer),
	}
	f.usecase = NewRegistrationUsecase(f.backend, f.storage, f.mailer, tokens, zap.NewNop()).(*registrationUsecase)
	return f
}

func validClinic() map[string]interface{} {
	return map[string]interface{}{
		"name":                  "Poliklinika Sunce",
		"description":           "Specijalistička poliklinika u centru grada.",
		"specialties":           []string{"kardiologija", "neurologija"},
		"website":               "https://sunce.ba",
		"city":                  "sarajevo",
		"address":               "Zmaja od Bosne 12",
		"phone":                 "033 123 456",
		"contact_person":        "Amra Hadžić",
		"email":                 "info@sunce.ba",
		"password":              "Abcdefgh123!",
		"password_confirmation": "Abcdefgh123!",
		"terms_accepted":        true,
	}
}

func stepRequest(t *testing.T, token string, data map[string]interface{}) *requests.RegistrationStep {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return &requests.RegistrationStep{StepToken: token, Data: raw}
}

// walk validates steps 1..upTo and returns the last token.
func walk(t *testing.T, uc *registrationUsecase, registrationType string, upTo int, data map[string]interface{}) string {
	t.Helper()
	token := ""
	for step := 1; step <= upTo; step++ {
		result, err := uc.ValidateStep(context.Background(), registrationType, step, stepRequest(t, token, data))
		require.NoError(t, err, "step %d", step)
		token = result.StepToken
	}
	return token
}

func customError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr
}

func TestGetDefinition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	definition, err := f.usecase.GetDefinition(ctx, constvars.EntityTypeClinic)
	require.NoError(t, err)
	assert.Equal(t, 3, definition.TotalSteps)
	require.Len(t, definition.Steps, 3)

	last := definition.Steps[2]
	assert.Equal(t, "Pristupni podaci", last.Title)
	names := make([]string, 0, len(last.Fields))
	for _, field := range last.Fields {
		names = append(names, field.Name)
		if field.Name == "password_confirmation" {
			assert.True(t, field.Required)
			assert.Equal(t, "Potvrda lozinke", field.Label)
		}
	}
	assert.Equal(t, []string{"email", "password", "password_confirmation", "terms_accepted"}, names)

	first := definition.Steps[0]
	for _, field := range first.Fields {
		if field.Name == "logo" {
			assert.False(t, field.Required)
		}
	}

	for _, registrationType := range []string{
		constvars.EntityTypeDoctor,
		constvars.EntityTypeLaboratory,
		constvars.EntityTypeSpa,
		constvars.EntityTypeCareHome,
	} {
		definition, err := f.usecase.GetDefinition(ctx, registrationType)
		require.NoError(t, err, registrationType)
		assert.Equal(t, 4, definition.TotalSteps, registrationType)
	}

	_, err = f.usecase.GetDefinition(ctx, "bolnica")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}

func TestValidateStep(t *testing.T) {
	ctx := context.Background()

	t.Run("First step issues a token for the next one", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 1, stepRequest(t, "", validClinic()))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Step)
		assert.Equal(t, 2, result.NextStep)
		assert.False(t, result.Completed)
		assert.NotEmpty(t, result.StepToken)
	})

	t.Run("Invalid field blocks advancing", func(t *testing.T) {
		f := newFixture(t)
		data := validClinic()
		data["name"] = "ab"

		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 1, stepRequest(t, "", data))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "name")
		assert.NotContains(t, customErr.FieldErrors, "city")
	})

	t.Run("Later steps need a token", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 2, stepRequest(t, "", validClinic()))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 1, customErr.Meta["resume_step"])
	})

	t.Run("Token from another registration type is rejected", func(t *testing.T) {
		f := newFixture(t)
		data := validClinic()
		data["category"] = "termalna"
		token := walk(t, f.usecase, constvars.EntityTypeSpa, 1, data)

		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 2, stepRequest(t, token, validClinic()))
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Skipping a step is not possible", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 1, validClinic())

		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 3, stepRequest(t, token, validClinic()))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 2, customErr.Meta["resume_step"])
	})

	t.Run("Changed earlier step sends the wizard back", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 1, validClinic())

		data := validClinic()
		data["name"] = "Poliklinika Mjesec"
		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 2, stepRequest(t, token, data))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 1, customErr.Meta["resume_step"])

		data["name"] = "x"
		_, err = f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 2, stepRequest(t, token, data))
		customErr = customError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "name")
		assert.Equal(t, 1, customErr.Meta["resume_step"])
	})

	t.Run("Going back never needs a token", func(t *testing.T) {
		f := newFixture(t)
		walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		result, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 1, stepRequest(t, "", validClinic()))
		require.NoError(t, err)
		assert.Equal(t, 2, result.NextStep)
	})

	t.Run("Last step completes the wizard", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		result, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 3, stepRequest(t, token, validClinic()))
		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.Zero(t, result.NextStep)
	})

	t.Run("Weak password is reported on the password field", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		data := validClinic()
		data["password"] = "abcdefgh1!"
		data["password_confirmation"] = "abcdefgh1!"
		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 3, stepRequest(t, token, data))
		customErr := customError(t, err)
		assert.Equal(t, map[string][]string{
			"password": {constvars.CustomValidationErrorMessages["strong_password"]},
		}, customErr.FieldErrors)
	})

	t.Run("Diacritics do not count as a symbol", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		data := validClinic()
		data["password"] = "Lozinkačćšž12"
		data["password_confirmation"] = "Lozinkačćšž12"
		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 3, stepRequest(t, token, data))
		customErr := customError(t, err)
		assert.Equal(t, map[string][]string{
			"password": {constvars.CustomValidationErrorMessages["strong_password"]},
		}, customErr.FieldErrors)
	})

	t.Run("Invalid logo is rejected on its step", func(t *testing.T) {
		f := newFixture(t)
		data := validClinic()
		data["logo"] = "bm90IGFuIGltYWdl"

		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 1, stepRequest(t, "", data))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.FieldErrors, "logo")
	})

	t.Run("Out of range step and unknown type", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 4, stepRequest(t, "", validClinic()))
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))

		_, err = f.usecase.ValidateStep(ctx, constvars.EntityTypeClinic, 0, stepRequest(t, "", validClinic()))
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))

		_, err = f.usecase.ValidateStep(ctx, "bolnica", 1, stepRequest(t, "", validClinic()))
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Mismatched confirmation yields one field error and no backend call", func(t *testing.T) {
		f := newFixture(t)
		data := validClinic()
		data["password_confirmation"] = "Abcdefgh123"

		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, "", data))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, map[string][]string{
			"password_confirmation": {constvars.ErrClientPasswordsDoNotMatch},
		}, customErr.FieldErrors)
		f.backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
		f.storage.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Valid payload without a token is sent back to step one", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, "", validClinic()))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, 1, customErr.Meta["resume_step"])
		f.backend.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Successful registration uploads the logo and notifies", func(t *testing.T) {
		f := newFixture(t)
		data := validClinic()
		data["logo"] = onePixelPNG
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, data)

		f.storage.On("UploadImage", ctx, mock.Anything, mock.MatchedBy(func(objectName string) bool {
			return len(objectName) > len("registracije/klinika/")
		}), "image/png").Return("https://cdn.bhzdravlje.ba/registracije/klinika/logo.png", nil)
		f.backend.On("Register", ctx, constvars.EntityTypeClinic, mock.MatchedBy(func(body map[string]interface{}) bool {
			_, hasConfirmation := body["password_confirmation"]
			_, hasLogo := body["logo"]
			return !hasConfirmation && !hasLogo &&
				body["logo_url"] == "https://cdn.bhzdravlje.ba/registracije/klinika/logo.png" &&
				body["name"] == "Poliklinika Sunce"
		})).Return(map[string]interface{}{"slug": "poliklinika-sunce"}, nil)
		f.mailer.On("SendEmail", ctx, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
			return payload.To[0] == "info@sunce.ba" && payload.Data["name"] == "Poliklinika Sunce"
		})).Return(nil)

		submitted, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, token, data))
		require.NoError(t, err)
		assert.Equal(t, constvars.EntityTypeClinic, submitted.Type)
		assert.Equal(t, "poliklinika-sunce", submitted.Data["slug"])
		f.storage.AssertExpectations(t)
		f.backend.AssertExpectations(t)
		f.mailer.AssertExpectations(t)
	})

	t.Run("Notification failure does not fail the registration", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		f.backend.On("Register", ctx, constvars.EntityTypeClinic, mock.Anything).
			Return(map[string]interface{}{"slug": "poliklinika-sunce"}, nil)
		f.mailer.On("SendEmail", ctx, mock.Anything).Return(errors.New("channel closed"))

		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, token, validClinic()))
		require.NoError(t, err)
		f.storage.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend field errors are passed through", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		f.backend.On("Register", ctx, constvars.EntityTypeClinic, mock.Anything).
			Return(nil, exceptions.ErrBackendValidation("email je već registrovan", map[string][]string{
				"email": {"email je već registrovan"},
			}))

		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, token, validClinic()))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Equal(t, []string{"email je već registrovan"}, customErr.FieldErrors["email"])
		f.mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("Other backend failures become a general message", func(t *testing.T) {
		f := newFixture(t)
		token := walk(t, f.usecase, constvars.EntityTypeClinic, 2, validClinic())

		f.backend.On("Register", ctx, constvars.EntityTypeClinic, mock.Anything).
			Return(nil, exceptions.ErrBackendStatus(500))

		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, stepRequest(t, token, validClinic()))
		customErr := customError(t, err)
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientRegistrationFailed, customErr.ClientMessage)
		assert.Empty(t, customErr.FieldErrors)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.usecase.Submit(ctx, constvars.EntityTypeClinic, &requests.RegistrationStep{Data: []byte(`{"name": 5}`)})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}
