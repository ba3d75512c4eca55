package utils

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Sigurna#Lozinka1", true},
		{"Šifra-Čvrsta-2024", true},
		{"Kratka#1", false},
		{"sigurna#lozinka1", false},
		{"SIGURNA#LOZINKA1", false},
		{"Sigurna#Lozinka", false},
		{"SigurnaLozinka12", false},
		{"Lozinkačćšž12", false},
		{"ŠifraZaPortal1", false},
		{"Đurđevak Cvijet 7", false},
		{"ŠifraZaPortal1!", true},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.password))
		})
	}
}

func TestIsBosnianPhoneNumber(t *testing.T) {
	for _, valid := range []string{"033 123 456", "061/123-456", "+387 61 123 456", "00387 35 123 4567"} {
		assert.True(t, IsBosnianPhoneNumber(valid), valid)
	}
	for _, invalid := range []string{"", "12345", "+1 555 123 4567", "081 123 456", "061 12"} {
		assert.False(t, IsBosnianPhoneNumber(invalid), invalid)
	}
}

func TestValidateSlug(t *testing.T) {
	assert.NoError(t, ValidateSlug("dr-amra-hadzic"))
	assert.NoError(t, ValidateSlug("poliklinika-2"))

	for _, slug := range []string{"", "Dr-Amra", "dr--amra", "-dr", "dr amra", "čaršija", strings.Repeat("a", constvars.SlugMaxLength+1)} {
		err := ValidateSlug(slug)
		require.Error(t, err, slug)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err), slug)
	}
}

func TestValidateStruct_ReportsJSONFieldNames(t *testing.T) {
	registration := &requests.ClinicRegistration{
		Name:                 "Poliklinika Sarajevo",
		CitySlug:             "sarajevo",
		Address:              "Titova 1",
		Phone:                "033 123 456",
		Email:                "info@poliklinika.ba",
		ContactPerson:        "Amra Hadžić",
		Password:             "Sigurna#Lozinka1",
		PasswordConfirmation: "Sigurna#Lozinka2",
		TermsAccepted:        true,
	}

	err := ValidateStruct(registration)
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))
	require.Len(t, validationErrors, 1)
	assert.Equal(t, "password_confirmation", validationErrors[0].Field())

	assert.NoError(t, ValidateStructPartial(registration, "Name", "CitySlug", "Phone"))
}

func TestDecodeBase64Image(t *testing.T) {
	t.Run("Raw PNG", func(t *testing.T) {
		image, err := DecodeBase64Image(onePixelPNG)
		require.NoError(t, err)
		assert.Equal(t, "image/png", image.ContentType)
		assert.Equal(t, ".png", image.Extension)
	})

	t.Run("Data URL prefix is ignored for the type", func(t *testing.T) {
		image, err := DecodeBase64Image("data:image/jpeg;base64," + onePixelPNG)
		require.NoError(t, err)
		assert.Equal(t, "image/png", image.ContentType)
	})

	t.Run("WebP", func(t *testing.T) {
		webp := append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 24)...)
		image, err := DecodeBase64Image(base64.StdEncoding.EncodeToString(webp))
		require.NoError(t, err)
		assert.Equal(t, ".webp", image.Extension)
	})

	t.Run("Rejected inputs", func(t *testing.T) {
		gif := base64.StdEncoding.EncodeToString([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00"))
		tooLarge := base64.StdEncoding.EncodeToString(append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, MaxLogoBytes)...))

		for name, encoded := range map[string]string{
			"empty":      "  ",
			"not base64": "@@@",
			"gif":        gif,
			"too large":  tooLarge,
		} {
			_, err := DecodeBase64Image(encoded)
			assert.Error(t, err, name)
		}
	})
}

func TestTrimStringFields(t *testing.T) {
	registration := &requests.SpaRegistration{
		Name:     "  Banja Vrućica  ",
		Password: " Sigurna#Lozinka1 ",
	}
	TrimStringFields(registration)

	assert.Equal(t, "Banja Vrućica", registration.Name)
	assert.Equal(t, " Sigurna#Lozinka1 ", registration.Password)

	assert.NotPanics(t, func() { TrimStringFields(requests.SpaRegistration{}) })
	assert.Equal(t, "info@banja.ba", SanitizeEmail("  Info@Banja.BA "))
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	err := ParseJSONBody(req, &requests.CreateQuestion{})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Bol u leđima"}`))
	question := &requests.CreateQuestion{}
	require.NoError(t, ParseJSONBody(req, question))
	assert.Equal(t, "Bol u leđima", question.Title)
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom error keeps status and field errors", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := exceptions.ErrFieldValidation(map[string][]string{"email": {"mora biti ispravna email adresa"}}, "validation failed")
		BuildErrorResponse(zap.NewNop(), rr, err)

		assert.Equal(t, constvars.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":["mora biti ispravna email adresa"]`)
	})

	t.Run("Plain error hides details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, errors.New("secret internals"))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)
		assert.False(t, bytes.Contains(rr.Body.Bytes(), []byte("secret internals")))
	})
}
