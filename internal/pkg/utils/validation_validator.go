package utils

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharPattern = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercasePattern   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	lowercasePattern   = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	digitPattern       = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	bosniaPhonePattern = regexp.MustCompile(constvars.RegexBosniaPhoneNumber)
	phoneSeparators    = strings.NewReplacer(" ", "", "-", "", "/", "", ".", "", "(", "", ")", "")
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("phone_ba", validateBosnianPhoneNumber)
	validate.RegisterValidation("slug", validateSlug)
}

// jsonFieldName makes FieldError.Field() report the JSON name, so field
// errors line up with the keys the client submitted.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateStructPartial validates only the named fields. Field names are the
// Go struct field names.
func ValidateStructPartial(s interface{}, fields ...string) error {
	return validate.StructPartial(s, fields...)
}

func IsStrongPassword(password string) bool {
	return utf8.RuneCountInString(password) >= constvars.PasswordMinLength &&
		specialCharPattern.MatchString(password) &&
		uppercasePattern.MatchString(password) &&
		lowercasePattern.MatchString(password) &&
		digitPattern.MatchString(password)
}

func IsBosnianPhoneNumber(phoneNumber string) bool {
	return bosniaPhonePattern.MatchString(NormalizePhoneNumber(phoneNumber))
}

// NormalizePhoneNumber strips the separators people usually type.
func NormalizePhoneNumber(phoneNumber string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phoneNumber))
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

func validateBosnianPhoneNumber(fl validator.FieldLevel) bool {
	return IsBosnianPhoneNumber(fl.Field().String())
}

func validateSlug(fl validator.FieldLevel) bool {
	return ValidateSlug(fl.Field().String()) == nil
}
