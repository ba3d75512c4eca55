package exceptions

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationFieldErrors turns validator errors into messages keyed by the
// field name reported by the validator (the JSON name when the validator has a
// tag name func registered).
func FormatValidationFieldErrors(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make(map[string][]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		fieldErrors[field] = append(fieldErrors[field], FieldErrorMessage(fieldErr))
	}
	return fieldErrors
}

// FieldErrorMessage renders the message for a single failed rule.
func FieldErrorMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	if tag == "eqfield" && fieldErr.Param() == "Password" {
		return constvars.ErrClientPasswordsDoNotMatch
	}

	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "nije ispravno"
	}
	if constvars.TagsWithParams[tag] {
		param := fieldErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	firstErr := validationErrors[0]
	return firstErr.Field() + " " + FieldErrorMessage(firstErr)
}
