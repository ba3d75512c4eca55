package exceptions

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

const unknownLocation = "unknown"

type CustomError struct {
	StatusCode    int                 `json:"status_code"`
	Success       bool                `json:"success"`
	ClientMessage string              `json:"message"`
	FieldErrors   map[string][]string `json:"errors,omitempty"`
	Meta          map[string]any      `json:"meta,omitempty"`
	DevMessage    string              `json:"-"`
	Locations     []Location          `json:"-"`
	Err           error               `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithFieldErrors attaches per-field messages keyed by JSON field name.
func (e *CustomError) WithFieldErrors(fieldErrors map[string][]string) *CustomError {
	e.FieldErrors = fieldErrors
	return e
}

// WithMeta attaches extra client-facing details.
func (e *CustomError) WithMeta(key string, value any) *CustomError {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// BuildNewCustomError creates a CustomError. When err already is a CustomError,
// the caller location is appended to its trail and the original messages are
// kept, so the innermost, most specific error wins.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	var existing *CustomError
	if errors.As(err, &existing) {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}
}

// StatusCodeOf returns the HTTP status carried by err, or 500.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

// IsNotFound reports whether err is a CustomError carrying a 404.
func IsNotFound(err error) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusNotFound
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         unknownLocation,
			FunctionName: unknownLocation,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
