package utils

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/goccy/go-json"
)

// MaxRequestBodyBytes bounds JSON bodies, large enough for a base64 logo.
const MaxRequestBodyBytes = 4 << 20

var slugPattern = regexp.MustCompile(constvars.RegexSlug)

func ParseJSONBody(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes)
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return exceptions.ErrRequestTooLarge(err, tooLarge.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// ValidateSlug rejects anything that is not a lowercase dash separated slug
// before it reaches the backend.
func ValidateSlug(slug string) error {
	if slug == "" || len(slug) > constvars.SlugMaxLength || !slugPattern.MatchString(slug) {
		return exceptions.ErrInvalidSlug(nil, slug)
	}
	return nil
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
