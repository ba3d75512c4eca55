package utils

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	writeJSON(w, code, response)
}

// BuildPageResponse writes a page model. Not-found pages are written with
// their own status so the client can render them without an error banner.
func BuildPageResponse(w http.ResponseWriter, code int, page *responses.PageModel) {
	response := responses.ResponseDTO{
		Success: !page.NotFound,
		Message: page.Message,
		Data:    page,
	}
	if page.NotFound {
		code = constvars.StatusNotFound
	}
	writeJSON(w, code, response)
}

func BuildDocumentResponse(w http.ResponseWriter, code int, contentType string, body []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.Any(constvars.LoggingFieldErrorsKey, customErr.FieldErrors),
				zap.Any("location", location),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	response := responses.ErrorResponseDTO{
		StatusCode: code,
		Success:    false,
		Message:    clientMessage,
	}
	if customErr != nil {
		response.Errors = customErr.FieldErrors
		response.Meta = customErr.Meta
		if !IsProduction() {
			response.Dev = &responses.DevDetails{
				Message:   customErr.DevMessage,
				Locations: customErr.Locations,
			}
		}
	}

	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
