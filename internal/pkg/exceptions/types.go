package exceptions

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidInput, constvars.ErrDevInvalidInput).
			WithFieldErrors(FormatValidationFieldErrors(err))
	}
	ErrFieldValidation = func(fieldErrors map[string][]string, devMessage string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidInput, devMessage).
			WithFieldErrors(fieldErrors)
	}
	ErrInvalidSlug = func(err error, slug string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNotFound, fmt.Sprintf(constvars.ErrDevInvalidSlug, slug))
	}
	ErrImageValidation = func(err error, field string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidImageFormat, fmt.Sprintf(constvars.ErrDevImageInvalid, errText(err))).
			WithFieldErrors(map[string][]string{field: {constvars.ErrClientInvalidImageFormat}})
	}
	ErrCalculatorInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientCalculatorInvalidInput, constvars.ErrDevInvalidInput).
			WithFieldErrors(FormatValidationFieldErrors(err))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientCalculatorInvalidInput, constvars.ErrDevCannotParseTime)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInvalidFormat = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFormat, source))
	}

	// Not found
	ErrNotFound = func(err error, clientMessage, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, clientMessage, fmt.Sprintf(constvars.ErrDevNotFound, resource))
	}

	// Registration wizard
	ErrRegistrationTypeUnknown = func(registrationType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRegistrationTypeUnknown, fmt.Sprintf(constvars.ErrDevRegistrationTypeUnknown, registrationType))
	}
	ErrRegistrationStepOutOfRange = func(step, total int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRegistrationStepOutOfRange, fmt.Sprintf(constvars.ErrDevRegistrationStepOutOfRange, step, total))
	}
	ErrRegistrationStepLocked = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRegistrationStepLocked, devMessage)
	}
	// ErrRegistrationFailed always carries the registration banner message,
	// even when err already is a CustomError.
	ErrRegistrationFailed = func(err error) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientRegistrationFailed, fmt.Sprintf(constvars.ErrDevBackendUnavailable, errText(err)))
		customErr.Err = err
		return customErr
	}

	// Directory backend
	ErrBackendUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevBackendUnavailable, errText(err)))
	}
	ErrBackendStatus = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevBackendStatus, statusCode))
	}
	ErrBackendEnvelope = func(message string) *CustomError {
		devMessage := constvars.ErrDevBackendEnvelope
		if message != "" {
			devMessage = devMessage + ": " + message
		}
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, devMessage)
	}
	ErrBackendValidation = func(clientMessage string, fieldErrors map[string][]string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientInvalidInput
		}
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, clientMessage, constvars.ErrDevBackendValidation).
			WithFieldErrors(fieldErrors)
	}
	ErrCannotDecodeBackendResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevInvalidFormat, resource))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRegistrationFailed, fmt.Sprintf("%s %s", constvars.ErrDevMinioUpload, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %s", constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Sitemap
	ErrSitemapNotReady = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSitemapNotReady, constvars.ErrDevSitemapNotGenerated)
	}

	// Default Server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrRequestTooLarge = func(err error, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientRequestTooLarge, fmt.Sprintf(constvars.ErrDevRequestTooLarge, limit))
	}
	ErrPanicRecovered = func(recovered any) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPanicRecovered, recovered))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidInput)
	}
)

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
