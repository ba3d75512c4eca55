package registrations

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/services/shared/jwtmanager"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	objectPrefix          = "registracije"
	resumeStepMetaKey     = "resume_step"
	stepMetaKey           = "step"
	registrationTemplate  = "registration_received"
	registrationSubject   = "Zaprimili smo vašu registraciju"
	passwordConfirmField  = "password_confirmation"
	outcomeCreated        = "created"
	outcomeRejected       = "rejected"
	outcomeBackendFailure = "failed"
)

type registrationUsecase struct {
	RegistrationBackend contracts.RegistrationBackend
	Storage             contracts.Storage
	Mailer              contracts.MailerService
	Tokens              *jwtmanager.StepTokenManager
	Log                 *zap.Logger
}

// NewRegistrationUsecase wires the wizard. Storage and mailer may be nil, in
// which case images are rejected and notifications skipped.
func NewRegistrationUsecase(
	registrationBackend contracts.RegistrationBackend,
	storage contracts.Storage,
	mailer contracts.MailerService,
	tokens *jwtmanager.StepTokenManager,
	logger *zap.Logger,
) contracts.RegistrationUsecase {
	return &registrationUsecase{
		RegistrationBackend: registrationBackend,
		Storage:             storage,
		Mailer:              mailer,
		Tokens:              tokens,
		Log:                 logger,
	}
}

func (uc *registrationUsecase) GetDefinition(ctx context.Context, registrationType string) (*responses.RegistrationDefinition, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("registrationUsecase.GetDefinition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
	)

	rt, ok := lookupType(registrationType)
	if !ok {
		return nil, exceptions.ErrRegistrationTypeUnknown(registrationType)
	}
	return definition(rt), nil
}

// ValidateStep validates the fields of one step and, on success, issues a
// token covering steps 1..step. Earlier steps are checked against the
// digests of the incoming token.
func (uc *registrationUsecase) ValidateStep(ctx context.Context, registrationType string, step int, request *requests.RegistrationStep) (*responses.StepResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("registrationUsecase.ValidateStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
		zap.Int(constvars.LoggingStepKey, step),
	)

	rt, ok := lookupType(registrationType)
	if !ok {
		return nil, exceptions.ErrRegistrationTypeUnknown(registrationType)
	}
	if step < 1 || step > rt.totalSteps() {
		return nil, exceptions.ErrRegistrationStepOutOfRange(step, rt.totalSteps())
	}

	payload, err := decodePayload(rt, request)
	if err != nil {
		return nil, err
	}

	digests := make(map[int]string, step)
	if step > 1 {
		verified, err := uc.verifyPreviousSteps(ctx, rt, payload, request.StepToken, step-1)
		if err != nil {
			return nil, err
		}
		digests = verified
	}

	if err := uc.validateFields(rt, payload, step); err != nil {
		uc.Log.Info("registrationUsecase.ValidateStep invalid step",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStepKey, step),
			zap.Error(err),
		)
		return nil, err
	}

	digest, err := uc.Tokens.Digest(payload, rt.fields(step))
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	digests[step] = digest

	token, err := uc.Tokens.Issue(ctx, rt.Type, step, digests)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	result := &responses.StepResult{
		Step:      step,
		Completed: step == rt.totalSteps(),
		StepToken: token,
	}
	if !result.Completed {
		result.NextStep = step + 1
	}

	uc.Log.Info("registrationUsecase.ValidateStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepKey, step),
	)
	return result, nil
}

// Submit validates the complete payload, uploads the optional image and
// forwards the registration to the backend.
func (uc *registrationUsecase) Submit(ctx context.Context, registrationType string, request *requests.RegistrationStep) (*responses.RegistrationSubmitted, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("registrationUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegistrationTypeKey, registrationType),
	)

	rt, ok := lookupType(registrationType)
	if !ok {
		return nil, exceptions.ErrRegistrationTypeUnknown(registrationType)
	}

	payload, err := decodePayload(rt, request)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(payload); err != nil {
		uc.Log.Info("registrationUsecase.Submit invalid payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeRejected).Inc()
		return nil, exceptions.ErrInputValidation(err)
	}

	if rt.totalSteps() > 1 {
		if _, err := uc.verifyPreviousSteps(ctx, rt, payload, request.StepToken, rt.totalSteps()-1); err != nil {
			return nil, err
		}
	}

	imageName, encoded := payload.ImageField()
	imageURL := ""
	if encoded != "" {
		imageURL, err = uc.uploadImage(ctx, rt, imageName, encoded)
		if err != nil {
			return nil, err
		}
	}

	body, err := backendBody(payload, imageName, imageURL)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	created, err := uc.RegistrationBackend.Register(ctx, rt.Type, body)
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusUnprocessableEntity {
			uc.Log.Info("registrationUsecase.Submit rejected by backend",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeRejected).Inc()
			return nil, err
		}
		uc.Log.Error("registrationUsecase.Submit error registering",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeBackendFailure).Inc()
		return nil, exceptions.ErrRegistrationFailed(err)
	}
	metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeCreated).Inc()

	uc.notify(ctx, rt, payload)

	utils.LogBusinessEvent(ctx, uc.Log, "registration_submitted",
		zap.String(constvars.LoggingRegistrationTypeKey, rt.Type),
	)
	return &responses.RegistrationSubmitted{
		Type:    rt.Type,
		Message: constvars.RegistrationSuccessMessage,
		Data:    created,
	}, nil
}

// verifyPreviousSteps checks that token carries digests for steps 1..upTo
// which still match the submitted values. It returns those digests.
func (uc *registrationUsecase) verifyPreviousSteps(ctx context.Context, rt registrationType, payload requests.RegistrationPayload, token string, upTo int) (map[int]string, error) {
	requestID := utils.GetRequestID(ctx)

	claims, err := uc.Tokens.Parse(ctx, token, rt.Type)
	if err != nil {
		uc.Log.Info("registrationUsecase.verifyPreviousSteps token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRegistrationStepLocked(nil, fmt.Sprintf(constvars.ErrDevRegistrationStepTokenBad, err.Error())).
			WithMeta(resumeStepMetaKey, 1)
	}

	if missing := claims.Covers(upTo); missing != 0 {
		return nil, exceptions.ErrRegistrationStepLocked(nil, fmt.Sprintf(constvars.ErrDevRegistrationStepTokenNeeded, upTo+1, upTo)).
			WithMeta(resumeStepMetaKey, missing)
	}

	digests := make(map[int]string, upTo+1)
	for step := 1; step <= upTo; step++ {
		digest, err := uc.Tokens.Digest(payload, rt.fields(step))
		if err != nil {
			return nil, exceptions.ErrServerProcess(err)
		}
		if digest != claims.Digests[step] {
			uc.Log.Info("registrationUsecase.verifyPreviousSteps step changed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingStepKey, step),
			)
			if err := uc.validateFields(rt, payload, step); err != nil {
				return nil, err.WithMeta(resumeStepMetaKey, step)
			}
			return nil, exceptions.ErrRegistrationStepLocked(nil, fmt.Sprintf(constvars.ErrDevRegistrationStepChanged, step)).
				WithMeta(resumeStepMetaKey, step)
		}
		digests[step] = digest
	}
	return digests, nil
}

// validateFields runs the validate tags of one step and, when the step holds
// the image field, checks the image itself.
func (uc *registrationUsecase) validateFields(rt registrationType, payload requests.RegistrationPayload, step int) *exceptions.CustomError {
	fields := rt.fields(step)
	if err := utils.ValidateStructPartial(payload, fields...); err != nil {
		return exceptions.ErrInputValidation(err).WithMeta(stepMetaKey, step)
	}

	imageName, encoded := payload.ImageField()
	if encoded == "" || !containsImageField(fields) {
		return nil
	}
	if _, err := utils.DecodeBase64Image(encoded); err != nil {
		return exceptions.ErrImageValidation(err, imageName).WithMeta(stepMetaKey, step)
	}
	return nil
}

func (uc *registrationUsecase) uploadImage(ctx context.Context, rt registrationType, imageName, encoded string) (string, error) {
	requestID := utils.GetRequestID(ctx)

	image, err := utils.DecodeBase64Image(encoded)
	if err != nil {
		metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeRejected).Inc()
		return "", exceptions.ErrImageValidation(err, imageName)
	}
	if uc.Storage == nil {
		return "", exceptions.ErrImageValidation(fmt.Errorf("image storage is not configured"), imageName)
	}

	objectName := utils.GenerateObjectName(objectPrefix, rt.Type, image.Extension)
	url, err := uc.Storage.UploadImage(ctx, image.Data, objectName, image.ContentType)
	if err != nil {
		uc.Log.Error("registrationUsecase.uploadImage error uploading",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		metrics.RegistrationsSubmitted.WithLabelValues(rt.Type, outcomeBackendFailure).Inc()
		return "", exceptions.ErrRegistrationFailed(err)
	}
	return url, nil
}

// notify publishes the "registration received" email. Failures are logged
// only.
func (uc *registrationUsecase) notify(ctx context.Context, rt registrationType, payload requests.RegistrationPayload) {
	if uc.Mailer == nil {
		return
	}
	requestID := utils.GetRequestID(ctx)

	err := uc.Mailer.SendEmail(ctx, &requests.EmailPayload{
		To:       []string{payload.ContactEmail()},
		Subject:  registrationSubject,
		Template: registrationTemplate,
		Data: map[string]interface{}{
			"type": rt.Type,
			"name": payload.DisplayName(),
		},
	})
	if err != nil {
		uc.Log.Warn("registrationUsecase.notify error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func decodePayload(rt registrationType, request *requests.RegistrationStep) (requests.RegistrationPayload, error) {
	payload := rt.newPayload()
	if request != nil && len(request.Data) > 0 {
		if err := json.Unmarshal(request.Data, payload); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}
	utils.TrimStringFields(payload)
	return payload, nil
}

// backendBody is the payload as the backend expects it: no confirmation
// field and the uploaded image as "<field>_url".
func backendBody(payload requests.RegistrationPayload, imageName, imageURL string) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	body := make(map[string]interface{})
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}

	delete(body, passwordConfirmField)
	delete(body, imageName)
	if imageURL != "" {
		body[imageName+"_url"] = imageURL
	}
	return body, nil
}

func containsImageField(fields []string) bool {
	for _, name := range fields {
		if name == "Logo" || name == "Photo" {
			return true
		}
	}
	return false
}
