package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	Timeout             time.Duration
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, timeout time.Duration) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		Timeout:             timeout,
	}
}

func (ctrl *RegistrationController) GetDefinition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.GetDefinition(ctx, chi.URLParam(r, constvars.URLParamRegistrationType))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRegistrationSuccessMessage, response)
}

func (ctrl *RegistrationController) ValidateStep(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	registrationType := chi.URLParam(r, constvars.URLParamRegistrationType)
	stepParam := chi.URLParam(r, constvars.URLParamStep)
	step, err := strconv.Atoi(stepParam)
	if err != nil {
		writeError(ctrl.Log, w, exceptions.ErrRegistrationStepOutOfRange(0, 0))
		return
	}

	request, err := ctrl.parseStep(r)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.RegistrationUsecase.ValidateStep(ctx, registrationType, step, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateStepSuccessMessage, response)
}

func (ctrl *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	request, err := ctrl.parseStep(r)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.RegistrationUsecase.Submit(ctx, chi.URLParam(r, constvars.URLParamRegistrationType), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response.Message, response)
}

// parseStep reads the body; the step token may also arrive as a header.
func (ctrl *RegistrationController) parseStep(r *http.Request) (*requests.RegistrationStep, error) {
	request := new(requests.RegistrationStep)
	if err := utils.ParseJSONBody(r, request); err != nil {
		return nil, err
	}
	if request.StepToken == "" {
		request.StepToken = r.Header.Get(constvars.HeaderXStepToken)
	}
	return request, nil
}
