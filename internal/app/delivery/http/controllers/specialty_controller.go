package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SpecialtyController struct {
	Log              *zap.Logger
	SpecialtyUsecase contracts.SpecialtyUsecase
	Timeout          time.Duration
}

func NewSpecialtyController(logger *zap.Logger, specialtyUsecase contracts.SpecialtyUsecase, timeout time.Duration) *SpecialtyController {
	return &SpecialtyController{
		Log:              logger,
		SpecialtyUsecase: specialtyUsecase,
		Timeout:          timeout,
	}
}

func (ctrl *SpecialtyController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.SpecialtyUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialtiesSuccessMessage, response)
}
