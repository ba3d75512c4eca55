package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CityController struct {
	Log         *zap.Logger
	CityUsecase contracts.CityUsecase
	Timeout     time.Duration
}

func NewCityController(logger *zap.Logger, cityUsecase contracts.CityUsecase, timeout time.Duration) *CityController {
	return &CityController{
		Log:         logger,
		CityUsecase: cityUsecase,
		Timeout:     timeout,
	}
}

func (ctrl *CityController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.CityUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCitiesSuccessMessage, response)
}

func (ctrl *CityController) GetCityPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	page, err := ctrl.CityUsecase.GetCityPage(ctx, chi.URLParam(r, constvars.URLParamSlug))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildPageResponse(w, constvars.StatusOK, page)
}
