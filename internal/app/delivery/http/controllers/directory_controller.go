package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DirectoryController serves the listing and profile pages of one entity
// type.
type DirectoryController struct {
	Log     *zap.Logger
	Usecase contracts.DirectoryUsecase
	Timeout time.Duration
}

func NewDirectoryController(logger *zap.Logger, usecase contracts.DirectoryUsecase, timeout time.Duration) *DirectoryController {
	return &DirectoryController{
		Log:     logger,
		Usecase: usecase,
		Timeout: timeout,
	}
}

// GetListing reads the filter state from the query string. A {grad} path
// segment, when routed, takes precedence over ?grad=.
func (ctrl *DirectoryController) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	values := r.URL.Query()
	if city := chi.URLParam(r, constvars.URLParamCity); city != "" {
		values.Set(constvars.URLQueryParamCity, city)
	}

	page, err := ctrl.Usecase.GetListing(ctx, listing.Parse(values))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildPageResponse(w, constvars.StatusOK, page)
}

func (ctrl *DirectoryController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	page, err := ctrl.Usecase.GetProfile(ctx, chi.URLParam(r, constvars.URLParamSlug))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildPageResponse(w, constvars.StatusOK, page)
}
