package controllers

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SitemapController struct {
	Log            *zap.Logger
	SitemapUsecase contracts.SitemapUsecase
}

func NewSitemapController(logger *zap.Logger, sitemapUsecase contracts.SitemapUsecase) *SitemapController {
	return &SitemapController{
		Log:            logger,
		SitemapUsecase: sitemapUsecase,
	}
}

func (ctrl *SitemapController) GetSitemap(w http.ResponseWriter, r *http.Request) {
	document, err := ctrl.SitemapUsecase.GetSitemap(r.Context())
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, "public, max-age=3600")
	utils.BuildDocumentResponse(w, constvars.StatusOK, constvars.MIMEApplicationXMLCharsetUTF8, document)
}

func (ctrl *SitemapController) GetRobots(w http.ResponseWriter, r *http.Request) {
	utils.BuildDocumentResponse(w, constvars.StatusOK, constvars.MIMETextPlainCharsetUTF8, ctrl.SitemapUsecase.GetRobots())
}
