package routers

import (
	"bhzdravlje-service/internal/app/delivery/http/controllers"
	"bhzdravlje-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, registrationController *controllers.RegistrationController, writeLimiter func(http.Handler) http.Handler) {
	router.Route(constvars.PagePathRegistration+"/{"+constvars.URLParamRegistrationType+"}", func(r chi.Router) {
		r.Get("/", registrationController.GetDefinition)
		r.With(writeLimiter).Post("/korak/{"+constvars.URLParamStep+"}", registrationController.ValidateStep)
		r.With(writeLimiter).Post("/", registrationController.Submit)
	})
}
