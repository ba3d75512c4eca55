package routers

import (
	"bhzdravlje-service/internal/app/config"
	"bhzdravlje-service/internal/app/delivery/http/controllers"
	"bhzdravlje-service/internal/app/delivery/http/middlewares"
	"bhzdravlje-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Doctor       *controllers.DirectoryController
	Clinic       *controllers.DirectoryController
	Laboratory   *controllers.DirectoryController
	Spa          *controllers.DirectoryController
	CareHome     *controllers.DirectoryController
	Blog         *controllers.DirectoryController
	Question     *controllers.QuestionController
	City         *controllers.CityController
	Specialty    *controllers.SpecialtyController
	Registration *controllers.RegistrationController
	Calculator   *controllers.CalculatorController
	Sitemap      *controllers.SitemapController
	Health       *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	handlers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXStepToken},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	readLimiter, writeLimiter := middlewares.CreateRateLimiters()
	router.Use(readLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get(constvars.PagePathHealth, handlers.Health.Health)
	router.Handle(constvars.PagePathMetrics, promhttp.Handler())
	router.Get(constvars.PagePathSitemap, handlers.Sitemap.GetSitemap)
	router.Get(constvars.PagePathRobots, handlers.Sitemap.GetRobots)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			attachDirectoryRoutes(r, handlers)
			attachQuestionRoutes(r, handlers.Question, writeLimiter)
			attachCityRoutes(r, handlers.City, handlers.Specialty)
			attachRegistrationRoutes(r, handlers.Registration, writeLimiter)
			attachCalculatorRoutes(r, handlers.Calculator)
		})
	})
}
