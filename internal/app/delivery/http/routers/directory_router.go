package routers

import (
	"bhzdravlje-service/internal/app/delivery/http/controllers"
	"bhzdravlje-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const slugPattern = "/{" + constvars.URLParamSlug + "}"

func attachDirectoryRoutes(router chi.Router, handlers Controllers) {
	attachListingRoutes(router, constvars.PagePathDoctors, constvars.PagePathDoctor, handlers.Doctor)
	attachListingRoutes(router, constvars.PagePathClinics, constvars.PagePathClinic, handlers.Clinic)
	attachListingRoutes(router, constvars.PagePathLaboratories, constvars.PagePathLaboratory, handlers.Laboratory)
	attachListingRoutes(router, constvars.PagePathSpas, constvars.PagePathSpa, handlers.Spa)
	attachListingRoutes(router, constvars.PagePathCareHomes, constvars.PagePathCareHome, handlers.CareHome)
	router.Get(constvars.PagePathCareHomes+"/{"+constvars.URLParamCity+"}", handlers.CareHome.GetListing)

	router.Get(constvars.PagePathBlog, handlers.Blog.GetListing)
	router.Get(constvars.PagePathBlog+slugPattern, handlers.Blog.GetProfile)
}

func attachListingRoutes(router chi.Router, listingPath, profilePath string, controller *controllers.DirectoryController) {
	router.Get(listingPath, controller.GetListing)
	router.Get(profilePath+slugPattern, controller.GetProfile)
}

func attachQuestionRoutes(router chi.Router, questionController *controllers.QuestionController, writeLimiter func(http.Handler) http.Handler) {
	router.Get(constvars.PagePathQuestions, questionController.GetListing)
	router.Get(constvars.PagePathQuestions+slugPattern, questionController.GetProfile)
	router.With(writeLimiter).Post(constvars.PagePathQuestions, questionController.AskQuestion)
}

func attachCityRoutes(router chi.Router, cityController *controllers.CityController, specialtyController *controllers.SpecialtyController) {
	router.Get(constvars.PagePathCities, cityController.FindAll)
	router.Get(constvars.PagePathCity+slugPattern, cityController.GetCityPage)
	router.Get(constvars.PagePathSpecialties, specialtyController.FindAll)
}

func attachCalculatorRoutes(router chi.Router, calculatorController *controllers.CalculatorController) {
	router.Post(constvars.PagePathCalculatorBMI, calculatorController.CalculateBMI)
	router.Post(constvars.PagePathCalculatorDue, calculatorController.CalculateDueDate)
}
