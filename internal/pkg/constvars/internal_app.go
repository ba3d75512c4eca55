package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "BHZ_SVC_"
)

// Backend resource paths, relative to the directory backend base URL.
const (
	ResourceDoctors       = "/doktori"
	ResourceClinics       = "/klinike"
	ResourceLaboratories  = "/laboratorije"
	ResourceSpas          = "/banje"
	ResourceCareHomes     = "/domovi-njega"
	ResourceReviews       = "/recenzije"
	ResourceBlogPosts     = "/blog"
	ResourceQuestions     = "/pitanja"
	ResourceCities        = "/gradovi"
	ResourceSpecialties   = "/specijalnosti"
	ResourceRegistrations = "/registracije"
	ResourceHealth        = "/health"
)

// Portal page paths, used for canonical URLs, breadcrumbs and escape hatches.
const (
	PagePathHome          = "/"
	PagePathDoctors       = "/doktori"
	PagePathDoctor        = "/doktor"
	PagePathClinics       = "/klinike"
	PagePathClinic        = "/klinika"
	PagePathLaboratories  = "/laboratorije"
	PagePathLaboratory    = "/laboratorija"
	PagePathSpas          = "/banje"
	PagePathSpa           = "/banja"
	PagePathCareHomes     = "/domovi-njega"
	PagePathCareHome      = "/dom-njega"
	PagePathCities        = "/gradovi"
	PagePathCity          = "/grad"
	PagePathBlog          = "/blog"
	PagePathQuestions     = "/pitanja"
	PagePathSpecialties   = "/specijalnosti"
	PagePathRegistration  = "/registracija"
	PagePathSitemap       = "/sitemap.xml"
	PagePathRobots        = "/robots.txt"
	PagePathHealth        = "/health"
	PagePathMetrics       = "/metrics"
	PagePathCalculatorBMI = "/kalkulatori/bmi"
	PagePathCalculatorDue = "/kalkulatori/termin-poroda"
)

const (
	EntityTypeDoctor     = "doktor"
	EntityTypeClinic     = "klinika"
	EntityTypeLaboratory = "laboratorija"
	EntityTypeSpa        = "banja"
	EntityTypeCareHome   = "dom-njega"
	EntityTypeBlogPost   = "blog"
	EntityTypeQuestion   = "pitanje"
	EntityTypeCity       = "grad"
)

const (
	SiteName        = "BH Zdravlje"
	SiteTitleSuffix = " | " + SiteName
	SiteLocale      = "bs_BA"
	SiteLanguage    = "bs"
	SiteCountryCode = "BA"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)
