package constvars

const (
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetPageSuccessMessage          = "stranica uspješno učitana"
	GetListingSuccessMessage       = "lista uspješno učitana"
	GetCitiesSuccessMessage        = "gradovi uspješno učitani"
	GetSpecialtiesSuccessMessage   = "specijalnosti uspješno učitane"
	GetRegistrationSuccessMessage  = "koraci registracije uspješno učitani"
	ValidateStepSuccessMessage     = "korak je ispravno popunjen"
	RegistrationSuccessMessage     = "registracija je zaprimljena, javićemo vam se nakon provjere podataka"
	CreateQuestionSuccessMessage   = "vaše pitanje je uspješno poslano"
	CalculateBMISuccessMessage     = "BMI uspješno izračunat"
	CalculateDueDateSuccessMessage = "termin poroda uspješno izračunat"
	HealthySuccessMessage          = "ok"
)
