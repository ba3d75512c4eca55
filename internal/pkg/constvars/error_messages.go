package constvars

// Validation messages mapper, keyed by validator tag. Messages are shown to the
// portal user next to the offending field.
var CustomValidationErrorMessages = map[string]string{
	"required":        "je obavezno polje",
	"email":           "mora biti ispravna email adresa",
	"min":             "mora imati najmanje %s znakova",
	"max":             "može imati najviše %s znakova",
	"eqfield":         "se ne podudara sa poljem %s",
	"numeric":         "mora biti broj",
	"len":             "mora imati tačno %s znakova",
	"oneof":           "mora biti jedno od [%s]",
	"gt":              "mora biti veće od %s",
	"gte":             "mora biti veće ili jednako %s",
	"lt":              "mora biti manje od %s",
	"lte":             "mora biti manje ili jednako %s",
	"url":             "mora biti ispravan URL",
	"http_url":        "mora biti ispravan URL",
	"base64":          "mora biti ispravan base64 zapis",
	"slug":            "mora sadržavati samo mala slova, brojeve i crtice",
	"strong_password": "mora imati najmanje 12 znakova, te barem jedno veliko slovo, jedno malo slovo, jedan broj i jedan specijalni znak",
	"phone_ba":        "mora biti ispravan broj telefona u BiH (npr. 033 123 456 ili +387 61 123 456)",
	"latitude":        "mora biti ispravna geografska širina",
	"longitude":       "mora biti ispravna geografska dužina",
	"datetime":        "mora biti ispravan datum (%s)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"eqfield":  true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "nije moguće obraditi vaš zahtjev"
	ErrClientSomethingWrongWithApplication = "došlo je do greške, molimo pokušajte ponovo"
	ErrClientServerLongRespond             = "server predugo odgovara, molimo pokušajte ponovo"
	ErrClientBackendUnavailable            = "usluga trenutno nije dostupna, molimo pokušajte kasnije"
	ErrClientNotFound                      = "tražena stranica ne postoji"
	ErrClientDoctorNotFound                = "doktor kojeg tražite ne postoji ili više nije dostupan"
	ErrClientClinicNotFound                = "klinika koju tražite ne postoji ili više nije dostupna"
	ErrClientLaboratoryNotFound            = "laboratorija koju tražite ne postoji ili više nije dostupna"
	ErrClientSpaNotFound                   = "banja koju tražite ne postoji ili više nije dostupna"
	ErrClientCareHomeNotFound              = "dom njege koji tražite ne postoji ili više nije dostupan"
	ErrClientBlogPostNotFound              = "članak koji tražite ne postoji"
	ErrClientQuestionNotFound              = "pitanje koje tražite ne postoji"
	ErrClientCityNotFound                  = "grad koji tražite nije pronađen"
	ErrClientInvalidInput                  = "molimo ispravite označena polja"
	ErrClientPasswordsDoNotMatch           = "lozinke se ne podudaraju"
	ErrClientInvalidImageFormat            = "slika mora biti u PNG, JPG ili WEBP formatu, do 2 MB"
	ErrClientRegistrationTypeUnknown       = "nepoznat tip registracije"
	ErrClientRegistrationStepOutOfRange    = "nepoznat korak registracije"
	ErrClientRegistrationStepLocked        = "molimo prvo ispunite prethodne korake"
	ErrClientRegistrationFailed            = "registracija nije uspjela, molimo pokušajte ponovo"
	ErrClientTooManyRequests               = "previše zahtjeva, molimo pokušajte ponovo za nekoliko trenutaka"
	ErrClientRequestTooLarge               = "zahtjev je prevelik"
	ErrClientSitemapNotReady               = "mapa stranice još nije spremna"
	ErrClientCalculatorInvalidInput        = "molimo unesite ispravne vrijednosti"
	ErrClientLastPeriodInFuture            = "datum ne može biti u budućnosti"
	ErrClientLastPeriodTooOld              = "datum ne može biti stariji od 44 sedmice"
	ErrClientReviewsUnavailable            = "recenzije trenutno nisu dostupne"
	ErrClientSectionUnavailable            = "ovaj dio stranice trenutno nije dostupan"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevCannotParseJSON             = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON           = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime             = "cannot parse time into the given format"
	ErrDevInvalidFormat               = "invalid %s format"
	ErrDevInvalidSlug                 = "invalid slug %q"
	ErrDevNotFound                    = "%s not found"
	ErrDevServerDeadlineExceeded      = "request deadline exceeded"
	ErrDevBackendUnavailable          = "directory backend request failed: %s"
	ErrDevBackendStatus               = "directory backend responded with status %d"
	ErrDevBackendEnvelope             = "directory backend envelope reported success=false"
	ErrDevBackendValidation           = "directory backend rejected the payload with field errors"
	ErrDevRegistrationTypeUnknown     = "unknown registration type %q"
	ErrDevRegistrationStepOutOfRange  = "step %d out of range 1..%d"
	ErrDevRegistrationStepTokenNeeded = "step %d requires a step token covering steps 1..%d"
	ErrDevRegistrationStepTokenBad    = "step token rejected: %s"
	ErrDevRegistrationStepChanged     = "values of step %d changed since it was validated"
	ErrDevImageInvalid                = "image rejected: %s"
	ErrDevRedisSet                    = "failed to set redis key"
	ErrDevRedisGet                    = "failed to get redis key"
	ErrDevRedisDelete                 = "failed to delete redis key"
	ErrDevRedisSetNX                  = "failed to set redis key if absent"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevMinioUpload                 = "failed to upload object to minio"
	ErrDevRabbitMQPublish             = "failed to publish message to rabbitmq"
	ErrDevSitemapNotGenerated         = "sitemap has not been generated yet"
	ErrDevTooManyRequests             = "rate limit exceeded"
	ErrDevRequestTooLarge             = "request body exceeds %d bytes"
	ErrDevPanicRecovered              = "panic recovered: %v"
)
