package registrations

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"reflect"
	"strings"
)

// step lists Go field names of the payload struct, in the order they are
// shown.
type step struct {
	Title  string
	Fields []string
}

type registrationType struct {
	Type       string
	Title      string
	Steps      []step
	newPayload func() requests.RegistrationPayload
}

func (rt registrationType) totalSteps() int {
	return len(rt.Steps)
}

func (rt registrationType) fields(stepNumber int) []string {
	return rt.Steps[stepNumber-1].Fields
}

var (
	accessStep = step{
		Title:  "Pristupni podaci",
		Fields: []string{"Email", "Password", "PasswordConfirmation", "TermsAccepted"},
	}
	facilityContactStep = step{
		Title:  "Lokacija i kontakt",
		Fields: []string{"CitySlug", "Address", "Phone", "ContactPerson"},
	}

	registrationTypes = map[string]registrationType{
		constvars.EntityTypeDoctor: {
			Type:  constvars.EntityTypeDoctor,
			Title: "Registracija doktora",
			Steps: []step{
				{Title: "Lični podaci", Fields: []string{"FirstName", "LastName", "Title", "Photo"}},
				{Title: "Profesionalni podaci", Fields: []string{"SpecialtySlug", "LicenseNumber", "ClinicName", "Bio"}},
				{Title: "Kontakt", Fields: []string{"CitySlug", "Address", "Phone"}},
				accessStep,
			},
			newPayload: func() requests.RegistrationPayload { return new(requests.DoctorRegistration) },
		},
		constvars.EntityTypeClinic: {
			Type:  constvars.EntityTypeClinic,
			Title: "Registracija klinike",
			Steps: []step{
				{Title: "Osnovni podaci", Fields: []string{"Name", "Description", "SpecialtySlugs", "Website", "Logo"}},
				facilityContactStep,
				accessStep,
			},
			newPayload: func() requests.RegistrationPayload { return new(requests.ClinicRegistration) },
		},
		constvars.EntityTypeLaboratory: {
			Type:  constvars.EntityTypeLaboratory,
			Title: "Registracija laboratorije",
			Steps: []step{
				{Title: "Osnovni podaci", Fields: []string{"Name", "Description", "Website", "Logo"}},
				{Title: "Analize", Fields: []string{"Analyses"}},
				facilityContactStep,
				accessStep,
			},
			newPayload: func() requests.RegistrationPayload { return new(requests.LaboratoryRegistration) },
		},
		constvars.EntityTypeSpa: {
			Type:  constvars.EntityTypeSpa,
			Title: "Registracija banje",
			Steps: []step{
				{Title: "Osnovni podaci", Fields: []string{"Name", "Category", "Description", "Website", "Logo"}},
				{Title: "Tretmani", Fields: []string{"Treatments"}},
				facilityContactStep,
				accessStep,
			},
			newPayload: func() requests.RegistrationPayload { return new(requests.SpaRegistration) },
		},
		constvars.EntityTypeCareHome: {
			Type:  constvars.EntityTypeCareHome,
			Title: "Registracija doma njege",
			Steps: []step{
				{Title: "Osnovni podaci", Fields: []string{"Name", "Description", "Logo"}},
				{Title: "Smještaj i njega", Fields: []string{"Capacity", "CareTypes", "AccommodationType"}},
				facilityContactStep,
				accessStep,
			},
			newPayload: func() requests.RegistrationPayload { return new(requests.CareHomeRegistration) },
		},
	}

	fieldLabels = map[string]string{
		"FirstName":            "Ime",
		"LastName":             "Prezime",
		"Title":                "Titula",
		"Photo":                "Fotografija",
		"SpecialtySlug":        "Specijalnost",
		"SpecialtySlugs":       "Specijalnosti",
		"LicenseNumber":        "Broj licence",
		"ClinicName":           "Ustanova u kojoj radite",
		"Bio":                  "Biografija",
		"Name":                 "Naziv",
		"Description":          "Opis",
		"Website":              "Web stranica",
		"Logo":                 "Logo",
		"Analyses":             "Analize",
		"Category":             "Kategorija",
		"Treatments":           "Tretmani",
		"Capacity":             "Kapacitet",
		"CareTypes":            "Vrste njege",
		"AccommodationType":    "Tip smještaja",
		"CitySlug":             "Grad",
		"Address":              "Adresa",
		"Phone":                "Telefon",
		"ContactPerson":        "Kontakt osoba",
		"Email":                "Email",
		"Password":             "Lozinka",
		"PasswordConfirmation": "Potvrda lozinke",
		"TermsAccepted":        "Prihvatam uslove korištenja",
	}
)

func lookupType(name string) (registrationType, bool) {
	rt, ok := registrationTypes[name]
	return rt, ok
}

// definition describes the steps of rt using the JSON names and validate tags
// of the payload struct.
func definition(rt registrationType) *responses.RegistrationDefinition {
	payloadType := reflect.TypeOf(rt.newPayload()).Elem()

	steps := make([]responses.RegistrationStepDefinition, 0, len(rt.Steps))
	for i, s := range rt.Steps {
		fields := make([]responses.RegistrationField, 0, len(s.Fields))
		for _, name := range s.Fields {
			structField, ok := payloadType.FieldByName(name)
			if !ok {
				continue
			}
			fields = append(fields, responses.RegistrationField{
				Name:     jsonName(structField),
				Label:    fieldLabels[name],
				Required: strings.HasPrefix(structField.Tag.Get("validate"), "required"),
			})
		}
		steps = append(steps, responses.RegistrationStepDefinition{
			Step:   i + 1,
			Title:  s.Title,
			Fields: fields,
		})
	}

	return &responses.RegistrationDefinition{
		Type:       rt.Type,
		Title:      rt.Title,
		TotalSteps: rt.totalSteps(),
		Steps:      steps,
	}
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		return field.Name
	}
	return name
}
