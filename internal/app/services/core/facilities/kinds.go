package facilities

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/seo"
	"strings"
)

const nursingHomeSchemaURL = "https://schema.org/NursingHome"

// Kind describes one institution type: where its pages live, how it is
// labelled and which schema.org type it maps to.
type Kind[T models.Facility] struct {
	EntityType         string
	ListingPath        string
	ProfilePath        string
	ListingTitle       string
	ListingDescription string
	ListingLabel       string
	SchemaType         string
	AdditionalType     string
	NotFoundMessage    string
	CityInPath         bool
	// Specialties feeds medicalSpecialty of the JSON-LD document.
	Specialties func(T) []string
}

func ClinicKind() Kind[models.Clinic] {
	return Kind[models.Clinic]{
		EntityType:         constvars.EntityTypeClinic,
		ListingPath:        constvars.PagePathClinics,
		ProfilePath:        constvars.PagePathClinic,
		ListingTitle:       "Privatne klinike i poliklinike",
		ListingDescription: "Pregled privatnih klinika i poliklinika u BiH sa specijalnostima, radnim vremenom i recenzijama.",
		ListingLabel:       "Klinike",
		SchemaType:         seo.TypeMedicalClinic,
		NotFoundMessage:    constvars.ErrClientClinicNotFound,
		Specialties: func(c models.Clinic) []string {
			names := make([]string, 0, len(c.Specialties))
			for _, specialty := range c.Specialties {
				names = append(names, specialty.Name)
			}
			return names
		},
	}
}

func LaboratoryKind() Kind[models.Laboratory] {
	return Kind[models.Laboratory]{
		EntityType:         constvars.EntityTypeLaboratory,
		ListingPath:        constvars.PagePathLaboratories,
		ProfilePath:        constvars.PagePathLaboratory,
		ListingTitle:       "Laboratorije",
		ListingDescription: "Medicinsko-biohemijske laboratorije u BiH: analize, radno vrijeme i lokacije.",
		ListingLabel:       "Laboratorije",
		SchemaType:         seo.TypeDiagnosticLab,
		NotFoundMessage:    constvars.ErrClientLaboratoryNotFound,
	}
}

func SpaKind() Kind[models.Spa] {
	return Kind[models.Spa]{
		EntityType:         constvars.EntityTypeSpa,
		ListingPath:        constvars.PagePathSpas,
		ProfilePath:        constvars.PagePathSpa,
		ListingTitle:       "Banje i lječilišta",
		ListingDescription: "Banje, lječilišta i rehabilitacijski centri u Bosni i Hercegovini.",
		ListingLabel:       "Banje",
		SchemaType:         seo.TypeDaySpa,
		NotFoundMessage:    constvars.ErrClientSpaNotFound,
	}
}

func CareHomeKind() Kind[models.CareHome] {
	return Kind[models.CareHome]{
		EntityType:         constvars.EntityTypeCareHome,
		ListingPath:        constvars.PagePathCareHomes,
		ProfilePath:        constvars.PagePathCareHome,
		ListingTitle:       "Domovi za starije i nemoćne",
		ListingDescription: "Domovi njege i domovi za starije osobe po gradovima, sa kapacitetom i vrstama njege.",
		ListingLabel:       "Domovi njege",
		SchemaType:         seo.TypeMedicalOrganization,
		AdditionalType:     nursingHomeSchemaURL,
		NotFoundMessage:    constvars.ErrClientCareHomeNotFound,
		CityInPath:         true,
	}
}

func (k Kind[T]) specialty(facility T) string {
	if k.Specialties == nil {
		return ""
	}
	return strings.Join(k.Specialties(facility), ", ")
}
