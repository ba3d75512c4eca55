package responses

import "bhzdravlje-service/internal/app/models"

// CitySection is one independently loaded block of the city page.
type CitySection[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Error      string `json:"error,omitempty"`
	ListingURL string `json:"listing_url"`
}

type CityPage struct {
	City         models.City                    `json:"city"`
	Doctors      CitySection[models.Doctor]     `json:"doctors"`
	Clinics      CitySection[models.Clinic]     `json:"clinics"`
	Laboratories CitySection[models.Laboratory] `json:"laboratories"`
	Spas         CitySection[models.Spa]        `json:"spas"`
	CareHomes    CitySection[models.CareHome]   `json:"care_homes"`
}
