package models

import "strings"

// Institution is the shared core of clinics, laboratories, spas and care homes.
type Institution struct {
	ID           int64    `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Address      string   `json:"address,omitempty"`
	City         *City    `json:"city,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Website      string   `json:"website,omitempty"`
	LogoURL      string   `json:"logo_url,omitempty"`
	WorkingHours []string `json:"working_hours,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	ReviewCount  int      `json:"review_count"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	VideoURL     string   `json:"video_url,omitempty"`
}

func (i Institution) Core() Institution {
	return i
}

func (i Institution) CityName() string {
	if i.City == nil {
		return ""
	}
	return i.City.Name
}

func (i Institution) SearchText() string {
	return strings.Join([]string{i.Name, i.CityName(), i.Address, i.Description}, " ")
}

// Facility is implemented by every institution type.
type Facility interface {
	Core() Institution
	SearchText() string
}

type Clinic struct {
	Institution
	Specialties []Specialty `json:"specialties,omitempty"`
}

func (c Clinic) SearchText() string {
	names := make([]string, 0, len(c.Specialties)+1)
	names = append(names, c.Institution.SearchText())
	for _, specialty := range c.Specialties {
		names = append(names, specialty.Name)
	}
	return strings.Join(names, " ")
}

type Laboratory struct {
	Institution
	Analyses []string `json:"analyses,omitempty"`
}

func (l Laboratory) SearchText() string {
	return l.Institution.SearchText() + " " + strings.Join(l.Analyses, " ")
}

type Spa struct {
	Institution
	Category   string   `json:"category,omitempty"`
	Treatments []string `json:"treatments,omitempty"`
}

func (s Spa) SearchText() string {
	return s.Institution.SearchText() + " " + s.Category + " " + strings.Join(s.Treatments, " ")
}

type CareHome struct {
	Institution
	Capacity          *int     `json:"capacity,omitempty"`
	CareTypes         []string `json:"care_types,omitempty"`
	AccommodationType string   `json:"accommodation_type,omitempty"`
}

func (c CareHome) SearchText() string {
	return c.Institution.SearchText() + " " + strings.Join(c.CareTypes, " ") + " " + c.AccommodationType
}
