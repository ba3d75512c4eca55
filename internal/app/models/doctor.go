package models

import "strings"

type Doctor struct {
	ID                  int64      `json:"id"`
	Slug                string     `json:"slug"`
	FirstName           string     `json:"ime"`
	LastName            string     `json:"prezime"`
	Title               string     `json:"title,omitempty"`
	Specialty           *Specialty `json:"specialty,omitempty"`
	City                *City      `json:"city,omitempty"`
	ClinicName          string     `json:"clinic_name,omitempty"`
	Address             string     `json:"address,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Email               string     `json:"email,omitempty"`
	Bio                 string     `json:"bio,omitempty"`
	PhotoURL            string     `json:"photo_url,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	Rating              *float64   `json:"rating,omitempty"`
	ReviewCount         int        `json:"review_count"`
	Languages           []string   `json:"languages,omitempty"`
	VideoURL            string     `json:"video_url,omitempty"`
	AcceptsGuestBooking bool       `json:"accepts_guest_booking"`
}

// FullName joins title, first and last name, e.g. "Dr. Amra Hadžić".
func (d Doctor) FullName() string {
	return strings.Join(strings.Fields(d.Title+" "+d.FirstName+" "+d.LastName), " ")
}

func (d Doctor) SpecialtyName() string {
	if d.Specialty == nil {
		return ""
	}
	return d.Specialty.Name
}

func (d Doctor) CityName() string {
	if d.City == nil {
		return ""
	}
	return d.City.Name
}

// SearchText is what the listing free text search matches against.
func (d Doctor) SearchText() string {
	return strings.Join([]string{d.FullName(), d.SpecialtyName(), d.CityName(), d.ClinicName}, " ")
}
