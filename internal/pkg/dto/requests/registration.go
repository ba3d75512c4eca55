package requests

import (
	"strings"

	"github.com/goccy/go-json"
)

// RegistrationStep is the body of a step validation or a final submission.
// Data holds every field entered so far.
type RegistrationStep struct {
	StepToken string          `json:"step_token"`
	Data      json.RawMessage `json:"data"`
}

// RegistrationPayload is implemented by every registration form.
type RegistrationPayload interface {
	// ImageField returns the JSON name and the base64 value of the optional image.
	ImageField() (name string, encoded string)
	ContactEmail() string
	DisplayName() string
}

type DoctorRegistration struct {
	FirstName            string `json:"first_name" validate:"required,min=2,max=60"`
	LastName             string `json:"last_name" validate:"required,min=2,max=60"`
	Title                string `json:"title" validate:"omitempty,max=30"`
	SpecialtySlug        string `json:"specialty" validate:"required,slug"`
	LicenseNumber        string `json:"license_number" validate:"required,min=3,max=40"`
	ClinicName           string `json:"clinic_name" validate:"omitempty,max=150"`
	Bio                  string `json:"bio" validate:"omitempty,max=2000"`
	CitySlug             string `json:"city" validate:"required,slug"`
	Address              string `json:"address" validate:"required,min=5,max=200"`
	Phone                string `json:"phone" validate:"required,phone_ba"`
	Email                string `json:"email" validate:"required,email,max=150"`
	Password             string `json:"password" validate:"required,strong_password"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	TermsAccepted        bool   `json:"terms_accepted" validate:"required"`
	Photo                string `json:"photo,omitempty"`
}

func (r *DoctorRegistration) ImageField() (string, string) { return "photo", r.Photo }
func (r *DoctorRegistration) ContactEmail() string          { return r.Email }
func (r *DoctorRegistration) DisplayName() string {
	return strings.TrimSpace(strings.Join([]string{r.Title, r.FirstName, r.LastName}, " "))
}

type ClinicRegistration struct {
	Name                 string   `json:"name" validate:"required,min=3,max=150"`
	Description          string   `json:"description" validate:"omitempty,max=2000"`
	SpecialtySlugs       []string `json:"specialties" validate:"omitempty,max=30,dive,slug"`
	Website              string   `json:"website" validate:"omitempty,http_url"`
	CitySlug             string   `json:"city" validate:"required,slug"`
	Address              string   `json:"address" validate:"required,min=5,max=200"`
	Phone                string   `json:"phone" validate:"required,phone_ba"`
	Email                string   `json:"email" validate:"required,email,max=150"`
	ContactPerson        string   `json:"contact_person" validate:"required,min=3,max=100"`
	Password             string   `json:"password" validate:"required,strong_password"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"required,eqfield=Password"`
	TermsAccepted        bool     `json:"terms_accepted" validate:"required"`
	Logo                 string   `json:"logo,omitempty"`
}

func (r *ClinicRegistration) ImageField() (string, string) { return "logo", r.Logo }
func (r *ClinicRegistration) ContactEmail() string         { return r.Email }
func (r *ClinicRegistration) DisplayName() string          { return r.Name }

type LaboratoryRegistration struct {
	Name                 string   `json:"name" validate:"required,min=3,max=150"`
	Description          string   `json:"description" validate:"omitempty,max=2000"`
	Analyses             []string `json:"analyses" validate:"omitempty,max=200,dive,min=2,max=100"`
	Website              string   `json:"website" validate:"omitempty,http_url"`
	CitySlug             string   `json:"city" validate:"required,slug"`
	Address              string   `json:"address" validate:"required,min=5,max=200"`
	Phone                string   `json:"phone" validate:"required,phone_ba"`
	Email                string   `json:"email" validate:"required,email,max=150"`
	ContactPerson        string   `json:"contact_person" validate:"required,min=3,max=100"`
	Password             string   `json:"password" validate:"required,strong_password"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"required,eqfield=Password"`
	TermsAccepted        bool     `json:"terms_accepted" validate:"required"`
	Logo                 string   `json:"logo,omitempty"`
}

func (r *LaboratoryRegistration) ImageField() (string, string) { return "logo", r.Logo }
func (r *LaboratoryRegistration) ContactEmail() string         { return r.Email }
func (r *LaboratoryRegistration) DisplayName() string          { return r.Name }

type SpaRegistration struct {
	Name                 string   `json:"name" validate:"required,min=3,max=150"`
	Category             string   `json:"category" validate:"required,oneof=termalna klimatska morska rehabilitacijska wellness"`
	Treatments           []string `json:"treatments" validate:"omitempty,max=100,dive,min=2,max=100"`
	Description          string   `json:"description" validate:"omitempty,max=2000"`
	Website              string   `json:"website" validate:"omitempty,http_url"`
	CitySlug             string   `json:"city" validate:"required,slug"`
	Address              string   `json:"address" validate:"required,min=5,max=200"`
	Phone                string   `json:"phone" validate:"required,phone_ba"`
	Email                string   `json:"email" validate:"required,email,max=150"`
	ContactPerson        string   `json:"contact_person" validate:"required,min=3,max=100"`
	Password             string   `json:"password" validate:"required,strong_password"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"required,eqfield=Password"`
	TermsAccepted        bool     `json:"terms_accepted" validate:"required"`
	Logo                 string   `json:"logo,omitempty"`
}

func (r *SpaRegistration) ImageField() (string, string) { return "logo", r.Logo }
func (r *SpaRegistration) ContactEmail() string         { return r.Email }
func (r *SpaRegistration) DisplayName() string          { return r.Name }

type CareHomeRegistration struct {
	Name                 string   `json:"name" validate:"required,min=3,max=150"`
	Description          string   `json:"description" validate:"omitempty,max=2000"`
	Capacity             int      `json:"capacity" validate:"required,min=1,max=2000"`
	CareTypes            []string `json:"care_types" validate:"required,min=1,dive,oneof=stalni privremeni dnevni palijativni dementni"`
	AccommodationType    string   `json:"accommodation_type" validate:"required,oneof=jednokrevetna dvokrevetna visekrevetna kombinovana"`
	CitySlug             string   `json:"city" validate:"required,slug"`
	Address              string   `json:"address" validate:"required,min=5,max=200"`
	Phone                string   `json:"phone" validate:"required,phone_ba"`
	Email                string   `json:"email" validate:"required,email,max=150"`
	ContactPerson        string   `json:"contact_person" validate:"required,min=3,max=100"`
	Password             string   `json:"password" validate:"required,strong_password"`
	PasswordConfirmation string   `json:"password_confirmation" validate:"required,eqfield=Password"`
	TermsAccepted        bool     `json:"terms_accepted" validate:"required"`
	Logo                 string   `json:"logo,omitempty"`
}

func (r *CareHomeRegistration) ImageField() (string, string) { return "logo", r.Logo }
func (r *CareHomeRegistration) ContactEmail() string         { return r.Email }
func (r *CareHomeRegistration) DisplayName() string          { return r.Name }
