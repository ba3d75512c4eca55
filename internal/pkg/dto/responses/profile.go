package responses

import "bhzdravlje-service/internal/app/models"

// DoctorProfile is the data of a doctor page. Reviews fail independently of
// the doctor: ReviewsError carries a client message when they could not be
// loaded.
type DoctorProfile struct {
	Doctor       models.Doctor   `json:"doctor"`
	Reviews      []models.Review `json:"reviews"`
	ReviewsError string          `json:"reviews_error,omitempty"`
	Extras       ProfileExtras   `json:"extras"`
}

type FacilityProfile[T models.Facility] struct {
	Facility     T               `json:"facility"`
	Type         string          `json:"type"`
	Reviews      []models.Review `json:"reviews"`
	ReviewsError string          `json:"reviews_error,omitempty"`
	Extras       ProfileExtras   `json:"extras"`
}

type BlogPostPage struct {
	Post    models.BlogPost   `json:"post"`
	Related []models.BlogPost `json:"related,omitempty"`
	Extras  ProfileExtras     `json:"extras"`
}

type QuestionPage struct {
	Question models.Question `json:"question"`
	Extras   ProfileExtras   `json:"extras"`
}
