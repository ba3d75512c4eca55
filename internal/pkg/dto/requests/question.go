package requests

type CreateQuestion struct {
	Title         string `json:"title" validate:"required,min=10,max=200"`
	Content       string `json:"content" validate:"required,min=20,max=5000"`
	SpecialtySlug string `json:"specialty,omitempty" validate:"omitempty,slug"`
	Email         string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Name          string `json:"name,omitempty" validate:"omitempty,max=100"`
}
