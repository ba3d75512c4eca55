package responses

type RegistrationField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

type RegistrationStepDefinition struct {
	Step   int                 `json:"step"`
	Title  string              `json:"title"`
	Fields []RegistrationField `json:"fields"`
}

type RegistrationDefinition struct {
	Type       string                       `json:"type"`
	Title      string                       `json:"title"`
	TotalSteps int                          `json:"total_steps"`
	Steps      []RegistrationStepDefinition `json:"steps"`
}

// StepResult is returned after a step validated. NextStep is 0 once every
// step before the final submission is done.
type StepResult struct {
	Step      int    `json:"step"`
	NextStep  int    `json:"next_step,omitempty"`
	Completed bool   `json:"completed"`
	StepToken string `json:"step_token"`
}

type RegistrationSubmitted struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
