package responses

type BMIResult struct {
	BMI           float64 `json:"bmi"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	HealthyMinKg  float64 `json:"healthy_min_kg"`
	HealthyMaxKg  float64 `json:"healthy_max_kg"`
}

type DueDateResult struct {
	DueDate         string `json:"due_date"`
	ConceptionDate  string `json:"conception_date"`
	GestationalWeek int    `json:"gestational_weeks"`
	GestationalDays int    `json:"gestational_days"`
	Trimester       int    `json:"trimester"`
	DaysRemaining   int    `json:"days_remaining"`
}
