package requests

type CalculateBMI struct {
	WeightKg float64 `json:"weight_kg" validate:"required,gte=1,lte=500"`
	HeightCm float64 `json:"height_cm" validate:"required,gte=50,lte=260"`
}

type CalculateDueDate struct {
	LastPeriod  string `json:"last_period" validate:"required,datetime=2006-01-02"`
	CycleLength int    `json:"cycle_length" validate:"omitempty,gte=21,lte=45"`
}
