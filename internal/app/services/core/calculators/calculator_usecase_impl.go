package calculators

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	dateLayout         = "2006-01-02"
	pregnancyDays      = 280
	ovulationDay       = 14
	standardCycle      = 28
	maxGestationalDays = 44 * 7

	healthyBMIMin = 18.5
	healthyBMIMax = 24.9
)

// bmiCategories follows the WHO adult classification. Upper bounds are
// exclusive.
var bmiCategories = []struct {
	upper float64
	code  string
	label string
}{
	{16, "severe_thinness", "Teška pothranjenost"},
	{18.5, "underweight", "Pothranjenost"},
	{25, "normal", "Normalna tjelesna težina"},
	{30, "overweight", "Prekomjerna tjelesna težina"},
	{35, "obese_1", "Gojaznost I stepena"},
	{40, "obese_2", "Gojaznost II stepena"},
	{math.Inf(1), "obese_3", "Gojaznost III stepena"},
}

type calculatorUsecase struct {
	Log *zap.Logger
	now func() time.Time
}

func NewCalculatorUsecase(logger *zap.Logger) contracts.CalculatorUsecase {
	return &calculatorUsecase{
		Log: logger,
		now: time.Now,
	}
}

func (uc *calculatorUsecase) CalculateBMI(ctx context.Context, request *requests.CalculateBMI) (*responses.BMIResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("calculatorUsecase.CalculateBMI called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrCalculatorInput(err)
	}

	heightM := request.HeightCm / 100
	bmi := round1(request.WeightKg / (heightM * heightM))

	result := &responses.BMIResult{
		BMI:          bmi,
		HealthyMinKg: round1(healthyBMIMin * heightM * heightM),
		HealthyMaxKg: round1(healthyBMIMax * heightM * heightM),
	}
	for _, category := range bmiCategories {
		if bmi < category.upper {
			result.Category = category.code
			result.CategoryLabel = category.label
			break
		}
	}

	uc.Log.Info("calculatorUsecase.CalculateBMI succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result, nil
}

// CalculateDueDate applies Naegele's rule, shifted by how much the cycle
// differs from 28 days.
func (uc *calculatorUsecase) CalculateDueDate(ctx context.Context, request *requests.CalculateDueDate) (*responses.DueDateResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("calculatorUsecase.CalculateDueDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrCalculatorInput(err)
	}

	lastPeriod, err := time.Parse(dateLayout, request.LastPeriod)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	today := truncateToDay(uc.now())
	elapsed := int(today.Sub(lastPeriod).Hours() / 24)
	if elapsed < 0 {
		return nil, exceptions.ErrFieldValidation(map[string][]string{
			"last_period": {constvars.ErrClientLastPeriodInFuture},
		}, fmt.Sprintf("last period %s is after %s", request.LastPeriod, today.Format(dateLayout)))
	}
	if elapsed > maxGestationalDays {
		return nil, exceptions.ErrFieldValidation(map[string][]string{
			"last_period": {constvars.ErrClientLastPeriodTooOld},
		}, fmt.Sprintf("last period %s is %d days ago", request.LastPeriod, elapsed))
	}

	cycleLength := request.CycleLength
	if cycleLength == 0 {
		cycleLength = standardCycle
	}
	shift := cycleLength - standardCycle

	dueDate := lastPeriod.AddDate(0, 0, pregnancyDays+shift)
	daysRemaining := int(dueDate.Sub(today).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	result := &responses.DueDateResult{
		DueDate:         dueDate.Format(dateLayout),
		ConceptionDate:  lastPeriod.AddDate(0, 0, ovulationDay+shift).Format(dateLayout),
		GestationalWeek: elapsed / 7,
		GestationalDays: elapsed % 7,
		Trimester:       trimester(elapsed / 7),
		DaysRemaining:   daysRemaining,
	}

	uc.Log.Info("calculatorUsecase.CalculateDueDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result, nil
}

func trimester(weeks int) int {
	switch {
	case weeks < 13:
		return 1
	case weeks < 27:
		return 2
	default:
		return 3
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
