package calculators

import (
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase(today string) *calculatorUsecase {
	uc := NewCalculatorUsecase(zap.NewNop()).(*calculatorUsecase)
	uc.now = func() time.Time {
		t, _ := time.Parse(dateLayout, today)
		return t.Add(15 * time.Hour)
	}
	return uc
}

func TestCalculateBMI(t *testing.T) {
	uc := newUsecase("2024-05-01")
	ctx := context.Background()

	tests := []struct {
		name     string
		weight   float64
		height   float64
		bmi      float64
		category string
	}{
		{"normal", 70, 175, 22.9, "normal"},
		{"underweight", 50, 175, 16.3, "underweight"},
		{"overweight", 85, 175, 27.8, "overweight"},
		{"obese class II", 115, 175, 37.6, "obese_2"},
		{"severe thinness", 40, 170, 13.8, "severe_thinness"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.CalculateBMI(ctx, &requests.CalculateBMI{WeightKg: tt.weight, HeightCm: tt.height})
			require.NoError(t, err)
			assert.Equal(t, tt.bmi, result.BMI)
			assert.Equal(t, tt.category, result.Category)
			assert.NotEmpty(t, result.CategoryLabel)
		})
	}

	result, err := uc.CalculateBMI(ctx, &requests.CalculateBMI{WeightKg: 70, HeightCm: 175})
	require.NoError(t, err)
	assert.Equal(t, 56.7, result.HealthyMinKg)
	assert.Equal(t, 76.3, result.HealthyMaxKg)

	_, err = uc.CalculateBMI(ctx, &requests.CalculateBMI{WeightKg: 70, HeightCm: 20})
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Contains(t, customErr.FieldErrors, "height_cm")
}

func TestCalculateDueDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Standard cycle", func(t *testing.T) {
		uc := newUsecase("2024-03-01")
		result, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "2024-01-01"})
		require.NoError(t, err)
		assert.Equal(t, "2024-10-07", result.DueDate)
		assert.Equal(t, "2024-01-15", result.ConceptionDate)
		assert.Equal(t, 8, result.GestationalWeek)
		assert.Equal(t, 4, result.GestationalDays)
		assert.Equal(t, 1, result.Trimester)
		assert.Equal(t, 220, result.DaysRemaining)
	})

	t.Run("Longer cycle moves the due date", func(t *testing.T) {
		uc := newUsecase("2024-06-15")
		result, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "2024-01-01", CycleLength: 32})
		require.NoError(t, err)
		assert.Equal(t, "2024-10-11", result.DueDate)
		assert.Equal(t, 2, result.Trimester)
	})

	t.Run("Third trimester", func(t *testing.T) {
		uc := newUsecase("2024-08-01")
		result, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "2024-01-01"})
		require.NoError(t, err)
		assert.Equal(t, 30, result.GestationalWeek)
		assert.Equal(t, 3, result.Trimester)
	})

	t.Run("Future date", func(t *testing.T) {
		uc := newUsecase("2024-03-01")
		_, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "2024-03-02"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, []string{constvars.ErrClientLastPeriodInFuture}, customErr.FieldErrors["last_period"])
	})

	t.Run("Too old", func(t *testing.T) {
		uc := newUsecase("2024-12-01")
		_, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "2024-01-01"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, []string{constvars.ErrClientLastPeriodTooOld}, customErr.FieldErrors["last_period"])
	})

	t.Run("Invalid input", func(t *testing.T) {
		uc := newUsecase("2024-03-01")
		_, err := uc.CalculateDueDate(ctx, &requests.CalculateDueDate{LastPeriod: "01.01.2024", CycleLength: 60})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.FieldErrors, "last_period")
		assert.Contains(t, customErr.FieldErrors, "cycle_length")
	})
}
