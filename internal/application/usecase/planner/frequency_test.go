package planner

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coinbag/backend/internal/domain/entity"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

func TestNormalizeToMonthly(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency entity.Frequency
		expected  string
	}{
		{"weekly scales by 52/12", "300", entity.FrequencyWeekly, "1300"},
		{"fortnightly scales by 26/12", "600", entity.FrequencyFortnightly, "1300"},
		{"monthly is identity", "1850", entity.FrequencyMonthly, "1850"},
		{"quarterly scales by 4/12", "300", entity.FrequencyQuarterly, "100"},
		{"yearly scales by 1/12", "1200", entity.FrequencyYearly, "100"},
		{"zero stays zero", "0", entity.FrequencyWeekly, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			expected := decimal.RequireFromString(tt.expected)

			got := NormalizeToMonthly(amount, tt.frequency)

			if !got.Equal(expected) {
				t.Errorf("expected %s, got %s", expected, got)
			}
		})
	}
}

func TestNormalizeToMonthly_Linearity(t *testing.T) {
	// Doubling the input doubles the output for every cadence. Division
	// rounds at decimal.DivisionPrecision, so the two orderings can differ
	// in the last retained digit; compare within a tolerance instead of
	// exactly.
	frequencies := []entity.Frequency{
		entity.FrequencyWeekly,
		entity.FrequencyFortnightly,
		entity.FrequencyMonthly,
		entity.FrequencyQuarterly,
		entity.FrequencyYearly,
	}

	amount := decimal.RequireFromString("137.53")
	two := decimal.NewFromInt(2)
	epsilon := decimal.New(1, -12)

	for _, frequency := range frequencies {
		t.Run(string(frequency), func(t *testing.T) {
			single := NormalizeToMonthly(amount, frequency)
			double := NormalizeToMonthly(amount.Mul(two), frequency)

			if double.Sub(single.Mul(two)).Abs().GreaterThan(epsilon) {
				t.Errorf("expected %s, got %s", single.Mul(two), double)
			}
		})
	}
}

func TestConvertFromMonthly(t *testing.T) {
	t.Run("weekly scales by 12/52", func(t *testing.T) {
		got, err := ConvertFromMonthly(decimal.NewFromInt(1300), entity.FrequencyWeekly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected 300, got %s", got)
		}
	})

	t.Run("fortnightly scales by 12/26", func(t *testing.T) {
		got, err := ConvertFromMonthly(decimal.NewFromInt(1300), entity.FrequencyFortnightly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected 600, got %s", got)
		}
	})

	t.Run("monthly is identity", func(t *testing.T) {
		amount := decimal.RequireFromString("4150")
		got, err := ConvertFromMonthly(amount, entity.FrequencyMonthly)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(amount) {
			t.Errorf("expected %s, got %s", amount, got)
		}
	})

	t.Run("quarterly and yearly are rejected", func(t *testing.T) {
		for _, target := range []entity.Frequency{entity.FrequencyQuarterly, entity.FrequencyYearly} {
			_, err := ConvertFromMonthly(decimal.NewFromInt(100), target)
			if err == nil {
				t.Fatalf("expected error for target %s", target)
			}
			if !errors.Is(err, domainerror.ErrUnsupportedTargetFrequency) {
				t.Errorf("expected ErrUnsupportedTargetFrequency, got %v", err)
			}

			var coded *domainerror.PlannerError
			if !errors.As(err, &coded) {
				t.Fatalf("expected PlannerError, got %T", err)
			}
			if coded.Code != domainerror.ErrCodeUnsupportedTargetFrequency {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnsupportedTargetFrequency, coded.Code)
			}
		}
	})
}

func TestConvertFromMonthly_RoundTrip(t *testing.T) {
	// Normalizing and converting back must reproduce the original amount for
	// the supported targets.
	targets := []entity.Frequency{
		entity.FrequencyWeekly,
		entity.FrequencyFortnightly,
		entity.FrequencyMonthly,
	}

	amount := decimal.RequireFromString("325")

	for _, target := range targets {
		t.Run(string(target), func(t *testing.T) {
			monthly := NormalizeToMonthly(amount, target)

			got, err := ConvertFromMonthly(monthly, target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(amount) {
				t.Errorf("expected %s, got %s", amount, got)
			}
		})
	}
}
