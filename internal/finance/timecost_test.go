package finance

import (
	"math"
	"testing"
)

func TestHourlyRate(t *testing.T) {
	got := HourlyRate(50_000)
	want := 50_000.0 / 22 / 8
	if got != want {
		t.Fatalf("HourlyRate(50000) = %v, want %v", got, want)
	}
}

func TestHourlyRate_GuardsNonPositiveSalary(t *testing.T) {
	for _, salary := range []float64{0, -100} {
		if got := HourlyRate(salary); got != 0 {
			t.Errorf("HourlyRate(%v) = %v, want 0", salary, got)
		}
	}
}

func TestTimeCost_OneOffAtRetirementIsPlainHours(t *testing.T) {
	rate := HourlyRate(50_000)
	got := TimeCost(10_000, false, rate, 0.05, 0)
	want := 10_000 / rate
	if !almostEqual(got, want, 1e-9) {
		t.Fatalf("TimeCost one-off at retirement = %v, want %v", got, want)
	}
}

func TestTimeCost_OneOffCompoundsAnnually(t *testing.T) {
	rate := HourlyRate(50_000)
	realRate := 0.034
	got := TimeCost(10_000, false, rate, realRate, 20)
	want := 10_000 * math.Pow(1+realRate, 20) / rate
	if !almostEqual(got, want, 1e-9) {
		t.Fatalf("TimeCost one-off = %v, want %v", got, want)
	}
}

func TestTimeCost_RecurringZeroRealRate(t *testing.T) {
	rate := HourlyRate(44_000) // 250/hour
	got := TimeCost(100, true, rate, 0, 2)
	want := 100 * 24 / rate // 24 months, no growth
	if !almostEqual(got, want, 1e-9) {
		t.Fatalf("TimeCost recurring zero-rate = %v, want %v", got, want)
	}
}

func TestTimeCost_RecurringAtRetirementIsZero(t *testing.T) {
	rate := HourlyRate(50_000)
	if got := TimeCost(100, true, rate, 0.05, 0); got != 0 {
		t.Fatalf("TimeCost recurring with no horizon = %v, want 0", got)
	}
}

// The compounding asymmetry is contractual: recurring amounts compound
// monthly as a cash-flow stream, one-off amounts compound annually, so
// the two must diverge whenever there is a horizon and a non-zero rate.
func TestTimeCost_RecurringAndOneOffDiverge(t *testing.T) {
	rate := HourlyRate(50_000)
	for _, years := range []float64{1, 10, 35} {
		oneOff := TimeCost(5_000, false, rate, 0.03, years)
		recurring := TimeCost(5_000, true, rate, 0.03, years)
		if oneOff == recurring {
			t.Errorf("one-off and recurring agree at %v years: %v", years, oneOff)
		}
	}
}

func TestTimeCost_GuardsZeroHourlyRate(t *testing.T) {
	if got := TimeCost(10_000, false, 0, 0.05, 10); got != 0 {
		t.Fatalf("TimeCost with zero hourly rate = %v, want 0", got)
	}
}
