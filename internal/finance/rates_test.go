package finance

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRealRate_ZeroBothIsZero(t *testing.T) {
	if got := RealRate(0, 0); got != 0 {
		t.Fatalf("RealRate(0, 0) = %v, want 0", got)
	}
}

func TestRealRate_Formula(t *testing.T) {
	cases := []struct {
		inflation, roi float64
	}{
		{2.5, 6},
		{0, 6},
		{3, 3},
		{8, 2}, // inflation above nominal return
		{1.7, 4.9},
	}
	for _, c := range cases {
		want := (1+c.roi/100)/(1+c.inflation/100) - 1
		got := RealRate(c.inflation, c.roi)
		if got != want {
			t.Errorf("RealRate(%v, %v) = %v, want %v", c.inflation, c.roi, got, want)
		}
	}
}

func TestRealRate_NegativeWhenInflationWins(t *testing.T) {
	if got := RealRate(8, 2); got >= 0 {
		t.Fatalf("RealRate(8, 2) = %v, want negative", got)
	}
}

func TestFutureValue_ZeroYearsIsPresentValue(t *testing.T) {
	for _, rate := range []float64{-0.05, 0, 0.034, 0.2} {
		if got := FutureValue(12345.67, rate, 0); got != 12345.67 {
			t.Errorf("FutureValue(12345.67, %v, 0) = %v, want 12345.67", rate, got)
		}
	}
}

func TestFutureValue_Compounds(t *testing.T) {
	got := FutureValue(1000, 0.06, 10)
	want := 1000 * math.Pow(1.06, 10)
	if !almostEqual(got, want, 1e-9) {
		t.Fatalf("FutureValue(1000, 0.06, 10) = %v, want %v", got, want)
	}
}

func TestAnnuityFutureValue_ZeroRateFallback(t *testing.T) {
	if got := AnnuityFutureValue(500, 0, 3); got != 500*3*12 {
		t.Fatalf("AnnuityFutureValue(500, 0, 3) = %v, want %v", got, 500.0*36)
	}
}

func TestAnnuityFutureValue_ExceedsPlainSumAtPositiveRate(t *testing.T) {
	plain := 500.0 * 10 * 12
	got := AnnuityFutureValue(500, 0.05, 10)
	if got <= plain {
		t.Fatalf("AnnuityFutureValue(500, 0.05, 10) = %v, want > %v", got, plain)
	}
}
