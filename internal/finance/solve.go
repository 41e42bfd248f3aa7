package finance

import "math"

// MaxHorizonYears is the hard ceiling of the years-to-target search.
// Targets unreachable within it converge toward this value; callers that
// need to distinguish "reachable" apply their own threshold against it.
const MaxHorizonYears = 100

// solveEpsilon terminates the search once the bracket is this narrow,
// in years.
const solveEpsilon = 0.01

// YearsToTarget returns the number of years until currentSavings plus a
// constant monthlySavings stream, both growing at annualRate, reaches
// targetAmount. Returns 0 immediately when the target is already met.
//
// The combined future value is non-decreasing in years for any rate
// above -100%, so a binary search over [0, MaxHorizonYears] converges.
func YearsToTarget(currentSavings, monthlySavings, targetAmount, annualRate float64) float64 {
	if currentSavings >= targetAmount {
		return 0
	}

	low, high := 0.0, float64(MaxHorizonYears)
	for high-low > solveEpsilon {
		mid := (low + high) / 2
		projected := FutureValue(currentSavings, annualRate, mid) +
			AnnuityFutureValue(monthlySavings, annualRate, mid)
		if projected < targetAmount {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}

// RequiredMonthlySavings returns the constant monthly contribution needed
// for currentSavings to grow to targetAmount within the given years at
// annualRate. Returns 0 when the current savings alone already get there,
// or when the horizon is not positive.
func RequiredMonthlySavings(currentSavings, targetAmount, years, annualRate float64) float64 {
	remaining := targetAmount - FutureValue(currentSavings, annualRate, years)
	if remaining <= 0 {
		return 0
	}

	months := years * 12
	if months <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12
	if monthlyRate == 0 {
		return remaining / months
	}
	return remaining * monthlyRate / (math.Pow(1+monthlyRate, months) - 1)
}
