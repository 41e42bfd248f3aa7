// Package finance provides the pure projection math: inflation-adjusted
// rates, compound and annuity future values, the years-to-target solver,
// and money-to-work-time conversion. Every function takes plain numbers
// and returns plain numbers; there is no state and no I/O.
package finance

import "math"

// RealRate returns the inflation-adjusted annual return as a decimal.
// The formula is (1 + roi/100) / (1 + inflation/100) - 1; the result is
// negative when inflation outpaces the nominal return.
func RealRate(inflationPercent, roiPercent float64) float64 {
	return (1+roiPercent/100)/(1+inflationPercent/100) - 1
}

// FutureValue compounds a present value annually over the given number
// of years: pv * (1+rate)^years. Fractional years are allowed; at zero
// years the present value is returned unchanged.
func FutureValue(presentValue, annualRate, years float64) float64 {
	return presentValue * math.Pow(1+annualRate, years)
}

// AnnuityFutureValue returns the future value of a constant monthly
// contribution compounded monthly over the given number of years.
// A monthly rate of exactly zero degenerates to contribution * months.
func AnnuityFutureValue(monthlyContribution, annualRate, years float64) float64 {
	monthlyRate := annualRate / 12
	months := years * 12
	if monthlyRate == 0 {
		return monthlyContribution * months
	}
	return monthlyContribution * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
}
