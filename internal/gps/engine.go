package gps

import (
	"time"

	"github.com/timeworthapp/timeworth/internal/finance"
	"github.com/timeworthapp/timeworth/internal/model"
)

// statusEpsilon absorbs float noise in the ahead/behind classification so
// a projection hovering at the target does not flap between statuses.
const statusEpsilon = 0.001 // years

// EstimatedAge aggregates the frozen time costs of all records into a
// retirement-age projection. Every historical record shifts the estimate
// permanently; this is a cumulative ledger, not a rolling window.
func EstimatedAge(targetRetireAge float64, records []model.Record) model.Trajectory {
	var saved, spent float64
	for _, r := range records {
		switch r.Kind {
		case model.KindSave:
			saved += r.TimeCostHours
		case model.KindSpend:
			spent += r.TimeCostHours
		}
	}

	netHoursImpact := spent - saved
	estimated := targetRetireAge + netHoursImpact/finance.WorkingHoursPerYear
	ageDiff := targetRetireAge - estimated

	status := model.StatusOnTrack
	switch {
	case ageDiff > statusEpsilon:
		status = model.StatusAhead
	case ageDiff < -statusEpsilon:
		status = model.StatusBehind
	}

	return model.Trajectory{
		EstimatedRetireAge: estimated,
		AgeDiffYears:       ageDiff,
		Status:             status,
		TotalSavedHours:    saved,
		TotalSpentHours:    spent,
	}
}

// Totals sums raw record amounts per kind. Display only; independent of
// the time-cost ledger.
func Totals(records []model.Record) model.Totals {
	var t model.Totals
	for _, r := range records {
		switch r.Kind {
		case model.KindSave:
			t.TotalSaved += r.Amount
		case model.KindSpend:
			t.TotalSpent += r.Amount
		}
	}
	return t
}

// TargetFund is the fund the profile's plan reaches by the target
// retirement age: current savings compounded annually plus the monthly
// contribution stream compounded monthly, both at the real rate.
func TargetFund(profile model.Profile) float64 {
	realRate := finance.RealRate(profile.InflationRatePercent, profile.ROIRatePercent)
	years := profile.YearsToRetire()
	return finance.FutureValue(profile.CurrentSavings, realRate, years) +
		finance.AnnuityFutureValue(profile.MonthlySavings, realRate, years)
}

// MonthBudget compares the current calendar month (in now's location)
// against the plan: the monthly contribution the target fund requires,
// what was actually saved and spent this month, and the headroom still
// unallocated.
func MonthBudget(profile model.Profile, records []model.Record, now time.Time) model.MonthBudget {
	realRate := finance.RealRate(profile.InflationRatePercent, profile.ROIRatePercent)
	years := profile.YearsToRetire()

	required := finance.RequiredMonthlySavings(
		profile.CurrentSavings, TargetFund(profile), years, realRate)

	var savedThisMonth, spentThisMonth float64
	for _, r := range records {
		if !r.SameMonth(now) {
			continue
		}
		switch r.Kind {
		case model.KindSave:
			savedThisMonth += r.Amount
		case model.KindSpend:
			spentThisMonth += r.Amount
		}
	}

	remaining := required - spentThisMonth
	unallocated := remaining - savedThisMonth
	if unallocated < 0 {
		unallocated = 0
	}

	start := profile.TrajectoryStartDate
	if start.IsZero() {
		start = StartDate(profile, records, now)
	}

	return model.MonthBudget{
		RequiredMonthlySavings: required,
		ActualMonthlySavings:   savedThisMonth,
		SavingsGap:             required - savedThisMonth,
		SpentThisMonth:         spentThisMonth,
		RemainingBudget:        remaining,
		UnallocatedFunds:       unallocated,
		MonthsElapsed:          MonthsElapsed(start, now),
	}
}
