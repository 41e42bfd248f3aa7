package finance

import "math"

// TimeUnit is the display unit for a formatted work-time amount.
type TimeUnit string

const (
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
	UnitDays    TimeUnit = "days"
	UnitMonths  TimeUnit = "months"
	UnitYears   TimeUnit = "years"
)

// Severity grades a time cost for display styling. The numeric
// breakpoints and rounding in FormatTime are the tested contract;
// the tier is presentation only.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityExtreme  Severity = "extreme"
)

// HumanTime is a work-hour amount expressed in its largest sensible unit.
type HumanTime struct {
	Value float64  `json:"value"`
	Unit  TimeUnit `json:"unit"`
	Tier  Severity `json:"tier"`
}

// FormatTime converts absolute work hours into a HumanTime using fixed
// breakpoints: under 1 hour minutes, under a workday's 8 hours whole
// hours, under 5 workdays days (mild), under a month's 176 hours days
// (moderate), under a year's 2112 hours months, beyond that years.
// Minutes round to the nearest integer; hours, days and months to one
// decimal; years to two decimals.
func FormatTime(hours float64) HumanTime {
	switch {
	case hours < 1:
		return HumanTime{Value: math.Round(hours * 60), Unit: UnitMinutes, Tier: SeverityNone}
	case hours < WorkingHoursPerDay:
		return HumanTime{Value: round1(hours), Unit: UnitHours, Tier: SeverityNone}
	case hours < 5*WorkingHoursPerDay:
		return HumanTime{Value: round1(hours / WorkingHoursPerDay), Unit: UnitDays, Tier: SeverityMild}
	case hours < WorkingHoursPerMonth:
		return HumanTime{Value: round1(hours / WorkingHoursPerDay), Unit: UnitDays, Tier: SeverityModerate}
	case hours < WorkingHoursPerYear:
		return HumanTime{Value: round1(hours / WorkingHoursPerMonth), Unit: UnitMonths, Tier: SeveritySevere}
	default:
		return HumanTime{Value: round2(hours / WorkingHoursPerYear), Unit: UnitYears, Tier: SeverityExtreme}
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
