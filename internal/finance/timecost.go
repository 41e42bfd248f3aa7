package finance

import "math"

// Working-time constants used to convert between money and work hours.
const (
	WorkingDaysPerMonth  = 22
	WorkingHoursPerDay   = 8
	WorkingHoursPerMonth = WorkingDaysPerMonth * WorkingHoursPerDay // 176
	WorkingHoursPerYear  = WorkingHoursPerMonth * 12                // 2112
)

// HourlyRate derives an hourly wage from a monthly salary, assuming
// 22 working days of 8 hours. Returns 0 for a non-positive salary;
// salaries of zero must be rejected by validation before they get here.
func HourlyRate(monthlySalary float64) float64 {
	if monthlySalary <= 0 {
		return 0
	}
	return monthlySalary / WorkingDaysPerMonth / WorkingHoursPerDay
}

// TimeCost converts a monetary amount into the hours of work, at the
// current wage, whose value matches the amount's future value at
// retirement.
//
// A recurring amount is a constant monthly outflow from now until
// retirement and compounds monthly via the annuity formula. A one-off
// amount is a lump sum compounding annually.
func TimeCost(amount float64, recurring bool, hourlyRate, realRate, yearsToRetire float64) float64 {
	if hourlyRate <= 0 {
		return 0
	}

	var futureValue float64
	if recurring {
		months := yearsToRetire * 12
		monthlyRate := realRate / 12
		switch {
		case months <= 0:
			futureValue = 0
		case monthlyRate == 0:
			futureValue = amount * months
		default:
			futureValue = amount * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
		}
	} else {
		if yearsToRetire <= 0 {
			futureValue = amount
		} else {
			futureValue = amount * math.Pow(1+realRate, yearsToRetire)
		}
	}

	return futureValue / hourlyRate
}
