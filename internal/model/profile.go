// Package model defines the core data types shared across timeworth.
package model

import (
	"errors"
	"math"
	"time"
)

// Profile holds the user's financial plan parameters.
// Amounts are in the user's home currency; rates are percentages
// (2.5 means 2.5%).
type Profile struct {
	Age                  int     `json:"age"`
	MonthlySalary        float64 `json:"monthly_salary"`
	TargetRetireAge      int     `json:"target_retire_age"`
	CurrentSavings       float64 `json:"current_savings"`
	MonthlySavings       float64 `json:"monthly_savings"`
	InflationRatePercent float64 `json:"inflation_rate_percent"`
	ROIRatePercent       float64 `json:"roi_rate_percent"`

	// CreatedAt marks profile creation. Zero means a legacy profile
	// whose tenure predates tracking.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// TrajectoryStartDate is the cached canonical start of the tracked
	// trajectory. Once persisted it is never recomputed; recomputing
	// would retroactively change historical deviation.
	TrajectoryStartDate time.Time `json:"trajectory_start_date,omitzero"`
}

// Validation errors returned by Profile.Validate.
var (
	ErrSalaryNotPositive  = errors.New("monthly salary must be greater than zero")
	ErrRetireAgeNotAfter  = errors.New("target retire age must be greater than current age")
	ErrNegativeAmount     = errors.New("amounts must not be negative")
	ErrRateNotFinite      = errors.New("rates must be finite numbers")
)

// Validate rejects profiles the projection engine cannot safely consume.
// The engine assumes valid inputs; this is the gate in front of it.
func (p Profile) Validate() error {
	if p.MonthlySalary <= 0 {
		return ErrSalaryNotPositive
	}
	if p.TargetRetireAge <= p.Age || p.Age < 0 {
		return ErrRetireAgeNotAfter
	}
	if p.CurrentSavings < 0 || p.MonthlySavings < 0 {
		return ErrNegativeAmount
	}
	if !isFinite(p.InflationRatePercent) || !isFinite(p.ROIRatePercent) ||
		p.InflationRatePercent < 0 || p.ROIRatePercent < 0 {
		return ErrRateNotFinite
	}
	return nil
}

// YearsToRetire returns the remaining horizon in whole years.
func (p Profile) YearsToRetire() float64 {
	return float64(p.TargetRetireAge - p.Age)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
