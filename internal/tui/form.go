package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/timeworthapp/timeworth/internal/model"
)

// ProfileForm is the interactive profile wizard, shared by the TUI
// first-run flow and `timeworth profile init`.
type ProfileForm struct {
	Form *huh.Form

	age            string
	salary         string
	retireAge      string
	currentSavings string
	monthlySavings string
	inflation      string
	roi            string
}

// NewProfileForm builds the wizard, pre-filled from an existing profile
// when one is present.
func NewProfileForm(existing model.Profile) *ProfileForm {
	f := &ProfileForm{
		inflation: "2.5",
		roi:       "6",
	}
	if existing.MonthlySalary > 0 {
		f.age = strconv.Itoa(existing.Age)
		f.salary = formatFloat(existing.MonthlySalary)
		f.retireAge = strconv.Itoa(existing.TargetRetireAge)
		f.currentSavings = formatFloat(existing.CurrentSavings)
		f.monthlySavings = formatFloat(existing.MonthlySavings)
		f.inflation = formatFloat(existing.InflationRatePercent)
		f.roi = formatFloat(existing.ROIRatePercent)
	}

	f.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your age").
				Value(&f.age).
				Validate(validateInt(0, 120)),
			huh.NewInput().
				Title("Monthly salary").
				Description("Needed to price spending in work hours.").
				Value(&f.salary).
				Validate(validateFloat(0.01)),
			huh.NewInput().
				Title("Target retirement age").
				Value(&f.retireAge).
				Validate(validateInt(1, 120)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Current savings").
				Value(&f.currentSavings).
				Validate(validateFloat(0)),
			huh.NewInput().
				Title("Monthly savings target").
				Value(&f.monthlySavings).
				Validate(validateFloat(0)),
			huh.NewInput().
				Title("Expected inflation % per year").
				Value(&f.inflation).
				Validate(validateFloat(0)),
			huh.NewInput().
				Title("Expected return % per year").
				Value(&f.roi).
				Validate(validateFloat(0)),
		),
	)

	return f
}

// Profile assembles the validated inputs into a profile. CreatedAt is
// preserved from the existing profile, or stamped now for a new one.
func (f *ProfileForm) Profile(existing model.Profile, now time.Time) (model.Profile, error) {
	p := existing

	var err error
	if p.Age, err = strconv.Atoi(f.age); err != nil {
		return p, fmt.Errorf("age: %w", err)
	}
	if p.MonthlySalary, err = strconv.ParseFloat(f.salary, 64); err != nil {
		return p, fmt.Errorf("salary: %w", err)
	}
	if p.TargetRetireAge, err = strconv.Atoi(f.retireAge); err != nil {
		return p, fmt.Errorf("retire age: %w", err)
	}
	if p.CurrentSavings, err = strconv.ParseFloat(f.currentSavings, 64); err != nil {
		return p, fmt.Errorf("current savings: %w", err)
	}
	if p.MonthlySavings, err = strconv.ParseFloat(f.monthlySavings, 64); err != nil {
		return p, fmt.Errorf("monthly savings: %w", err)
	}
	if p.InflationRatePercent, err = strconv.ParseFloat(f.inflation, 64); err != nil {
		return p, fmt.Errorf("inflation: %w", err)
	}
	if p.ROIRatePercent, err = strconv.ParseFloat(f.roi, 64); err != nil {
		return p, fmt.Errorf("return rate: %w", err)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func validateInt(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateFloat(min float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if f < min {
			return fmt.Errorf("must be at least %v", min)
		}
		return nil
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
