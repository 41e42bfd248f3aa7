package model

// TrajectoryStatus classifies progress against the retirement target.
type TrajectoryStatus string

const (
	StatusAhead   TrajectoryStatus = "ahead"
	StatusOnTrack TrajectoryStatus = "onTrack"
	StatusBehind  TrajectoryStatus = "behind"
)

// Trajectory is the GPS projection derived from a profile and its records.
// It is recomputed from scratch on every call and holds no identity of its
// own; the profile and records remain the source of truth.
type Trajectory struct {
	EstimatedRetireAge float64          `json:"estimated_retire_age"`
	AgeDiffYears       float64          `json:"age_diff_years"` // target - estimated; positive = ahead
	Status             TrajectoryStatus `json:"status"`
	TotalSavedHours    float64          `json:"total_saved_hours"`
	TotalSpentHours    float64          `json:"total_spent_hours"`
}

// MonthBudget compares the current calendar month against the plan.
type MonthBudget struct {
	RequiredMonthlySavings float64 `json:"required_monthly_savings"`
	ActualMonthlySavings   float64 `json:"actual_monthly_savings"`
	SavingsGap             float64 `json:"savings_gap"` // required - actual; positive = shortfall
	SpentThisMonth         float64 `json:"spent_this_month"`
	RemainingBudget        float64 `json:"remaining_budget"`
	UnallocatedFunds       float64 `json:"unallocated_funds"`
	MonthsElapsed          int     `json:"months_elapsed"`
}

// Totals holds raw amount sums per record kind, for display.
// Independent of the time-cost ledger.
type Totals struct {
	TotalSaved float64 `json:"total_saved"`
	TotalSpent float64 `json:"total_spent"`
}
