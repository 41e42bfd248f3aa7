package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/gps"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your retirement trajectory",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := requireProfile(st)
	if err != nil {
		return err
	}

	records, err := st.ListRecords()
	if err != nil {
		return err
	}

	now := time.Now()
	profile.TrajectoryStartDate, err = ensureTrajectoryStart(st, profile, records, now)
	if err != nil {
		return err
	}

	traj := gps.EstimatedAge(float64(profile.TargetRetireAge), records)
	month := gps.MonthBudget(profile, records, now)
	totals := gps.Totals(records)
	sym := currencySymbol(cfg)

	statusStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.StatusColor(traj.Status))

	fmt.Println()
	fmt.Println(cli.RenderTitle("TIMEWORTH GPS"))
	fmt.Println()
	fmt.Printf("  Estimated retirement age: %.2f (target %d)\n", traj.EstimatedRetireAge, profile.TargetRetireAge)
	fmt.Printf("  Trajectory: %s", statusStyle.Render(statusWord(traj.Status)))
	if traj.Status != model.StatusOnTrack {
		fmt.Printf(" by %s", cli.FormatAgeDiffString(traj.AgeDiffYears))
	}
	fmt.Println()
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Ledger",
		Headers: []string{"", "Hours", "Amount"},
		Rows: [][]string{
			{"Saved", cli.FormatTimeCost(traj.TotalSavedHours), sym + cli.FormatCurrency(totals.TotalSaved)},
			{"Spent", cli.FormatTimeCost(traj.TotalSpentHours), sym + cli.FormatCurrency(totals.TotalSpent)},
		},
	}))

	var pct float64
	if month.RequiredMonthlySavings > 0 {
		pct = month.ActualMonthlySavings / month.RequiredMonthlySavings
	}
	fmt.Printf("  %s savings this month\n", now.Format("January"))
	fmt.Printf("  %s\n", cli.RenderBudgetBar(pct, 32))
	fmt.Printf("  %s%s of %s%s · unallocated %s%s\n\n",
		sym, cli.FormatCurrency(month.ActualMonthlySavings),
		sym, cli.FormatCurrency(month.RequiredMonthlySavings),
		sym, cli.FormatCurrency(month.UnallocatedFunds),
	)

	return nil
}

// ensureTrajectoryStart returns the cached trajectory start, computing
// and persisting it on first use. Once cached it is never recomputed.
func ensureTrajectoryStart(st *store.Store, profile model.Profile, records []model.Record, now time.Time) (time.Time, error) {
	start, ok, err := st.TrajectoryStart()
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return start, nil
	}

	start = gps.StartDate(profile, records, now)
	if err := st.SetTrajectoryStart(start); err != nil {
		return time.Time{}, err
	}
	return start, nil
}

func statusWord(s model.TrajectoryStatus) string {
	switch s {
	case model.StatusAhead:
		return "ahead of plan"
	case model.StatusBehind:
		return "behind plan"
	default:
		return "on track"
	}
}
