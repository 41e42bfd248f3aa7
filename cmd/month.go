package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/gps"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show this month's budget against the plan",
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, _ []string) error {
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

	month := gps.MonthBudget(profile, records, now)
	sym := currencySymbol(cfg)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   now.Format("January 2006"),
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Required savings", sym + cli.FormatCurrency(month.RequiredMonthlySavings)},
			{"Saved so far", sym + cli.FormatCurrency(month.ActualMonthlySavings)},
			{"Spent so far", sym + cli.FormatCurrency(month.SpentThisMonth)},
			{"Remaining budget", sym + cli.FormatCurrency(month.RemainingBudget)},
			{"Unallocated funds", sym + cli.FormatCurrency(month.UnallocatedFunds)},
		},
	}))

	var savePct, spendPct float64
	if month.RequiredMonthlySavings > 0 {
		savePct = month.ActualMonthlySavings / month.RequiredMonthlySavings
		spendPct = month.SpentThisMonth / month.RequiredMonthlySavings
	}
	fmt.Printf("  Saved  %s\n", cli.RenderBudgetBar(savePct, 32))
	fmt.Printf("  Spent  %s\n", cli.RenderBudgetBar(spendPct, 32))
	fmt.Printf("\n  Month %d on the plan\n\n", month.MonthsElapsed+1)

	return nil
}
