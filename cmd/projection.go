package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/finance"
	"github.com/timeworthapp/timeworth/internal/gps"
)

var flagProjTarget float64

// unreachableYears marks a solver result pinned at the search ceiling:
// the target cannot be reached within a working lifetime.
const unreachableYears = 99.5

var projectionCmd = &cobra.Command{
	Use:   "projection",
	Short: "Project your savings against the retirement fund",
	RunE:  runProjection,
}

func init() {
	projectionCmd.Flags().Float64VarP(&flagProjTarget, "target", "t", 0, "Override the target amount")
	rootCmd.AddCommand(projectionCmd)
}

func runProjection(_ *cobra.Command, _ []string) error {
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

	realRate := finance.RealRate(profile.InflationRatePercent, profile.ROIRatePercent)
	target := flagProjTarget
	if target <= 0 {
		target = gps.TargetFund(profile)
	}

	years := finance.YearsToTarget(profile.CurrentSavings, profile.MonthlySavings, target, realRate)
	required := finance.RequiredMonthlySavings(profile.CurrentSavings, target, profile.YearsToRetire(), realRate)
	sym := currencySymbol(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTION"))
	fmt.Println()
	fmt.Printf("  Target fund:        %s%s\n", sym, cli.FormatCurrency(target))
	fmt.Printf("  Current savings:    %s%s\n", sym, cli.FormatCurrency(profile.CurrentSavings))
	fmt.Printf("  Monthly savings:    %s%s\n", sym, cli.FormatCurrency(profile.MonthlySavings))
	fmt.Printf("  Real annual rate:   %s\n", cli.FormatPercent(realRate))
	fmt.Println()

	if years >= unreachableYears {
		fmt.Println("  At this savings rate the target is not reachable within a century.")
	} else {
		fmt.Printf("  Years to target:    %.2f (around age %.0f)\n", years, float64(profile.Age)+years)
	}
	fmt.Printf("  Required monthly savings to hit the target by %d: %s%s\n\n",
		profile.TargetRetireAge, sym, cli.FormatCurrency(required))

	return nil
}
