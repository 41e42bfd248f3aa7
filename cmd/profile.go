package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/finance"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/store"
	"github.com/timeworthapp/timeworth/internal/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your financial plan",
	RunE:  runProfileShow,
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or rebuild the profile interactively",
	RunE:  runProfileInit,
}

var profileSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one profile field",
	Long: "Fields: age, salary, retire-age, current-savings, monthly-savings,\n" +
		"inflation, roi.\n\n" +
		"Changing the profile only affects future records; already-recorded\n" +
		"time costs keep the rates in effect when they were added.",
	Args: cobra.ExactArgs(2),
	RunE: runProfileSet,
}

func init() {
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
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

	sym := currencySymbol(cfg)
	realRate := finance.RealRate(profile.InflationRatePercent, profile.ROIRatePercent)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Profile",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Age", strconv.Itoa(profile.Age)},
			{"Monthly salary", sym + cli.FormatCurrency(profile.MonthlySalary)},
			{"Target retire age", strconv.Itoa(profile.TargetRetireAge)},
			{"Current savings", sym + cli.FormatCurrency(profile.CurrentSavings)},
			{"Monthly savings", sym + cli.FormatCurrency(profile.MonthlySavings)},
			{"Inflation / year", cli.FormatPercent(profile.InflationRatePercent / 100)},
			{"Return / year", cli.FormatPercent(profile.ROIRatePercent / 100)},
			{"Hourly rate", sym + cli.FormatCurrency(finance.HourlyRate(profile.MonthlySalary))},
			{"Real rate", cli.FormatPercent(realRate)},
		},
	}))
	fmt.Println()

	return nil
}

func runProfileInit(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	existing, err := st.LoadProfile()
	if err != nil && !errors.Is(err, store.ErrNoProfile) {
		return err
	}

	form := tui.NewProfileForm(existing)
	if err := form.Form.Run(); err != nil {
		return err
	}

	profile, err := form.Profile(existing, time.Now())
	if err != nil {
		return err
	}
	if err := st.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("  Profile saved.")
	return nil
}

func runProfileSet(_ *cobra.Command, args []string) error {
	field, value := args[0], args[1]

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

	if err := setProfileField(&profile, field, value); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := st.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("  Set %s to %s\n", field, value)
	return nil
}

func setProfileField(p *model.Profile, field, value string) error {
	parseF := func(dst *float64) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number, got %q", field, value)
		}
		*dst = f
		return nil
	}
	parseI := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a whole number, got %q", field, value)
		}
		*dst = n
		return nil
	}

	switch field {
	case "age":
		return parseI(&p.Age)
	case "salary":
		return parseF(&p.MonthlySalary)
	case "retire-age":
		return parseI(&p.TargetRetireAge)
	case "current-savings":
		return parseF(&p.CurrentSavings)
	case "monthly-savings":
		return parseF(&p.MonthlySavings)
	case "inflation":
		return parseF(&p.InflationRatePercent)
	case "roi":
		return parseF(&p.ROIRatePercent)
	default:
		return fmt.Errorf("unknown field %q (see: timeworth profile set --help)", field)
	}
}
