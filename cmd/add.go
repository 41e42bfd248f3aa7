package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/config"
	"github.com/timeworthapp/timeworth/internal/finance"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/sync"
)

var (
	flagAddSave      bool
	flagAddRecurring bool
	flagAddCategory  string
	flagAddNote      string
	flagAddAt        string
	flagAddPreview   bool
)

var addCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Record a spending (or saving) and its work-time price",
	Long: "Records an amount and freezes its time cost: the working hours the\n" +
		"money would have been worth at retirement had it stayed invested.\n" +
		"Recurring amounts repeat monthly until ended with 'records end'.",
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().BoolVar(&flagAddSave, "save", false, "Record a saving instead of a spending")
	addCmd.Flags().BoolVarP(&flagAddRecurring, "recurring", "r", false, "Repeats monthly until ended")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category label")
	addCmd.Flags().StringVar(&flagAddNote, "note", "", "Free-form note")
	addCmd.Flags().StringVar(&flagAddAt, "at", "", "Backdate the record (YYYY-MM-DD)")
	addCmd.Flags().BoolVar(&flagAddPreview, "preview", false, "Show the time cost without recording")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		return fmt.Errorf("amount must be a positive number, got %q", args[0])
	}

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

	hourlyRate := finance.HourlyRate(profile.MonthlySalary)
	realRate := finance.RealRate(profile.InflationRatePercent, profile.ROIRatePercent)
	hours := finance.TimeCost(amount, flagAddRecurring, hourlyRate, realRate, profile.YearsToRetire())

	kind := model.KindSpend
	if flagAddSave {
		kind = model.KindSave
	}

	ht := finance.FormatTime(hours)
	costStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.SeverityColor(ht.Tier))
	sym := currencySymbol(cfg)

	label := "costs"
	if kind == model.KindSave {
		label = "banks"
	}
	suffix := ""
	if flagAddRecurring {
		suffix = "/month"
	}
	fmt.Printf("  %s%s%s %s %s of working time\n",
		sym, cli.FormatCurrency(amount), suffix, label, costStyle.Render(cli.FormatTimeCost(hours)))

	if flagAddPreview {
		return nil
	}

	rec := model.NewRecord(kind, amount, flagAddRecurring, hours)
	rec.Category = flagAddCategory
	rec.Note = flagAddNote
	if flagAddAt != "" {
		at, err := time.ParseInLocation("2006-01-02", flagAddAt, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		rec.Timestamp = at.UTC()
	}

	if err := st.InsertRecord(rec); err != nil {
		return err
	}
	fmt.Printf("  Recorded %s\n", rec.ID)

	pushRecordBestEffort(cfg, rec)
	return nil
}

// pushRecordBestEffort mirrors a new record to the remote sheet when
// sync is configured. Failures are logged and ignored; 'timeworth sync'
// catches the row up later via the change watermark.
func pushRecordBestEffort(cfg config.Config, rec model.Record) {
	client := syncClient(cfg)
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := client.Push(ctx, []sync.Row{sync.RowFromRecord(rec)}); err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Sync deferred: %v\n", err)
		}
	}
}
