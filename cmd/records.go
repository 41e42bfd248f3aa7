package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/store"
)

var (
	flagRecMonth    string
	flagRecKind     string
	flagRecCategory string
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List tracked savings and spendings",
	RunE:  runRecords,
}

var recordsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsRm,
}

var recordsEndCmd = &cobra.Command{
	Use:   "end <id>",
	Short: "End a recurring record as of now",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordsEnd,
}

func init() {
	recordsCmd.Flags().StringVarP(&flagRecMonth, "month", "m", "", "Filter to a month (YYYY-MM)")
	recordsCmd.Flags().StringVarP(&flagRecKind, "kind", "k", "", "Filter by kind (save or spend)")
	recordsCmd.Flags().StringVarP(&flagRecCategory, "category", "c", "", "Filter by category")
	recordsCmd.AddCommand(recordsRmCmd)
	recordsCmd.AddCommand(recordsEndCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var records []model.Record
	if flagRecMonth != "" {
		month, err := time.ParseInLocation("2006-01", flagRecMonth, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --month: %w", err)
		}
		records, err = st.RecordsInMonth(month)
		if err != nil {
			return err
		}
	} else {
		if records, err = st.ListRecords(); err != nil {
			return err
		}
	}

	var kindFilter model.RecordKind
	if flagRecKind != "" {
		if kindFilter, err = model.ParseKind(flagRecKind); err != nil {
			return err
		}
	}

	sym := currencySymbol(cfg)
	rows := [][]string{}
	// Newest first for display; the store returns oldest first.
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if kindFilter != "" && r.Kind != kindFilter {
			continue
		}
		if flagRecCategory != "" && r.Category != flagRecCategory {
			continue
		}

		recur := ""
		if r.Recurring {
			recur = "monthly"
			if !r.EndedAt.IsZero() {
				recur = "ended " + r.EndedAt.Local().Format("2006-01-02")
			}
		}

		rows = append(rows, []string{
			shortID(r.ID),
			r.Timestamp.Local().Format("2006-01-02"),
			string(r.Kind),
			recur,
			r.Category,
			sym + cli.FormatCurrency(r.Amount),
			cli.FormatTimeCost(r.TimeCostHours),
		})
	}

	if len(rows) == 0 {
		fmt.Println("  No matching records.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Records (%d)", len(rows)),
		Headers: []string{"ID", "Date", "Kind", "Recurring", "Category", "Amount", "Time cost"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runRecordsRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := resolveID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteRecord(id); err != nil {
		return err
	}
	fmt.Printf("  Deleted %s\n", id)
	return nil
}

func runRecordsEnd(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := resolveID(st, args[0])
	if err != nil {
		return err
	}
	if err := st.EndRecurring(id, time.Now()); err != nil {
		return err
	}
	fmt.Printf("  Ended recurring %s — future months no longer accrue\n", id)
	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// resolveID accepts a full UUID or the 8-char prefix shown in listings.
func resolveID(st *store.Store, s string) (uuid.UUID, error) {
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}

	records, err := st.ListRecords()
	if err != nil {
		return uuid.Nil, err
	}

	var match uuid.UUID
	count := 0
	for _, r := range records {
		if len(s) >= 4 && len(s) <= 36 && r.ID.String()[:len(s)] == s {
			match = r.ID
			count++
		}
	}
	switch count {
	case 0:
		return uuid.Nil, fmt.Errorf("no record matches id %q", s)
	case 1:
		return match, nil
	default:
		return uuid.Nil, fmt.Errorf("id %q is ambiguous (%d matches)", s, count)
	}
}
