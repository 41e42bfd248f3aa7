package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/config"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/store"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "timeworth",
	Short: "Price your spending in work hours",
	Long: "timeworth converts every saving and spending into the working time\n" +
		"it is worth at retirement, and tracks how far your estimated\n" +
		"retirement age has drifted from the plan.",
	RunE: runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default XDG data home)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig loads config, returning defaults on error. Commands always
// have a usable config even when the file on disk is corrupted.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		}
		return config.DefaultConfig()
	}
	return cfg
}

// openStore opens the local database, honoring --data-dir over the
// config override over the XDG default.
func openStore(cfg config.Config) (*store.Store, error) {
	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}
	return store.Open(filepath.Join(dir, "timeworth.db"))
}

// requireProfile loads the profile or explains how to create one.
func requireProfile(st *store.Store) (model.Profile, error) {
	p, err := st.LoadProfile()
	if errors.Is(err, store.ErrNoProfile) {
		return p, errors.New("no profile yet — create one with: timeworth profile init")
	}
	return p, err
}

func currencySymbol(cfg config.Config) string {
	if cfg.General.CurrencySymbol == "" {
		return "$"
	}
	return cfg.General.CurrencySymbol
}
