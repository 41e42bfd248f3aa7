package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timeworthapp/timeworth/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to timeworth!")
	fmt.Println()

	// 1. Currency symbol
	fmt.Println("  1. Currency symbol")
	fmt.Printf("     Current: %s\n", cfg.General.CurrencySymbol)
	fmt.Print("     > ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol != "" {
		cfg.General.CurrencySymbol = symbol
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (use your terminal's palette)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	// 3. Remote sheet sync (optional)
	fmt.Println("  3. Remote sheet sync (optional)")
	fmt.Println("     Endpoint URL of your sheet API. Leave blank to keep")
	fmt.Println("     everything local.")
	if cfg.Sync.Endpoint != "" {
		fmt.Printf("     Current: %s\n", cfg.Sync.Endpoint)
	}
	fmt.Print("     > ")
	endpoint, _ := reader.ReadString('\n')
	endpoint = strings.TrimSpace(endpoint)
	if endpoint != "" {
		cfg.Sync.Endpoint = endpoint

		fmt.Println()
		fmt.Println("     API token for the endpoint (or set TIMEWORTH_SYNC_TOKEN)")
		if cfg.Sync.APIToken != "" {
			fmt.Printf("     Current: %s\n", maskToken(cfg.Sync.APIToken))
		}
		fmt.Print("     > ")
		token, _ := reader.ReadString('\n')
		token = strings.TrimSpace(token)
		if token != "" {
			cfg.Sync.APIToken = token
		}
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("  Config written to %s\n", config.ConfigPath())
	fmt.Println()

	// 4. Profile
	fmt.Print("  Create your financial profile now? (Y/n) > ")
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) == "n" {
		fmt.Println("  Later: timeworth profile init")
		fmt.Println()
		return nil
	}
	fmt.Println()

	return runProfileInit(nil, nil)
}

func maskToken(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", 4) + s[len(s)-4:]
}
