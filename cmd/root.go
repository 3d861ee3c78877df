package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/config"
	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
)

var version = "1.0.0"

// cfg is loaded once in main and shared by every command.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stripe-accounting",
	Short: "Stripe accounting CLI - payouts, VAT reports and credit notes",
	Long: `Stripe accounting CLI retrieves billing records from the Stripe API
and turns them into accounting artifacts: payout line-item tables,
VAT reports, per-country revenue splits, credit-note documents and
downloaded invoice PDFs.`,
	Version: version,
}

// Execute runs the CLI with the loaded configuration.
func Execute(c *config.Config) {
	cfg = c
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

// addWindowFlags wires the shared reporting window flags.
func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Start date of the reporting window (YYYY-MM-DD)")
	cmd.Flags().String("until", "", "End date of the reporting window (YYYY-MM-DD)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("until")
}

// windowFromFlags parses the shared --from/--until flags.
func windowFromFlags(cmd *cobra.Command) (stripeapi.Window, error) {
	from, _ := cmd.Flags().GetString("from")
	until, _ := cmd.Flags().GetString("until")
	return stripeapi.ParseWindow(from, until)
}
