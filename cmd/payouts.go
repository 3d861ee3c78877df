package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/export"
	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

var payoutsCmd = &cobra.Command{
	Use:   "payouts",
	Short: "Inspect and export Stripe payouts",
}

var payoutsPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the line items of every payout in the window",
	RunE:  runPayoutsPrint,
}

var payoutsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one CSV per payout in the window",
	RunE:  runPayoutsExport,
}

func init() {
	addWindowFlags(payoutsPrintCmd)
	addWindowFlags(payoutsExportCmd)
	payoutsExportCmd.Flags().Bool("xlsx", false, "Also write an XLSX workbook per payout")

	payoutsCmd.AddCommand(payoutsPrintCmd)
	payoutsCmd.AddCommand(payoutsExportCmd)
	rootCmd.AddCommand(payoutsCmd)
}

func runPayoutsPrint(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("payouts")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	payouts, err := fetchPayoutsWithItems(client, window)
	if err != nil {
		return err
	}

	log.Info().Int("payouts", len(payouts)).Msg("Printing payout line items")
	for _, p := range payouts {
		fmt.Printf("Payout %s, arrived %s, %s\n", p.ID, p.ArrivalDate.Format("2006-01-02"), p.Amount.String())
		export.PayoutItemsTable(p).RenderConsole(os.Stdout)
		fmt.Println()
	}
	return nil
}

func runPayoutsExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("payouts")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}
	withXLSX, _ := cmd.Flags().GetBool("xlsx")

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	payouts, err := fetchPayoutsWithItems(client, window)
	if err != nil {
		return err
	}

	for _, p := range payouts {
		table := export.PayoutItemsTable(p)
		stem := export.PayoutFileName(p)
		if err := table.WriteCSV(stem + ".csv"); err != nil {
			return err
		}
		if withXLSX {
			if err := table.WriteXLSX(stem + ".xlsx"); err != nil {
				return err
			}
		}
		log.Info().Str("payout_id", p.ID).Str("file", stem).Msg("Payout exported")
	}
	return nil
}

// fetchPayoutsWithItems retrieves the payouts of the window with their line
// items and, where possible, the related invoices.
func fetchPayoutsWithItems(client *stripeapi.Client, window stripeapi.Window) ([]*models.Payout, error) {
	log := logger.WithComponent("payouts")

	payouts, err := client.FetchPayouts(window)
	if err != nil {
		return nil, err
	}
	for _, p := range payouts {
		if err := client.FetchPayoutItems(p); err != nil {
			return nil, err
		}
		for i := range p.Items {
			if err := client.ResolveRelatedInvoice(&p.Items[i]); err != nil {
				log.Warn().
					Err(err).
					Str("payout_id", p.ID).
					Str("item", p.Items[i].Description).
					Msg("Could not resolve the related invoice")
			}
		}
	}
	return payouts, nil
}
