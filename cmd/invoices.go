package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Inspect and download Stripe invoices",
}

var invoicesDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the PDFs of finalized invoices created in the window",
	RunE:  runInvoicesDownload,
}

func init() {
	addWindowFlags(invoicesDownloadCmd)

	invoicesCmd.AddCommand(invoicesDownloadCmd)
	rootCmd.AddCommand(invoicesCmd)
}

func runInvoicesDownload(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoices")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	invoices, err := client.FetchInvoices(window)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(invoices)).Str("directory", cfg.DownloadDirectory).Msg("Downloading invoices")
	return stripeapi.NewDownloader(cfg.DownloadDirectory).DownloadInvoices(cmd.Context(), invoices)
}
