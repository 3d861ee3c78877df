package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/export"
	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
	"github.com/LeakIX/stripe-accounting/internal/vat"
)

var vatCmd = &cobra.Command{
	Use:   "vat",
	Short: "VAT reports over payouts and invoices",
}

var vatReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Classify payout line items and report the VAT-relevant totals",
	Long: `Classifies every payout line item created inside the window into its
VAT category, prints the per-category totals and writes the detailed
item-level report to a CSV file.

Payouts arrive days after the transactions they settle, so the full
payout history is scanned and items are filtered on their own creation
date.`,
	RunE: runVATReport,
}

var vatPerCountryCmd = &cobra.Command{
	Use:   "per-country",
	Short: "Split paid, taxable invoice totals per customer country",
	RunE:  runVATPerCountry,
}

func init() {
	addWindowFlags(vatReportCmd)
	vatReportCmd.Flags().Bool("xlsx", false, "Also write the detailed report as an XLSX workbook")
	addWindowFlags(vatPerCountryCmd)

	vatCmd.AddCommand(vatReportCmd)
	vatCmd.AddCommand(vatPerCountryCmd)
	rootCmd.AddCommand(vatCmd)
}

func runVATReport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("vat")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}
	withXLSX, _ := cmd.Flags().GetBool("xlsx")

	client := stripeapi.NewClient(cfg.StripeSecretKey)

	// Items settle in payouts that can arrive well outside the window, so
	// the whole payout history is scanned.
	history := stripeapi.Window{From: time.Unix(0, 0), Until: time.Now()}
	payouts, err := fetchPayoutsWithItems(client, history)
	if err != nil {
		return err
	}

	var entries []export.VATDetailEntry
	for _, p := range payouts {
		for _, item := range p.Items {
			if !window.Contains(item.Created) {
				continue
			}
			report, err := vat.Classify(p, item)
			if err != nil {
				return err
			}
			entries = append(entries, export.VATDetailEntry{Payout: p, Item: item, Report: report})
		}
	}
	log.Info().Int("items", len(entries)).Msg("Payout line items classified")

	reports := make([]vat.ReportItem, 0, len(entries))
	for _, e := range entries {
		reports = append(reports, e.Report)
	}
	totals, err := vat.AggregateByCategory(reports)
	if err != nil {
		return err
	}
	export.CategoryTotalsTable(totals).RenderConsole(os.Stdout)

	detail := export.VATDetailTable(entries)
	stem := export.VATDetailFileName(window.From, window.Until)
	if err := detail.WriteCSV(stem + ".csv"); err != nil {
		return err
	}
	if withXLSX {
		if err := detail.WriteXLSX(stem + ".xlsx"); err != nil {
			return err
		}
	}
	log.Info().Str("file", stem).Msg("Detailed VAT report written")
	return nil
}

func runVATPerCountry(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("vat")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	invoices, err := client.FetchInvoices(window)
	if err != nil {
		return err
	}

	amounts, err := vat.PerCountry(invoices)
	if err != nil {
		return err
	}
	log.Info().Int("countries", len(amounts)).Msg("Per-country split computed")
	export.CountryTable(amounts).RenderConsole(os.Stdout)
	return nil
}
