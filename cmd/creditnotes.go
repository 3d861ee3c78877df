package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/creditnote"
	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/internal/render"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
)

var creditnotesCmd = &cobra.Command{
	Use:   "creditnotes",
	Short: "Emit and download credit notes",
}

var creditnotesEmitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Emit numbered credit-note documents for the window",
	Long: `Selects the invoices of the window that need a credit note (voided,
uncollectible, disputed, refunded, those Stripe already credited and
optionally the still-open ones), assigns sequential credit-note
numbers and renders one HTML and one PDF document per invoice.

Numbers follow S<YY><CC>1-<NNNN>, where YY is the issue year and CC
the internal currency index. Pass --skip to exclude invoice numbers
already handled in a previous run, either one by one or as ranges
like "PFX-0010:PFX-0020".`,
	RunE: runCreditNotesEmit,
}

var creditnotesEmitOneCmd = &cobra.Command{
	Use:   "emit-one",
	Short: "Emit a single credit note for one invoice number",
	RunE:  runCreditNotesEmitOne,
}

var creditnotesDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the PDFs of credit notes Stripe issued in the window",
	RunE:  runCreditNotesDownload,
}

func init() {
	addWindowFlags(creditnotesEmitCmd)
	creditnotesEmitCmd.Flags().Int("first-index", 1, "Sequence index of the first emitted credit note")
	creditnotesEmitCmd.Flags().String("currency", "EUR", "ISO code of the currency to select invoices in")
	creditnotesEmitCmd.Flags().String("issue-date", "", "Issue date of the emitted credit notes (YYYY-MM-DD, defaults to today)")
	creditnotesEmitCmd.Flags().Bool("include-open", false, "Also emit credit notes for still-open invoices")
	creditnotesEmitCmd.Flags().String("skip", "", "Comma-separated invoice numbers or FIRST:LAST ranges to skip")

	creditnotesEmitOneCmd.Flags().String("invoice", "", "Number of the invoice to credit")
	creditnotesEmitOneCmd.Flags().Int("index", 1, "Sequence index of the emitted credit note")
	creditnotesEmitOneCmd.Flags().String("issue-date", "", "Issue date of the credit note (YYYY-MM-DD, defaults to today)")
	creditnotesEmitOneCmd.MarkFlagRequired("invoice")

	addWindowFlags(creditnotesDownloadCmd)

	creditnotesCmd.AddCommand(creditnotesEmitCmd)
	creditnotesCmd.AddCommand(creditnotesEmitOneCmd)
	creditnotesCmd.AddCommand(creditnotesDownloadCmd)
	rootCmd.AddCommand(creditnotesCmd)
}

func runCreditNotesEmit(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("creditnotes")
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}
	firstIndex, _ := cmd.Flags().GetInt("first-index")
	currencyISO, _ := cmd.Flags().GetString("currency")
	includeOpen, _ := cmd.Flags().GetBool("include-open")
	skipSpec, _ := cmd.Flags().GetString("skip")
	issueDate, err := issueDateFromFlags(cmd)
	if err != nil {
		return err
	}

	currency, err := money.LookupCurrency(currencyISO)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	input, err := buildSelectionInput(client, window)
	if err != nil {
		return err
	}

	skip := creditnote.ParseSkipList(skipSpec, log)
	candidates, err := creditnote.SelectCandidates(input, currencyISO, includeOpen, skip)
	if err != nil {
		return err
	}
	for _, c := range candidates {
		log.Info().
			Str("invoice", c.Invoice.Number).
			Str("reason", string(c.Reason)).
			Msg("Invoice selected for credit note")
	}

	notes := creditnote.AssignNumbers(candidates, firstIndex, issueDate, currency)
	renderer := render.NewRenderer(cfg)
	for _, note := range notes {
		if err := renderer.Emit(cmd.Context(), note); err != nil {
			return err
		}
	}
	log.Info().Int("count", len(notes)).Msg("Credit notes emitted")
	return nil
}

func runCreditNotesEmitOne(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("creditnotes")
	invoiceNumber, _ := cmd.Flags().GetString("invoice")
	index, _ := cmd.Flags().GetInt("index")
	issueDate, err := issueDateFromFlags(cmd)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	inv, err := client.ResolveInvoiceByNumber(invoiceNumber)
	if err != nil {
		return err
	}

	number := creditnote.FormatNumber(issueDate, inv.Currency, index)
	note := creditnote.NewGeneratedCreditNote(inv, number, issueDate)
	if err := render.NewRenderer(cfg).Emit(cmd.Context(), note); err != nil {
		return err
	}
	log.Info().
		Str("invoice", inv.Number).
		Str("credit_note", number).
		Msg("Credit note emitted")
	return nil
}

func runCreditNotesDownload(cmd *cobra.Command, args []string) error {
	window, err := windowFromFlags(cmd)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	notes, err := client.FetchCreditNotes(window)
	if err != nil {
		return err
	}
	return stripeapi.NewDownloader(cfg.DownloadDirectory).DownloadCreditNotes(cmd.Context(), notes)
}

// buildSelectionInput retrieves the four collections the candidate selection
// works over.
func buildSelectionInput(client *stripeapi.Client, window stripeapi.Window) (creditnote.SelectionInput, error) {
	var input creditnote.SelectionInput

	invoices, err := client.FetchInvoices(window)
	if err != nil {
		return input, err
	}
	input.Invoices = invoices

	stripeNotes, err := client.FetchCreditNotes(window)
	if err != nil {
		return input, err
	}
	for _, meta := range stripeNotes {
		if meta.InvoiceID == "" {
			continue
		}
		inv, err := client.ResolveInvoiceByID(meta.InvoiceID)
		if err != nil {
			return input, err
		}
		input.StripeEmitted = append(input.StripeEmitted, inv)
	}

	disputes, err := client.FetchDisputes(window)
	if err != nil {
		return input, err
	}
	for _, d := range disputes {
		input.Disputed = append(input.Disputed, d.Invoice)
	}

	// Every refund in the window feeds the selection, whatever its status:
	// refunds are the catch-all for credit notes forgotten elsewhere, and
	// the selector deduplicates them against the other sources anyway.
	refunds, err := client.FetchRefunds(window)
	if err != nil {
		return input, err
	}
	for _, r := range refunds {
		input.Refunded = append(input.Refunded, r.Invoice)
	}
	return input, nil
}

func issueDateFromFlags(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("issue-date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	issueDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid issue date %q: %w", raw, err)
	}
	return issueDate, nil
}
