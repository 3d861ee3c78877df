// Package render produces the credit-note documents: HTML from embedded
// templates, then PDF via headless Chromium.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/LeakIX/stripe-accounting/internal/config"
	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/money"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// Company is the issuer identity block printed on every credit note.
type Company struct {
	Name              string
	AddressLine1      string
	AddressLine2      string
	AddressPostalCode string
	AddressCity       string
	AddressCountry    string
	Email             string
	VATNumber         string
}

// Renderer writes credit-note HTML and PDF files.
type Renderer struct {
	company      Company
	htmlDir      string
	pdfDir       string
	chromiumPath string
	log          zerolog.Logger
}

// NewRenderer builds a renderer from the loaded configuration.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		company: Company{
			Name:              cfg.CompanyName,
			AddressLine1:      cfg.CompanyAddressLine1,
			AddressLine2:      cfg.CompanyAddressLine2,
			AddressPostalCode: cfg.CompanyAddressPostalCode,
			AddressCity:       cfg.CompanyAddressCity,
			AddressCountry:    cfg.CompanyAddressCountry,
			Email:             cfg.CompanyEmail,
			VATNumber:         cfg.CompanyVATNumber,
		},
		htmlDir:      cfg.CNHTMLOutputDirectory,
		pdfDir:       cfg.CNPDFOutputDirectory,
		chromiumPath: cfg.ChromiumPath,
		log:          logger.WithComponent("render"),
	}
}

// Emit renders the credit note to HTML, writes it, and prints it to PDF.
func (r *Renderer) Emit(ctx context.Context, note models.GeneratedCreditNote) error {
	html, err := r.RenderHTML(note)
	if err != nil {
		return fmt.Errorf("render credit note %s: %w", note.Number, err)
	}

	base := note.DocumentBaseName()
	htmlPath := filepath.Join(r.htmlDir, base+".html")
	r.log.Info().Str("file", htmlPath).Msg("Dumping HTML")
	if err := os.WriteFile(htmlPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("write %s: %w", htmlPath, err)
	}

	r.log.Info().Str("credit_note", note.Number).Msg("Generating PDF using headless Chromium")
	pdf, err := r.printPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("print credit note %s to PDF: %w", note.Number, err)
	}
	pdfPath := filepath.Join(r.pdfDir, base+".pdf")
	if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
		return fmt.Errorf("write %s: %w", pdfPath, err)
	}
	r.log.Info().Str("file", pdfPath).Msg("PDF written")
	return nil
}

// RenderHTML fills the taxable or non-taxable template for the note.
func (r *Renderer) RenderHTML(note models.GeneratedCreditNote) (string, error) {
	name := "credit_note_without_tax"
	text := creditNoteWithoutTaxTemplate
	if note.IsTaxable() {
		name = "credit_note_with_tax"
		text = creditNoteWithTaxTemplate
		r.log.Info().
			Str("invoice", note.InvoiceNumber).
			Msg("Invoice is taxable, using the taxed template")
	}
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"money": func(m money.Money) string {
			return m.Currency.Symbol + m.String()
		},
		"moneyptr": func(m *money.Money) string {
			if m == nil {
				return ""
			}
			return m.Currency.Symbol + m.String()
		},
	}).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Note      models.GeneratedCreditNote
		Company   Company
		IssueDate string
	}{
		Note:      note,
		Company:   r.company,
		IssueDate: note.IssueDate.Format("January 02, 2006"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
