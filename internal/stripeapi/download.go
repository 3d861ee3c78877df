package stripeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// Downloader fetches invoice and credit-note PDFs from the links Stripe
// returns, with a fixed-size worker pool.
type Downloader struct {
	dir     string
	client  *http.Client
	workers int
	log     zerolog.Logger
}

// NewDownloader writes PDFs into dir using NumCPU-1 workers (at least one).
func NewDownloader(dir string) *Downloader {
	workers := runtime.NumCPU() - 1
	if workers < 1 {
		workers = 1
	}
	return &Downloader{
		dir:     dir,
		client:  &http.Client{Timeout: 2 * time.Minute},
		workers: workers,
		log:     logger.WithComponent("download"),
	}
}

type downloadJob struct {
	name string
	url  string
}

// DownloadInvoices fetches the PDFs of all finalized invoices. Drafts and
// invoices without a PDF link are skipped. Download order is unspecified.
func (d *Downloader) DownloadInvoices(ctx context.Context, invoices []*models.Invoice) error {
	var jobs []downloadJob
	for _, inv := range invoices {
		if inv.IsDraft() || inv.PDFLink == "" || inv.FinalizedAt == nil {
			continue
		}
		jobs = append(jobs, downloadJob{name: inv.DocumentName(), url: inv.PDFLink})
	}
	return d.run(ctx, jobs)
}

// DownloadCreditNotes fetches the PDFs of Stripe-emitted credit notes.
// Notes without a PDF link are skipped.
func (d *Downloader) DownloadCreditNotes(ctx context.Context, notes []models.CreditNoteMeta) error {
	var jobs []downloadJob
	for _, note := range notes {
		if note.PDFLink == "" {
			continue
		}
		jobs = append(jobs, downloadJob{name: note.DocumentName(), url: note.PDFLink})
	}
	return d.run(ctx, jobs)
}

func (d *Downloader) run(ctx context.Context, jobs []downloadJob) error {
	if len(jobs) == 0 {
		d.log.Info().Msg("Nothing to download")
		return nil
	}
	d.log.Info().Int("count", len(jobs)).Int("workers", d.workers).Msg("Downloading PDFs")

	jobCh := make(chan downloadJob)
	errCh := make(chan error, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if err := d.fetch(ctx, job); err != nil {
					d.log.Error().Err(err).Str("file", job.name).Msg("Download failed")
					errCh <- err
					continue
				}
				d.log.Info().Str("file", job.name).Msg("Downloaded")
			}
		}()
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()
	close(errCh)

	var failed int
	for range errCh {
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(jobs))
	}
	return nil
}

func (d *Downloader) fetch(ctx context.Context, job downloadJob) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, job.url, nil)
	if err != nil {
		return err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s for %s", resp.Status, job.url)
	}
	path := filepath.Join(d.dir, job.name+".pdf")
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	return nil
}
