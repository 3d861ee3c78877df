package config

import (
	"fmt"
	"os"

	"github.com/LeakIX/stripe-accounting/internal/logger"
)

// Config carries everything the CLI reads from the environment: the Stripe
// key, output directories, the company identity printed on credit notes,
// and logging settings.
type Config struct {
	// Stripe Configuration
	StripeSecretKey string

	// Output directories
	DownloadDirectory     string
	CNHTMLOutputDirectory string
	CNPDFOutputDirectory  string

	// Company identity rendered on emitted credit notes
	CompanyName              string
	CompanyAddressLine1      string
	CompanyAddressLine2      string
	CompanyAddressPostalCode string
	CompanyAddressCity       string
	CompanyAddressCountry    string
	CompanyEmail             string
	CompanyVATNumber         string

	// Reporting platform configuration
	MattermostURL string

	// Optional: path to a Chromium binary for PDF printing
	ChromiumPath string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		StripeSecretKey:          getEnv("STRIPE_SECRET_KEY", ""),
		DownloadDirectory:        getEnv("DOWNLOAD_DIRECTORY", "downloads"),
		CNHTMLOutputDirectory:    getEnv("CN_HTML_OUTPUT_DIRECTORY", "credit-notes/html"),
		CNPDFOutputDirectory:     getEnv("CN_PDF_OUTPUT_DIRECTORY", "credit-notes/pdf"),
		CompanyName:              getEnv("COMPANY_NAME", ""),
		CompanyAddressLine1:      getEnv("COMPANY_ADDRESS_LINE_1", ""),
		CompanyAddressLine2:      getEnv("COMPANY_ADDRESS_LINE_2", ""),
		CompanyAddressPostalCode: getEnv("COMPANY_ADDRESS_POSTAL_CODE", ""),
		CompanyAddressCity:       getEnv("COMPANY_ADDRESS_CITY", ""),
		CompanyAddressCountry:    getEnv("COMPANY_ADDRESS_COUNTRY", ""),
		CompanyEmail:             getEnv("COMPANY_EMAIL", ""),
		CompanyVATNumber:         getEnv("COMPANY_VAT_NUMBER", ""),
		MattermostURL:            getEnv("MATTERMOST_URL", ""),
		ChromiumPath:             getEnv("CHROMIUM_PATH", ""),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:            getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:                getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return nil
}

// EnsureDirectories creates the output directories when missing.
func (c *Config) EnsureDirectories() error {
	log := logger.WithComponent("config")
	for _, d := range []string{c.DownloadDirectory, c.CNHTMLOutputDirectory, c.CNPDFOutputDirectory} {
		if _, err := os.Stat(d); os.IsNotExist(err) {
			log.Info().Str("directory", d).Msg("Directory does not exist, creating it")
			if err := os.MkdirAll(d, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", d, err)
			}
		}
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
