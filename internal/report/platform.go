// Package report posts subscription lifecycle reports to a reporting
// platform (stdout or a Mattermost webhook).
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/LeakIX/stripe-accounting/pkg/models"
)

// Platform delivers report lines somewhere.
type Platform interface {
	// Post delivers every line of one report.
	Post(lines []string) error
}

// Lines formats a subscription event into report lines.
func Lines(e models.SubscriptionEvent) []string {
	when := e.OccurredAt.Format("2006-01-02 15:04:05")
	switch e.Kind {
	case models.SubscriptionCreated:
		return []string{fmt.Sprintf("Customer %s has created a subscription on %s", e.CustomerEmail, when)}
	default:
		return []string{fmt.Sprintf("Customer %s has canceled the subscription on %s", e.CustomerEmail, when)}
	}
}

// Stdout prints report lines to standard output.
type Stdout struct{}

func (Stdout) Post(lines []string) error {
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

// Mattermost posts report lines to an incoming webhook.
type Mattermost struct {
	URL    string
	Client *http.Client
}

func (m Mattermost) Post(lines []string) error {
	client := m.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	for _, line := range lines {
		payload, err := json.Marshal(map[string]string{"text": line})
		if err != nil {
			return err
		}
		resp, err := client.Post(m.URL, "application/json", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("post to Mattermost: %w", err)
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("post to Mattermost: unexpected status %s", resp.Status)
		}
	}
	return nil
}

// ForName resolves a platform by name. Mattermost requires a configured
// webhook URL.
func ForName(name, mattermostURL string) (Platform, error) {
	switch name {
	case "stdout":
		return Stdout{}, nil
	case "mattermost":
		if mattermostURL == "" {
			return nil, fmt.Errorf("MATTERMOST_URL is required for the mattermost platform")
		}
		return Mattermost{URL: mattermostURL}, nil
	default:
		return nil, fmt.Errorf("%s is not a valid reporting platform. Available platforms are stdout, mattermost", name)
	}
}
