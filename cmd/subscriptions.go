package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LeakIX/stripe-accounting/internal/logger"
	"github.com/LeakIX/stripe-accounting/internal/report"
	"github.com/LeakIX/stripe-accounting/internal/stripeapi"
	"github.com/LeakIX/stripe-accounting/pkg/models"
)

var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "Report subscription lifecycle events",
}

var subscriptionsReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Post created or canceled subscriptions to a reporting platform",
	RunE:  runSubscriptionsReport,
}

func init() {
	subscriptionsReportCmd.Flags().String("kind", "created", "Event kind to report: created or canceled")
	subscriptionsReportCmd.Flags().String("platform", "stdout", "Reporting platform: stdout or mattermost")

	subscriptionsCmd.AddCommand(subscriptionsReportCmd)
	rootCmd.AddCommand(subscriptionsCmd)
}

func runSubscriptionsReport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("subscriptions")
	kindFlag, _ := cmd.Flags().GetString("kind")
	platformName, _ := cmd.Flags().GetString("platform")

	var kind models.SubscriptionEventKind
	switch kindFlag {
	case "created":
		kind = models.SubscriptionCreated
	case "canceled":
		kind = models.SubscriptionCanceled
	default:
		return fmt.Errorf("%s is not a valid event kind. Available kinds are created, canceled", kindFlag)
	}

	platform, err := report.ForName(platformName, cfg.MattermostURL)
	if err != nil {
		return err
	}

	client := stripeapi.NewClient(cfg.StripeSecretKey)
	events, err := client.FetchSubscriptionEvents(kind)
	if err != nil {
		return err
	}
	log.Info().Int("events", len(events)).Str("platform", platformName).Msg("Posting subscription report")

	for _, e := range events {
		if err := platform.Post(report.Lines(e)); err != nil {
			return err
		}
	}
	return nil
}
