package stripeapi

import (
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/customer"
	"github.com/stripe/stripe-go/v74/event"

	"github.com/LeakIX/stripe-accounting/pkg/models"
)

const (
	eventSubscriptionCreated = "customer.subscription.created"
	eventSubscriptionDeleted = "customer.subscription.deleted"
	eventSubscriptionPaused  = "customer.subscription.paused"
)

// FetchSubscriptionEvents returns recent subscription lifecycle events of
// the requested kind. Canceled covers both deleted and paused
// subscriptions.
func (c *Client) FetchSubscriptionEvents(kind models.SubscriptionEventKind) ([]models.SubscriptionEvent, error) {
	switch kind {
	case models.SubscriptionCreated:
		return c.fetchEvents(kind, eventSubscriptionCreated)
	case models.SubscriptionCanceled:
		deleted, err := c.fetchEvents(kind, eventSubscriptionDeleted)
		if err != nil {
			return nil, err
		}
		paused, err := c.fetchEvents(kind, eventSubscriptionPaused)
		if err != nil {
			return nil, err
		}
		return append(paused, deleted...), nil
	default:
		return nil, fmt.Errorf("unknown subscription event kind: %s", kind)
	}
}

func (c *Client) fetchEvents(kind models.SubscriptionEventKind, eventType string) ([]models.SubscriptionEvent, error) {
	const op = "FetchSubscriptionEvents"

	params := &stripe.EventListParams{
		Type: stripe.String(eventType),
	}
	params.Limit = stripe.Int64(pageLimit)
	var events []models.SubscriptionEvent
	iter := event.List(params)
	for iter.Next() {
		raw := iter.Event()
		customerID, _ := raw.Data.Object["customer"].(string)
		if customerID == "" {
			return nil, retrievalErr(op, raw.ID,
				fmt.Errorf("%w: event has no customer", ErrMissingRequiredField))
		}
		cust, err := customer.Get(customerID, nil)
		if err != nil {
			return nil, retrievalErr(op, customerID, err)
		}
		events = append(events, models.SubscriptionEvent{
			Kind:          kind,
			CustomerEmail: cust.Email,
			OccurredAt:    time.Unix(raw.Created, 0),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, retrievalErr(op, "", err)
	}
	return events, nil
}
