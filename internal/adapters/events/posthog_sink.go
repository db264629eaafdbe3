package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsevents "github.com/agarrido2001/XaveMarket/internal/core/ports/events"
)

// PostHogConfig configures product analytics capture.
type PostHogConfig struct {
	APIKey   string
	Endpoint string
}

// captureClient is the part of posthog.Client the sink uses.
type captureClient interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// PostHogSink records purchases and listing changes as analytics events.
// Buyers are the distinct id for purchases, collections for listings.
type PostHogSink struct {
	client captureClient
	logger *slog.Logger
}

var _ portsevents.Sink = (*PostHogSink)(nil)

// NewPostHogSink returns nil when no API key is configured.
func NewPostHogSink(cfg PostHogConfig, logger *slog.Logger) (*PostHogSink, error) {
	if cfg.APIKey == "" {
		logger.Warn("PostHog API key is empty, analytics capture disabled")
		return nil, nil
	}
	client, err := posthog.NewWithConfig(cfg.APIKey, posthog.Config{Endpoint: cfg.Endpoint})
	if err != nil {
		return nil, fmt.Errorf("posthog client: %w", err)
	}
	return &PostHogSink{client: client, logger: logger}, nil
}

func (s *PostHogSink) capture(distinctID, event string, props posthog.Properties) error {
	if err := s.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	}); err != nil {
		return fmt.Errorf("posthog enqueue %s: %w", event, err)
	}
	return nil
}

func (s *PostHogSink) ListingChanged(_ context.Context, ev domain.ListingChanged) error {
	props := posthog.NewProperties().
		Set("added", ev.Added).
		Set("token_count", len(ev.Tokens))
	return s.capture(ev.Collection.String(), EventListingChanged, props)
}

func (s *PostHogSink) Purchased(_ context.Context, ev domain.Purchased) error {
	props := posthog.NewProperties().
		Set("collection", ev.Collection.String()).
		Set("currency", ev.Currency.String()).
		Set("token_count", len(ev.Tokens)).
		Set("total", ev.Total.String())
	return s.capture(ev.Buyer.String(), EventPurchased, props)
}

// Close flushes queued events.
func (s *PostHogSink) Close() {
	if err := s.client.Close(); err != nil && s.logger != nil {
		s.logger.Warn("Failed to flush posthog client", slog.String("error", err.Error()))
	}
}
