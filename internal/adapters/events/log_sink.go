package events

import (
	"context"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsevents "github.com/agarrido2001/XaveMarket/internal/core/ports/events"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
)

// LogSink writes every notification to the request logger.
type LogSink struct{}

var _ portsevents.Sink = LogSink{}

func (LogSink) ListingChanged(ctx context.Context, ev domain.ListingChanged) error {
	middleware.GetLoggerFromCtx(ctx).Info("Listing changed",
		slog.String("event", EventListingChanged),
		slog.Bool("added", ev.Added),
		slog.String("collection", ev.Collection.String()),
		slog.Any("token_ids", ev.Tokens))
	return nil
}

func (LogSink) Purchased(ctx context.Context, ev domain.Purchased) error {
	middleware.GetLoggerFromCtx(ctx).Info("Nft purchased",
		slog.String("event", EventPurchased),
		slog.String("buyer", ev.Buyer.String()),
		slog.String("collection", ev.Collection.String()),
		slog.Any("token_ids", ev.Tokens),
		slog.String("currency", ev.Currency.String()),
		slog.String("total", ev.Total.String()))
	return nil
}
