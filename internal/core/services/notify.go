package services

import (
	"context"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/events"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
)

// notifier publishes committed changes. Sink errors are logged and dropped.
type notifier struct {
	sink events.Sink
}

func (n notifier) listingChanged(ctx context.Context, ev domain.ListingChanged) {
	if n.sink == nil {
		return
	}
	if err := n.sink.ListingChanged(ctx, ev); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish listing change",
			slog.String("error", err.Error()),
			slog.String("collection", ev.Collection.String()),
			slog.Bool("added", ev.Added))
	}
}

func (n notifier) purchased(ctx context.Context, ev domain.Purchased) {
	if n.sink == nil {
		return
	}
	if err := n.sink.Purchased(ctx, ev); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish purchase",
			slog.String("error", err.Error()),
			slog.String("collection", ev.Collection.String()),
			slog.String("buyer", ev.Buyer.String()))
	}
}
