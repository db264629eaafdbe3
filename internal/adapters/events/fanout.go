package events

import (
	"context"
	"errors"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsevents "github.com/agarrido2001/XaveMarket/internal/core/ports/events"
)

// Fanout delivers each notification to every sink. A failing sink does not
// stop delivery to the others.
type Fanout []portsevents.Sink

var _ portsevents.Sink = Fanout(nil)

func (f Fanout) ListingChanged(ctx context.Context, ev domain.ListingChanged) error {
	var errs []error
	for _, sink := range f {
		if err := sink.ListingChanged(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Purchased(ctx context.Context, ev domain.Purchased) error {
	var errs []error
	for _, sink := range f {
		if err := sink.Purchased(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
