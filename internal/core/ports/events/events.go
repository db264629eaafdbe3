// Package events defines where market notifications are published.
package events

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// Sink receives market notifications after the change is committed.
// Delivery is fire-and-forget: returned errors are logged by the caller
// and never undo the operation.
type Sink interface {
	ListingChanged(ctx context.Context, ev domain.ListingChanged) error
	Purchased(ctx context.Context, ev domain.Purchased) error
}
