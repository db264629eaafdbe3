// Package events publishes market notifications to logs, websocket
// subscribers and RocketMQ.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// Event names carried in Envelope.Event.
const (
	EventListingChanged = "listing_changed"
	EventPurchased      = "purchased"
)

// Envelope is the wire form of every published notification.
type Envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sentAt"`
}

func listingEnvelope(ev domain.ListingChanged) Envelope {
	return Envelope{Event: EventListingChanged, Payload: ev, SentAt: time.Now().UTC()}
}

func purchaseEnvelope(ev domain.Purchased) Envelope {
	return Envelope{Event: EventPurchased, Payload: ev, SentAt: time.Now().UTC()}
}

func encode(env Envelope) ([]byte, error) {
	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", env.Event, err)
	}
	return body, nil
}
