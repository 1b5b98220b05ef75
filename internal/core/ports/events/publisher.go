package events

import (
	"context"
	"time"
)

// Event types published for currency changes.
const (
	CurrencyCreated     = "currency.created"
	CurrencyUpdated     = "currency.updated"
	CurrencyDeleted     = "currency.deleted"
	CurrencyBaseChanged = "currency.base_changed"
)

// Event is a domain event as it goes on the wire.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	ActorID    string    `json:"actorId"`
	Payload    any       `json:"payload"`
}

// Publisher delivers domain events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
