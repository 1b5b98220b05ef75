package messaging

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/ports/events"
)

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ events.Publisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, events.Event) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher connects to RabbitMQ when url is set and falls back to a no-op publisher otherwise.
func NewPublisher(url, queue string) (events.Publisher, error) {
	if url == "" {
		return NoopPublisher{}, nil
	}
	return NewRabbitPublisher(url, queue)
}
