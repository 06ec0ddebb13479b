package events

import "context"

// Publisher delivers domain events to an external broker. Implementations
// must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event any) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, any) error { return nil }

func (NopPublisher) Close() error { return nil }
