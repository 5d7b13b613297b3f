package notify

import "context"

// Channel is a single notification delivery target. Send blocks until
// the message is accepted, the context is done, or delivery fails.
type Channel interface {
	// Name identifies the channel in audit entries and metrics
	Name() string

	// Send delivers one message through the channel
	Send(ctx context.Context, subject, body string) error
}
