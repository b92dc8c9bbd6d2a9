package geminichat

import (
	"context"
	"io"
)

// Client is the capability surface a provider must offer: one synchronous
// completion over the full message history.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// StreamingClient is implemented by providers that can write reply deltas to
// a writer as they arrive. CompleteStream still returns the full reply text.
type StreamingClient interface {
	Client
	CompleteStream(ctx context.Context, messages []Message, w io.Writer) (string, error)
}
