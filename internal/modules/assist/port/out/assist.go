package out

import "context"

// Client is the remote AI endpoint.
type Client interface {
	Explain(ctx context.Context, text, background string) (string, error)
	Ask(ctx context.Context, question, scriptureText string) (string, error)
}
