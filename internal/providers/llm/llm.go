package llm

import "context"

type Provider interface {
	// Complete returns the full model response for a prompt.
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
