package llm

import "context"

// Request is a single-turn completion: one instruction for the model's
// role and one user message.
type Request struct {
	System string
	User   string
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
