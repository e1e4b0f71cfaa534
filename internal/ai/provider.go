package ai

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is a single-shot chat backend. Implementations make exactly one
// upstream call per invocation; retries belong to the caller, and no caller
// here retries.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}
