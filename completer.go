package docbot

import "context"

// Completer turns a documentation context and a question into a natural
// language answer using an external language-model service.
type Completer interface {
	// Complete answers a question given a system prompt and a context built
	// from crawled documentation. Any failure (network, quota, timeout) is
	// returned as-is; callers decide how to surface it.
	Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error)
}
