package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.Completer = (*Completer)(nil)

// Completer is a mock implementation of docbot.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, systemPrompt, contextText, question string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error) {
	return c.CompleteFn(ctx, systemPrompt, contextText, question)
}
