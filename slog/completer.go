package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Ensure LoggingCompleter implements docbot.Completer.
var _ docbot.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with per-call logging.
type LoggingCompleter struct {
	next   docbot.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next docbot.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
// Question and context text are not logged; sizes are enough to debug
// without retaining user content.
func (c *LoggingCompleter) Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error) {
	begin := time.Now()
	answer, err := c.next.Complete(ctx, systemPrompt, contextText, question)
	if err != nil {
		c.logger.Error("completion failed",
			"context_bytes", len(contextText),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	c.logger.Info("completion",
		"context_bytes", len(contextText),
		"answer_bytes", len(answer),
		"duration", time.Since(begin),
	)
	return answer, nil
}
