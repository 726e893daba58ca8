package mock

import (
	"context"
	"time"

	"github.com/fwojciec/docbot"
)

var _ docbot.ContextCache = (*ContextCache)(nil)

// ContextCache is a mock implementation of docbot.ContextCache.
type ContextCache struct {
	GetContextFn func(ctx context.Context, url string, maxAge time.Duration) (string, error)
	PutContextFn func(ctx context.Context, url string, content string) error
}

func (c *ContextCache) GetContext(ctx context.Context, url string, maxAge time.Duration) (string, error) {
	return c.GetContextFn(ctx, url, maxAge)
}

func (c *ContextCache) PutContext(ctx context.Context, url string, content string) error {
	return c.PutContextFn(ctx, url, content)
}
