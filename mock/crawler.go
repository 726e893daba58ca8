package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docbot.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string) (string, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string) (string, error) {
	return c.CrawlFn(ctx, seedURL)
}
