package docbot

import (
	"context"
	"time"
)

// ContextCache stores aggregated crawl output keyed by seed URL, so that
// repeated questions against the same documentation page do not re-crawl
// the site.
type ContextCache interface {
	// GetContext returns the cached context for url if it was stored less
	// than maxAge ago. Returns ENOTFOUND when the entry is missing or
	// stale.
	GetContext(ctx context.Context, url string, maxAge time.Duration) (string, error)

	// PutContext stores or replaces the context for url.
	PutContext(ctx context.Context, url string, content string) error
}
