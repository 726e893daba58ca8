package docbot

import "context"

// Crawler builds a documentation context from a seed URL by traversing a
// bounded, same-site subgraph of pages.
type Crawler interface {
	// Crawl returns the aggregated text of the visited pages in visit
	// order. Any fetch failure aborts the crawl with an error; no partial
	// context is returned.
	Crawl(ctx context.Context, seedURL string) (string, error)
}
