// Package crawl provides the bounded breadth-first documentation crawler.
// Given a seed URL it fetches a small, same-site subgraph of pages and
// aggregates their extracted content into a single text context.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/docbot"
)

// Default crawl bounds.
const (
	// DefaultMaxPages is the maximum number of distinct pages fetched per
	// crawl.
	DefaultMaxPages = 5

	// DefaultMaxDepth bounds BFS distance from the seed; links found on a
	// page at depth DefaultMaxDepth-1 are never followed.
	DefaultMaxDepth = 2

	// DefaultRootMarker is the path segment that marks the root of a
	// documentation tree. The crawl scope is the seed's path truncated
	// before the first occurrence of this marker.
	DefaultRootMarker = "/src/"

	// DefaultMaxFrontier caps pending-queue growth independent of the
	// page budget. Pages can link far more broadly than MaxPages allows;
	// without a cap the frontier is the only unbounded structure in a
	// crawl.
	DefaultMaxFrontier = 512
)

// Ensure Crawler implements docbot.Crawler.
var _ docbot.Crawler = (*Crawler)(nil)

// Crawler performs a breadth-first, depth-bounded, page-count-bounded
// traversal of same-site documentation pages.
//
// The frontier and visited set are local to a single Crawl call, so a
// Crawler is safe for concurrent use as long as its collaborators are.
type Crawler struct {
	Fetcher   docbot.Fetcher
	Extractor docbot.Extractor
	Links     docbot.LinkExtractor
	Limiter   docbot.DomainLimiter // optional

	MaxPages    int
	MaxDepth    int
	RootMarker  string
	MaxFrontier int
}

// New creates a Crawler with default bounds.
func New(fetcher docbot.Fetcher, extractor docbot.Extractor, links docbot.LinkExtractor) *Crawler {
	return &Crawler{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Links:       links,
		MaxPages:    DefaultMaxPages,
		MaxDepth:    DefaultMaxDepth,
		RootMarker:  DefaultRootMarker,
		MaxFrontier: DefaultMaxFrontier,
	}
}

// Crawl fetches up to MaxPages same-site pages starting from seedURL and
// returns their formatted content blocks joined by blank lines, in visit
// order. MaxPages of zero yields an empty result.
//
// A fetch or extraction failure aborts the whole crawl: a partial crawl
// silently returning less context than expected is worse than a clear
// failure. Malformed links, off-site links, and links outside the
// documentation root are silently dropped and never fatal.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (string, error) {
	seed, err := url.Parse(seedURL)
	if err != nil {
		return "", docbot.Errorf(docbot.EINVALID, "invalid seed URL %q", seedURL)
	}

	// The crawl scope is the seed path truncated before the first
	// documentation-root marker, so traversal stays within the same
	// documentation tree rather than just the same domain.
	scopePath := seed.Path
	if c.RootMarker != "" {
		if idx := strings.Index(scopePath, c.RootMarker); idx != -1 {
			scopePath = scopePath[:idx]
		}
	}

	frontier := NewFrontier(c.MaxFrontier)
	frontier.Push(Task{URL: seedURL})
	visited := make(map[string]bool)
	var blocks []string

	for frontier.Len() > 0 && len(visited) < c.MaxPages {
		task, _ := frontier.Pop()
		if visited[task.URL] {
			continue
		}
		visited[task.URL] = true

		if c.Limiter != nil {
			if taskURL, err := url.Parse(task.URL); err == nil {
				if err := c.Limiter.Wait(ctx, taskURL.Host); err != nil {
					return "", err
				}
			}
		}

		html, err := c.Fetcher.Fetch(ctx, task.URL)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", task.URL, err)
		}

		content, err := c.Extractor.Extract(html)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", task.URL, err)
		}
		content.URL = task.URL
		blocks = append(blocks, FormatPage(content))

		// Links on a page at the depth bound are never followed, and
		// enumeration stops once the page budget is exhausted.
		if task.Depth >= c.MaxDepth-1 || len(visited) >= c.MaxPages {
			continue
		}

		links, err := c.Links.ExtractLinks(html, task.URL)
		if err != nil {
			continue
		}
		for _, link := range links {
			candidate, err := url.Parse(link)
			if err != nil {
				continue
			}
			if candidate.Host != seed.Host {
				continue
			}
			if !strings.HasPrefix(candidate.Path, scopePath) {
				continue
			}
			if visited[link] {
				continue
			}
			frontier.Push(Task{URL: link, Depth: task.Depth + 1})
		}
	}

	return strings.Join(blocks, "\n\n"), nil
}
