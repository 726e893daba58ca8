package crawl_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/crawl"
	"github.com/fwojciec/docbot/goquery"
	"github.com/fwojciec/docbot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site maps URLs to HTML bodies and records fetches in order.
type site struct {
	pages   map[string]string
	fetched []string
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			s.fetched = append(s.fetched, url)
			html, ok := s.pages[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
	}
}

// page builds a minimal documentation page with the given prose and links.
func page(prose string, links ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body><main><p>")
	sb.WriteString(prose)
	sb.WriteString("</p>")
	for _, link := range links {
		fmt.Fprintf(&sb, `<a href=%q>link</a>`, link)
	}
	sb.WriteString("</main></body></html>")
	return sb.String()
}

func newCrawler(s *site) *crawl.Crawler {
	return crawl.New(s.fetcher(), goquery.NewExtractor(), goquery.NewLinkExtractor())
}

const seed = "https://docs.example.com/project/src/index.html"

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("visits at most MaxPages distinct URLs and never revisits", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index",
				"a.html", "b.html", "c.html", "index.html"),
			"https://docs.example.com/project/src/a.html": page("a", "index.html", "b.html"),
			"https://docs.example.com/project/src/b.html": page("b", "a.html"),
			"https://docs.example.com/project/src/c.html": page("c"),
		}}

		c := newCrawler(s)
		c.MaxPages = 3

		_, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		assert.Len(t, s.fetched, 3)
		unique := make(map[string]bool)
		for _, url := range s.fetched {
			assert.False(t, unique[url], "URL %s fetched twice", url)
			unique[url] = true
		}
	})

	t.Run("visits pages in document order of links", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index", "b.html", "a.html"),
			"https://docs.example.com/project/src/b.html": page("b", "c.html"),
			"https://docs.example.com/project/src/a.html": page("a"),
			"https://docs.example.com/project/src/c.html": page("c"),
		}}

		c := newCrawler(s)
		c.MaxPages = 4
		c.MaxDepth = 3

		_, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		assert.Equal(t, []string{
			seed,
			"https://docs.example.com/project/src/b.html",
			"https://docs.example.com/project/src/a.html",
			"https://docs.example.com/project/src/c.html",
		}, s.fetched)
	})

	t.Run("never follows links found at the depth bound", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index", "a.html"),
			"https://docs.example.com/project/src/a.html": page("a", "b.html"),
			"https://docs.example.com/project/src/b.html": page("b"),
		}}

		c := newCrawler(s)
		c.MaxPages = 10

		_, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		// b.html is only reachable at depth 2, beyond MaxDepth 2 traversal.
		assert.Equal(t, []string{
			seed,
			"https://docs.example.com/project/src/a.html",
		}, s.fetched)
	})

	t.Run("rejects off-site and out-of-prefix links", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index",
				"https://other.example.net/project/src/a.html", // different host
				"https://docs.example.com/unrelated/page.html", // outside doc root
				"https://docs.example.com/project/guide.html",  // in prefix, accepted
			),
			"https://docs.example.com/project/guide.html": page("guide"),
		}}

		c := newCrawler(s)

		_, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		assert.Equal(t, []string{
			seed,
			"https://docs.example.com/project/guide.html",
		}, s.fetched)
	})

	t.Run("aborts the whole crawl on fetch failure", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index", "missing.html"),
		}}

		c := newCrawler(s)

		_, err := c.Crawl(context.Background(), seed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.html")
	})

	t.Run("propagates seed fetch failure", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		c := crawl.New(fetcher, goquery.NewExtractor(), goquery.NewLinkExtractor())

		_, err := c.Crawl(context.Background(), seed)
		require.Error(t, err)
	})

	t.Run("formats page blocks joined by blank lines", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: `<html><body><main><p>intro text</p><pre>fn main() {}</pre>` +
				`<a href="a.html">a</a></main></body></html>`,
			"https://docs.example.com/project/src/a.html": page("follow-up"),
		}}

		c := newCrawler(s)

		result, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		assert.Equal(t,
			"Content from "+seed+":\nintro text fn main() {} a\n\nCode examples:\nfn main() {}\n\n"+
				"Content from https://docs.example.com/project/src/a.html:\nfollow-up\n\nCode examples:\n",
			result)
	})

	t.Run("returns empty result when MaxPages is zero", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{seed: page("index")}}

		c := newCrawler(s)
		c.MaxPages = 0

		result, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Empty(t, s.fetched)
	})

	t.Run("returns error for invalid seed URL", func(t *testing.T) {
		t.Parallel()

		c := crawl.New(nil, nil, nil)

		_, err := c.Crawl(context.Background(), "://not-a-url")
		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})

	t.Run("waits on the domain limiter before each fetch", func(t *testing.T) {
		t.Parallel()

		s := &site{pages: map[string]string{
			seed: page("index", "a.html"),
			"https://docs.example.com/project/src/a.html": page("a"),
		}}

		var waits []string
		c := newCrawler(s)
		c.Limiter = &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				waits = append(waits, domain)
				return nil
			},
		}

		_, err := c.Crawl(context.Background(), seed)
		require.NoError(t, err)

		assert.Equal(t, []string{"docs.example.com", "docs.example.com"}, waits)
	})
}
