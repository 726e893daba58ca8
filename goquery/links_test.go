package goquery_test

import (
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="intro.html">Intro</a>
			<a href="../other/setup.html">Setup</a>
			<a href="/absolute/path.html">Absolute</a>
		</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/vm/src/index.html")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://docs.example.com/vm/src/intro.html",
			"https://docs.example.com/vm/other/setup.html",
			"https://docs.example.com/absolute/path.html",
		}, links)
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="c.html">C</a>
			<a href="a.html">A</a>
			<a href="b.html">B</a>
		</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/src/")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://docs.example.com/src/c.html",
			"https://docs.example.com/src/a.html",
			"https://docs.example.com/src/b.html",
		}, links)
	})

	t.Run("skips non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:team@example.com">Mail</a>
			<a href="javascript:void(0)">JS</a>
			<a href="tel:+1234567890">Call</a>
			<a href="page.html">Page</a>
		</body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/src/")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://docs.example.com/src/page.html"}, links)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="page.html#section">Section</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/src/")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://docs.example.com/src/page.html"}, links)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks("<html></html>", "://bad")
		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})

	t.Run("returns no links for a page without anchors", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks("<html><body><p>text</p></body></html>", "https://docs.example.com/src/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

// Compile-time verification that LinkExtractor implements docbot.LinkExtractor.
var _ docbot.LinkExtractor = (*goquery.LinkExtractor)(nil)
