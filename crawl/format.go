package crawl

import "github.com/fwojciec/docbot"

// FormatPage renders one page's extracted content as a context block.
func FormatPage(content *docbot.PageContent) string {
	return "Content from " + content.URL + ":\n" + content.Prose +
		"\n\nCode examples:\n" + content.Code
}
