package main

import (
	"fmt"

	"github.com/fwojciec/docbot"
)

// Run executes the crawl command. It prints the aggregated context exactly
// as the answer pipeline would feed it to the completer, which makes it the
// fastest way to debug extraction problems against a live site.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	text, err := deps.Crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, text)
	return nil
}
