package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/bot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Catalog docbot.CatalogService
	Crawler docbot.Crawler
	Bot     *bot.Bot
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Catalog string `env:"DOCBOT_CATALOG" help:"Path to a catalog YAML file (defaults to the built-in catalog)"`
	Model   string `env:"DOCBOT_MODEL" default:"gemini-2.5-flash" help:"Gemini model used for completions"`

	Serve  ServeCmd  `cmd:"" help:"Run the chat bot HTTP server"`
	Ask    AskCmd    `cmd:"" help:"Ask a one-off question about a catalog topic"`
	Topics TopicsCmd `cmd:"" help:"List catalog topics and subcategories"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl a documentation page and print the gathered context"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"DOCBOT_ADDR" default:":8080" help:"HTTP listen address"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Topic       string `arg:"" help:"Topic key (see 'docbot topics')"`
	Question    string `arg:"" help:"Question to ask about the documentation"`
	Subcategory string `short:"s" help:"Subcategory key for categorized topics"`
}

// TopicsCmd is the "topics" subcommand.
type TopicsCmd struct{}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL string `arg:"" help:"Seed URL to crawl"`
}
