// Package bot implements the conversational core: a per-user session router
// that turns inbound chat events into fully-resolved questions, and the
// answer pipeline that resolves those questions into LLM completions over
// freshly crawled documentation.
package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/docbot"
)

// Selection keys understood by the router, mirrored by the keyboards it
// produces.
const (
	backKey   = "back_to_commands"
	cmdPrefix = "cmd_"
)

// DefaultCacheMaxAge bounds how stale a cached documentation context may be
// before the pipeline re-crawls.
const DefaultCacheMaxAge = 15 * time.Minute

const (
	welcomeMessage = "👋 Welcome to the documentation assistant!\n\nSelect a command to get started:"
	menuMessage    = "Available commands:\n\nSelect a command to get started:"
	guidanceText   = "Please select a command to get started:"

	// apologyMessage is the only failure text ever shown to users. Crawl
	// and completion errors are logged with full detail but never leak
	// into chat.
	apologyMessage = "Sorry, I encountered an error while processing your request. Please try again later."

	notDocumentedFormat = "I don't have documentation for %s yet, but I'd be happy to discuss what you're trying to build!"
	askPromptFormat     = "What would you like to know about %s?"
	selectPromptFormat  = "Select a %s category:"
)

// Bot routes chat events and answers resolved questions. All fields except
// Cache and Logger are required.
type Bot struct {
	Catalog   docbot.CatalogService
	Sessions  docbot.SessionStore
	Crawler   docbot.Crawler
	Completer docbot.Completer

	// Cache, when set, short-circuits crawling for recently seen URLs.
	Cache       docbot.ContextCache
	CacheMaxAge time.Duration

	Logger *slog.Logger
}

// New creates a Bot with the required collaborators wired in.
func New(catalog docbot.CatalogService, sessions docbot.SessionStore, crawler docbot.Crawler, completer docbot.Completer) *Bot {
	return &Bot{
		Catalog:     catalog,
		Sessions:    sessions,
		Crawler:     crawler,
		Completer:   completer,
		CacheMaxAge: DefaultCacheMaxAge,
	}
}

func (b *Bot) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Bot) cacheMaxAge() time.Duration {
	if b.CacheMaxAge > 0 {
		return b.CacheMaxAge
	}
	return DefaultCacheMaxAge
}

// reply pairs text with a keyboard in private chats. Group chats get plain
// text only.
func (b *Bot) reply(private bool, text string, keyboard [][]docbot.Button) *docbot.Reply {
	if !private {
		return &docbot.Reply{Text: text}
	}
	return &docbot.Reply{Text: text, Keyboard: keyboard}
}

func (b *Bot) menuReply() *docbot.Reply {
	return &docbot.Reply{Text: menuMessage, Keyboard: b.mainKeyboard()}
}

func notDocumentedMessage(name string) string {
	return fmt.Sprintf(notDocumentedFormat, name)
}

// groupMenu lists the slash commands for chats where keyboards are not
// shown.
func (b *Bot) groupMenu() string {
	var sb strings.Builder
	sb.WriteString("Please use one of the available commands:")
	for _, topic := range b.Catalog.Topics() {
		fmt.Fprintf(&sb, "\n/%s - Ask about %s", topic.Key, topic.Name)
	}
	return sb.String()
}

// groupAskPrompt shows usage examples for a topic command in group chats.
func groupAskPrompt(topic *docbot.Topic) string {
	return fmt.Sprintf(
		"Please ask your question about %s. For example:\n/%s how does it work?\n/%s what are the main features?",
		topic.Name, topic.Key, topic.Key,
	)
}

// groupSubcategoryPrompt shows how to pick a subcategory in group chats.
func groupSubcategoryPrompt(topic *docbot.Topic) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Please specify a %s category:", topic.Name)
	for _, sub := range topic.Subcategories {
		fmt.Fprintf(&sb, "\n/%s %s - %s", topic.Key, sub.Key, sub.Name)
	}
	return sb.String()
}
