package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/docbot"
	"github.com/google/uuid"
)

// answer runs the pipeline for a resolved query and maps its outcome to a
// reply. This is the only place where pipeline errors become user-visible
// text.
func (b *Bot) answer(ctx context.Context, ev docbot.MessageEvent, q docbot.ResolvedQuery) *docbot.Reply {
	text, err := b.Answer(ctx, q)
	if err != nil {
		if docbot.ErrorCode(err) == docbot.ENOTFOUND {
			name := q.Topic
			if q.Subcategory != "" {
				name = q.Subcategory
			}
			return b.reply(ev.Private, notDocumentedMessage(name), b.mainKeyboard())
		}
		return b.reply(ev.Private, apologyMessage, b.mainKeyboard())
	}
	return b.reply(ev.Private, text, b.mainKeyboard())
}

// Answer resolves a query against the catalog, gathers documentation
// context for its page, and asks the completer. Catalog misses return
// ENOTFOUND; crawl and completion failures are logged with a per-request ID
// and returned as-is.
func (b *Bot) Answer(ctx context.Context, q docbot.ResolvedQuery) (string, error) {
	if q.Question == "" {
		return "", docbot.Errorf(docbot.EINVALID, "question required")
	}

	logger := b.logger().With("request_id", uuid.New().String(), "topic", q.Topic)

	topic, err := b.Catalog.Topic(q.Topic)
	if err != nil {
		return "", err
	}
	url := topic.URL
	var sub *docbot.Subcategory
	if q.Subcategory != "" {
		sub, err = b.Catalog.Subcategory(q.Topic, q.Subcategory)
		if err != nil {
			return "", err
		}
		url = sub.URL
		logger = logger.With("subcategory", q.Subcategory)
	}

	contextText, err := b.context(ctx, logger, url)
	if err != nil {
		logger.Error("context gathering failed", "url", url, "error", err)
		return "", err
	}

	answer, err := b.Completer.Complete(ctx, BuildSystemPrompt(sub), contextText, q.Question)
	if err != nil {
		logger.Error("completion failed", "error", err)
		return "", fmt.Errorf("completion: %w", err)
	}
	logger.Info("answered", "context_bytes", len(contextText), "answer_bytes", len(answer))
	return answer, nil
}

// context returns the documentation context for a URL, consulting the cache
// first when one is configured. Cache write failures are logged and
// tolerated; a cold cache only costs a re-crawl.
func (b *Bot) context(ctx context.Context, logger *slog.Logger, url string) (string, error) {
	if b.Cache != nil {
		cached, err := b.Cache.GetContext(ctx, url, b.cacheMaxAge())
		if err == nil {
			logger.Info("context cache hit", "url", url)
			return cached, nil
		}
		if docbot.ErrorCode(err) != docbot.ENOTFOUND {
			logger.Warn("context cache read failed", "url", url, "error", err)
		}
	}

	text, err := b.Crawler.Crawl(ctx, url)
	if err != nil {
		return "", fmt.Errorf("crawl %s: %w", url, err)
	}

	if b.Cache != nil {
		if err := b.Cache.PutContext(ctx, url, text); err != nil {
			logger.Warn("context cache write failed", "url", url, "error", err)
		}
	}
	return text, nil
}
