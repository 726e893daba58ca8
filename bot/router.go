package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docbot"
)

// command is a tokenized slash-command message. rest holds everything after
// the command token; for categorized topics the router splits one more token
// off it as the subcategory key.
type command struct {
	name string
	rest string
}

// parseCommand tokenizes a free-text message. ok is false when the message
// carries no leading slash command.
func parseCommand(text string) (command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return command{}, false
	}
	name, rest := splitToken(text[1:])
	if name == "" {
		return command{}, false
	}
	// Strip an addressed-bot suffix ("/vm@docbot").
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return command{name: name, rest: rest}, true
}

// splitToken cuts the first whitespace-delimited token off s and returns it
// with the remainder left-trimmed.
func splitToken(s string) (token, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, isSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], isSpace)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// HandleMessage routes an inbound free-text message. It always returns
// exactly one reply; pipeline failures surface as fixed apology text, never
// as an error.
func (b *Bot) HandleMessage(ctx context.Context, ev docbot.MessageEvent) (*docbot.Reply, error) {
	cmd, ok := parseCommand(ev.Text)
	if !ok {
		return b.handleFreeText(ctx, ev)
	}

	switch cmd.name {
	case "start":
		if !ev.Private {
			return &docbot.Reply{Text: b.groupMenu()}, nil
		}
		return &docbot.Reply{Text: welcomeMessage, Keyboard: b.mainKeyboard()}, nil
	case "command", "commands", "help":
		if !ev.Private {
			return &docbot.Reply{Text: b.groupMenu()}, nil
		}
		return b.menuReply(), nil
	}

	topic, err := b.Catalog.Topic(cmd.name)
	if err != nil {
		if docbot.ErrorCode(err) != docbot.ENOTFOUND {
			return nil, err
		}
		if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
			return nil, err
		}
		return b.reply(ev.Private, notDocumentedMessage(cmd.name), b.mainKeyboard()), nil
	}

	if topic.Categorized() {
		return b.handleCategorizedCommand(ctx, ev, topic, cmd.rest)
	}
	return b.handleSimpleCommand(ctx, ev, topic, cmd.rest)
}

// handleSimpleCommand handles "/vm" and "/vm <question>" for topics that
// point at a single page.
func (b *Bot) handleSimpleCommand(ctx context.Context, ev docbot.MessageEvent, topic *docbot.Topic, rest string) (*docbot.Reply, error) {
	question := strings.TrimSpace(rest)
	if question == "" {
		if err := b.Sessions.Put(ctx, ev.UserID, docbot.Session{Topic: topic.Key}); err != nil {
			return nil, err
		}
		if !ev.Private {
			return &docbot.Reply{Text: groupAskPrompt(topic)}, nil
		}
		return &docbot.Reply{Text: fmt.Sprintf(askPromptFormat, topic.Name), Keyboard: backKeyboard()}, nil
	}
	// A complete command resolves in one turn; any pending state from an
	// abandoned exchange is stale.
	if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
		return nil, err
	}
	return b.answer(ctx, ev, docbot.ResolvedQuery{Topic: topic.Key, Question: question}), nil
}

// handleCategorizedCommand handles "/client", "/client installation" and
// "/client installation <question>".
func (b *Bot) handleCategorizedCommand(ctx context.Context, ev docbot.MessageEvent, topic *docbot.Topic, rest string) (*docbot.Reply, error) {
	subKey, question := splitToken(rest)
	if subKey == "" {
		if err := b.Sessions.Put(ctx, ev.UserID, docbot.Session{Topic: topic.Key}); err != nil {
			return nil, err
		}
		if !ev.Private {
			return &docbot.Reply{Text: groupSubcategoryPrompt(topic)}, nil
		}
		return &docbot.Reply{Text: fmt.Sprintf(selectPromptFormat, topic.Name), Keyboard: subcategoryKeyboard(topic)}, nil
	}

	sub := topic.Subcategory(subKey)
	if sub == nil {
		if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
			return nil, err
		}
		return b.reply(ev.Private, notDocumentedMessage(subKey), subcategoryKeyboard(topic)), nil
	}

	if question == "" {
		if err := b.Sessions.Put(ctx, ev.UserID, docbot.Session{Topic: topic.Key, Subcategory: sub.Key}); err != nil {
			return nil, err
		}
		if !ev.Private {
			return &docbot.Reply{Text: groupAskPrompt(topic)}, nil
		}
		return &docbot.Reply{Text: fmt.Sprintf(askPromptFormat, sub.Name), Keyboard: backKeyboard()}, nil
	}

	if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
		return nil, err
	}
	return b.answer(ctx, ev, docbot.ResolvedQuery{Topic: topic.Key, Subcategory: sub.Key, Question: question}), nil
}

// handleFreeText handles messages with no command token. With a pending
// session the text is the awaited question; without one it is guidance time.
func (b *Bot) handleFreeText(ctx context.Context, ev docbot.MessageEvent) (*docbot.Reply, error) {
	sess, err := b.Sessions.Take(ctx, ev.UserID)
	if err != nil {
		if docbot.ErrorCode(err) != docbot.ENOTFOUND {
			return nil, err
		}
		if !ev.Private {
			return &docbot.Reply{Text: b.groupMenu()}, nil
		}
		return &docbot.Reply{Text: guidanceText, Keyboard: b.mainKeyboard()}, nil
	}

	question := strings.TrimSpace(ev.Text)
	if question == "" {
		// Nothing to answer; restore the session so the next message
		// still counts as the awaited question.
		if err := b.Sessions.Put(ctx, ev.UserID, *sess); err != nil {
			return nil, err
		}
		return b.reply(ev.Private, guidanceText, b.mainKeyboard()), nil
	}

	return b.answer(ctx, ev, docbot.ResolvedQuery{
		Topic:       sess.Topic,
		Subcategory: sess.Subcategory,
		Question:    question,
	}), nil
}

// HandleSelection routes an inbound button press.
func (b *Bot) HandleSelection(ctx context.Context, ev docbot.SelectionEvent) (*docbot.Reply, error) {
	if ev.Key == backKey {
		if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
			return nil, err
		}
		return b.menuReply(), nil
	}

	if topicKey, ok := strings.CutPrefix(ev.Key, cmdPrefix); ok {
		return b.handleTopicSelection(ctx, ev, topicKey)
	}
	return b.handleSubcategorySelection(ctx, ev)
}

func (b *Bot) handleTopicSelection(ctx context.Context, ev docbot.SelectionEvent, topicKey string) (*docbot.Reply, error) {
	topic, err := b.Catalog.Topic(topicKey)
	if err != nil {
		if docbot.ErrorCode(err) != docbot.ENOTFOUND {
			return nil, err
		}
		if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
			return nil, err
		}
		return &docbot.Reply{Text: notDocumentedMessage(topicKey), Keyboard: b.mainKeyboard()}, nil
	}

	if err := b.Sessions.Put(ctx, ev.UserID, docbot.Session{Topic: topic.Key}); err != nil {
		return nil, err
	}
	if topic.Categorized() {
		return &docbot.Reply{
			Text:     fmt.Sprintf(selectPromptFormat, topic.Name),
			Keyboard: subcategoryKeyboard(topic),
		}, nil
	}
	return &docbot.Reply{
		Text:     fmt.Sprintf(askPromptFormat, topic.Name),
		Keyboard: backKeyboard(),
	}, nil
}

// handleSubcategorySelection resolves "<topic>_<subcategory>" keys by
// scanning topic keys as prefixes, in catalog order. Subcategory keys may
// themselves contain underscores, so a plain split would be ambiguous.
func (b *Bot) handleSubcategorySelection(ctx context.Context, ev docbot.SelectionEvent) (*docbot.Reply, error) {
	for _, topic := range b.Catalog.Topics() {
		subKey, ok := strings.CutPrefix(ev.Key, topic.Key+"_")
		if !ok {
			continue
		}
		sub := topic.Subcategory(subKey)
		if sub == nil {
			continue
		}
		if err := b.Sessions.Put(ctx, ev.UserID, docbot.Session{Topic: topic.Key, Subcategory: sub.Key}); err != nil {
			return nil, err
		}
		return &docbot.Reply{
			Text:     fmt.Sprintf(askPromptFormat, sub.Name),
			Keyboard: backKeyboard(),
		}, nil
	}

	if err := b.Sessions.Clear(ctx, ev.UserID); err != nil {
		return nil, err
	}
	return &docbot.Reply{Text: notDocumentedMessage(ev.Key), Keyboard: b.mainKeyboard()}, nil
}
