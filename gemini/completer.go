// Package gemini provides a Google Gemini-backed implementation of
// docbot.Completer.
package gemini

import (
	"context"

	"github.com/fwojciec/docbot"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements docbot.Completer at compile time.
var _ docbot.Completer = (*Completer)(nil)

// Completer implements docbot.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects
// DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete answers a question given a system prompt and a context built
// from crawled documentation.
func (c *Completer) Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error) {
	if question == "" {
		return "", docbot.Errorf(docbot.EINVALID, "question required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(contextText, question)}},
		}},
		BuildConfig(systemPrompt),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docbot.Errorf(docbot.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature is set high enough for conversational, exploratory answers
// rather than terse documentation lookups.
func BuildConfig(systemPrompt string) *genai.GenerateContentConfig {
	temp := float32(0.8)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 1024,
	}
}

// BuildUserPrompt builds the user prompt containing the crawled context
// and the user's question.
func BuildUserPrompt(contextText, question string) string {
	return "Context: " + contextText + "\n\nQuestion: " + question
}
