package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/bot"
	main "github.com/fwojciec/docbot/cmd/docbot"
	"github.com/fwojciec/docbot/mem"
	"github.com/fwojciec/docbot/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"help"}, stdout, stderr)

		require.NoError(t, err)
	})

	t.Run("topics lists the built-in catalog", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"topics"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "/vm - VM")
		assert.Contains(t, output, "/client - Client")
		assert.Contains(t, output, "    installation - Installation")
		assert.Contains(t, output, "/tutorials - Tutorials")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

		require.Error(t, err)
	})
}

// testBot wires a Bot against canned collaborators, for exercising commands
// without a network or an API key.
func testBot(tb testing.TB, answer string, crawlErr error) *bot.Bot {
	tb.Helper()
	topics := []*docbot.Topic{
		{Key: "vm", Name: "VM", URL: "https://docs.example.com/vm/src/index.html"},
	}
	catalog := &mock.CatalogService{
		TopicFn: func(key string) (*docbot.Topic, error) {
			if key == "vm" {
				return topics[0], nil
			}
			return nil, docbot.Errorf(docbot.ENOTFOUND, "topic %q not found", key)
		},
		SubcategoryFn: func(topicKey, subKey string) (*docbot.Subcategory, error) {
			return nil, docbot.Errorf(docbot.ENOTFOUND, "subcategory %q not found", subKey)
		},
		TopicsFn: func() []*docbot.Topic { return topics },
	}
	b := bot.New(
		catalog,
		mem.NewSessionStore(),
		&mock.Crawler{
			CrawlFn: func(ctx context.Context, seedURL string) (string, error) {
				if crawlErr != nil {
					return "", crawlErr
				}
				return "docs", nil
			},
		},
		&mock.Completer{
			CompleteFn: func(ctx context.Context, systemPrompt, contextText, question string) (string, error) {
				return answer, nil
			},
		},
	)
	b.Logger = slog.New(slog.DiscardHandler)
	return b
}

func TestCmdAsk(t *testing.T) {
	t.Parallel()

	t.Run("prints the answer", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Bot:    testBot(t, "the stack is 16 elements deep", nil),
		}
		cmd := &main.AskCmd{Topic: "vm", Question: "how deep is the stack?"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "the stack is 16 elements deep\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("unknown topic suggests the topics command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Bot:    testBot(t, "", nil),
		}
		cmd := &main.AskCmd{Topic: "compiler", Question: "how does it work?"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "docbot topics")
		assert.Empty(t, stdout.String())
	})
}

func TestCmdTopics(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Catalog: &mock.CatalogService{
			TopicsFn: func() []*docbot.Topic {
				return []*docbot.Topic{
					{Key: "vm", Name: "VM", URL: "https://docs.example.com/vm/src/index.html"},
					{
						Key:  "client",
						Name: "Client",
						URL:  "https://docs.example.com/client/src/index.html",
						Subcategories: []*docbot.Subcategory{
							{Key: "installation", Name: "Installation", URL: "https://docs.example.com/client/src/install.html"},
						},
					},
				}
			},
		},
	}

	err := (&main.TopicsCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "/vm - VM\n/client - Client\n    installation - Installation\n", stdout.String())
}

func TestCmdCrawl(t *testing.T) {
	t.Parallel()

	t.Run("prints the crawled context", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Crawler: &mock.Crawler{
				CrawlFn: func(ctx context.Context, seedURL string) (string, error) {
					return "Content from " + seedURL + ":\ndocs", nil
				},
			},
		}
		cmd := &main.CrawlCmd{URL: "https://docs.example.com/vm/src/index.html"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Content from https://docs.example.com/vm/src/index.html")
	})
}
