package docbot_test

import (
	"testing"

	"github.com/fwojciec/docbot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Categorized(t *testing.T) {
	t.Parallel()

	simple := &docbot.Topic{Key: "vm", URL: "https://docs.example.com/vm/src/index.html"}
	assert.False(t, simple.Categorized())

	categorized := &docbot.Topic{
		Key: "client",
		URL: "https://docs.example.com/client/src/index.html",
		Subcategories: []*docbot.Subcategory{
			{Key: "installation", Name: "Installation", URL: "https://docs.example.com/client/src/install.html"},
		},
	}
	assert.True(t, categorized.Categorized())
}

func TestTopic_Subcategory(t *testing.T) {
	t.Parallel()

	topic := &docbot.Topic{
		Key: "client",
		URL: "https://docs.example.com/client/src/index.html",
		Subcategories: []*docbot.Subcategory{
			{Key: "installation", Name: "Installation", URL: "https://docs.example.com/client/src/install.html"},
			{Key: "cli", Name: "CLI Reference", URL: "https://docs.example.com/client/src/cli.html"},
		},
	}

	sub := topic.Subcategory("cli")
	require.NotNil(t, sub)
	assert.Equal(t, "CLI Reference", sub.Name)

	assert.Nil(t, topic.Subcategory("unknown"))
}

func TestTopic_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid topic", func(t *testing.T) {
		t.Parallel()
		topic := &docbot.Topic{Key: "vm", URL: "https://docs.example.com/vm/src/index.html"}
		require.NoError(t, topic.Validate())
	})

	t.Run("rejects missing key", func(t *testing.T) {
		t.Parallel()
		topic := &docbot.Topic{URL: "https://docs.example.com/vm/src/index.html"}
		err := topic.Validate()
		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()
		topic := &docbot.Topic{Key: "vm"}
		err := topic.Validate()
		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})

	t.Run("rejects subcategory without URL", func(t *testing.T) {
		t.Parallel()
		topic := &docbot.Topic{
			Key:           "client",
			URL:           "https://docs.example.com/client/src/index.html",
			Subcategories: []*docbot.Subcategory{{Key: "installation"}},
		}
		err := topic.Validate()
		require.Error(t, err)
		assert.Equal(t, docbot.EINVALID, docbot.ErrorCode(err))
	})
}
