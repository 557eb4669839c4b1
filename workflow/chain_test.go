package workflow

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/ferret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureCompleter records the last request it received.
type captureCompleter struct {
	lastMessages []ai.Message
	lastOptions  *ai.Options
	content      string
	err          error
	callCount    int
}

func (c *captureCompleter) Complete(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	c.callCount++
	c.lastMessages = messages
	c.lastOptions = ai.ApplyOptions(opts...)
	if c.err != nil {
		return nil, c.err
	}
	return &ai.Response{Content: c.content}, nil
}

func TestNewChain_InvalidTemplate(t *testing.T) {
	_, err := NewChain("bad", &captureCompleter{}, "system", "{{.query", 0.3)
	assert.Error(t, err)
}

func TestChain_Invoke(t *testing.T) {
	completer := &captureCompleter{content: "the notes"}
	chain, err := NewChain("researcher", completer, "be thorough", "Query: {{.query}}", 0.3)
	require.NoError(t, err)

	history := []ai.Message{
		{Role: ai.RoleSystem, Content: "Starting research workflow for: tides"},
	}
	out, err := chain.Invoke(context.Background(), Vars{
		"query":    "tides",
		"messages": history,
	})
	require.NoError(t, err)
	assert.Equal(t, "the notes", out)

	// Conversation order: system prompt, history, rendered user prompt.
	require.Len(t, completer.lastMessages, 3)
	assert.Equal(t, ai.RoleSystem, completer.lastMessages[0].Role)
	assert.Equal(t, "be thorough", completer.lastMessages[0].Content)
	assert.Equal(t, "Starting research workflow for: tides", completer.lastMessages[1].Content)
	assert.Equal(t, ai.RoleUser, completer.lastMessages[2].Role)
	assert.Equal(t, "Query: tides", completer.lastMessages[2].Content)

	// The chain's temperature rides along on every call.
	require.NotNil(t, completer.lastOptions.Temperature)
	assert.InDelta(t, 0.3, *completer.lastOptions.Temperature, 1e-9)
}

func TestChain_Invoke_MissingVar(t *testing.T) {
	completer := &captureCompleter{content: "unused"}
	chain, err := NewChain("researcher", completer, "system", "Query: {{.query}}", 0.3)
	require.NoError(t, err)

	_, err = chain.Invoke(context.Background(), Vars{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "researcher")
	assert.Equal(t, 0, completer.callCount, "the model must not be called when rendering fails")
}

func TestChain_Invoke_ClientError(t *testing.T) {
	clientErr := errors.New("connection refused")
	chain, err := NewChain("drafter", &captureCompleter{err: clientErr}, "system", "{{.query}}", 0.7)
	require.NoError(t, err)

	_, err = chain.Invoke(context.Background(), Vars{"query": "tides"})

	var invErr *ModelInvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, "drafter", invErr.Chain)
	assert.ErrorIs(t, err, clientErr)
}

func TestChain_Invoke_EmptyCompletion(t *testing.T) {
	chain, err := NewChain("synthesizer", &captureCompleter{content: "   "}, "system", "{{.query}}", 0.4)
	require.NoError(t, err)

	_, err = chain.Invoke(context.Background(), Vars{"query": "tides"})

	var invErr *ModelInvocationError
	require.ErrorAs(t, err, &invErr)
	assert.ErrorIs(t, err, ai.ErrEmptyCompletion)
}

func TestChain_Invoke_NoHistory(t *testing.T) {
	completer := &captureCompleter{content: "ok"}
	chain, err := NewChain("researcher", completer, "system", "{{.query}}", 0.3)
	require.NoError(t, err)

	_, err = chain.Invoke(context.Background(), Vars{"query": "tides"})
	require.NoError(t, err)
	require.Len(t, completer.lastMessages, 2)
}
