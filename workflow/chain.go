package workflow

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	ai "github.com/spetersoncode/ferret"
)

// Vars supplies the named substitution values for one chain invocation.
// Every placeholder referenced by the chain's template must be present;
// a missing key is a caller error. The reserved "messages" key carries
// the run's message history ([]ferret.Message) and is inserted into the
// conversation rather than substituted into the template.
type Vars map[string]any

// varMessages is the reserved Vars key for message history.
const varMessages = "messages"

// Chain binds a fixed prompt pair to a language model and a sampling
// temperature, producing a callable stage operation. Invoking a chain has
// no side effects beyond the Completer call.
type Chain struct {
	name        string
	completer   ai.Completer
	system      string
	user        *template.Template
	temperature float64
}

// NewChain creates a chain from a system prompt and a user-prompt template.
// The template uses text/template syntax and fails at invocation time if a
// referenced placeholder is absent from the supplied Vars.
func NewChain(name string, completer ai.Completer, system, user string, temperature float64) (*Chain, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(user)
	if err != nil {
		return nil, fmt.Errorf("workflow: chain %q: parse template: %w", name, err)
	}
	return &Chain{
		name:        name,
		completer:   completer,
		system:      system,
		user:        tmpl,
		temperature: temperature,
	}, nil
}

// mustChain is used for the built-in prompts, which are known to parse.
func mustChain(name string, completer ai.Completer, system, user string, temperature float64) *Chain {
	c, err := NewChain(name, completer, system, user, temperature)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the chain name.
func (c *Chain) Name() string { return c.name }

// Invoke renders the user template from vars, sends the conversation
// (system prompt, message history, rendered user prompt) to the language
// model, and returns the completion text. A failed call or an empty
// completion surfaces as a *ModelInvocationError; it is not retried here.
func (c *Chain) Invoke(ctx context.Context, vars Vars) (string, error) {
	history, _ := vars[varMessages].([]ai.Message)

	var prompt strings.Builder
	if err := c.user.Execute(&prompt, map[string]any(vars)); err != nil {
		return "", fmt.Errorf("workflow: chain %q: render template: %w", c.name, err)
	}

	msgs := make([]ai.Message, 0, len(history)+2)
	msgs = append(msgs, ai.Message{Role: ai.RoleSystem, Content: c.system})
	msgs = append(msgs, history...)
	msgs = append(msgs, ai.Message{Role: ai.RoleUser, Content: prompt.String()})

	resp, err := c.completer.Complete(ctx, msgs, ai.WithTemperature(c.temperature))
	if err != nil {
		return "", &ModelInvocationError{Chain: c.name, Err: err}
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", &ModelInvocationError{Chain: c.name, Err: ai.ErrEmptyCompletion}
	}
	return resp.Content, nil
}
