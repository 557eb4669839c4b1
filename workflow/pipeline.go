package workflow

import (
	"context"
	"log/slog"
	"strings"
	"time"

	ai "github.com/spetersoncode/ferret"
)

// DefaultMaxResults is the number of search results requested per run.
const DefaultMaxResults = 8

// Result is the projection of a completed run returned to callers.
type Result struct {
	Query        string      `json:"query"`
	FinalAnswer  string      `json:"final_answer"`
	Sources      []ai.Source `json:"sources"`
	WorkflowPath []string    `json:"workflow_path"`
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	maxResults int
	logger     *slog.Logger
}

// WithMaxResults sets how many search results the research stage requests.
func WithMaxResults(n int) PipelineOption {
	return func(c *pipelineConfig) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// WithLogger sets the logger used for run lifecycle events.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(c *pipelineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Pipeline is the entry point for deep-research runs. One Pipeline is safe
// for concurrent use: every run gets its own State and the collaborators it
// is built from are assumed safe under concurrent use.
type Pipeline struct {
	engine *Engine
	logger *slog.Logger
}

// NewPipeline wires the three stage chains to a language model and a search
// provider. Chain temperatures are fixed per stage: research 0.3, synthesis
// 0.4, drafting 0.7.
func NewPipeline(completer ai.Completer, searcher ai.Searcher, opts ...PipelineOption) *Pipeline {
	cfg := &pipelineConfig{
		maxResults: DefaultMaxResults,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	researcher := mustChain("researcher", completer, researcherSystemPrompt, researcherUserPrompt, researcherTemperature)
	synthesizer := mustChain("synthesizer", completer, synthesizerSystemPrompt, synthesizerUserPrompt, synthesizerTemperature)
	drafter := mustChain("drafter", completer, drafterSystemPrompt, drafterUserPrompt, drafterTemperature)

	engine := NewEngine(startStage{}, map[Phase]Stage{
		PhaseResearch:  &researchStage{searcher: searcher, chain: researcher, maxResults: cfg.maxResults},
		PhaseSynthesis: &synthesisStage{chain: synthesizer},
		PhaseAnswer:    &answerStage{chain: drafter},
	})

	return &Pipeline{engine: engine, logger: cfg.logger}
}

// Run drives one research run to completion and projects the final state.
// Failures propagate to the caller unchanged; the state is discarded.
func (p *Pipeline) Run(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()
	p.logger.Info("starting deep research", "query", query)

	state := NewState(query)
	if err := p.engine.Run(ctx, state); err != nil {
		p.logger.Error("research run failed",
			"query", query,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	p.logger.Info("research completed",
		"query", query,
		"duration_ms", time.Since(start).Milliseconds(),
		"source_count", len(state.Sources),
	)

	return &Result{
		Query:        state.Query,
		FinalAnswer:  state.FinalAnswer,
		Sources:      state.Sources,
		WorkflowPath: state.WorkflowPath(),
	}, nil
}
