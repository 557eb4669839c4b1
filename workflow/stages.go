package workflow

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/spetersoncode/ferret"
)

// Stage is one discrete phase of the pipeline. A stage consumes fields
// produced by earlier stages, writes its own output fields, appends a
// completion notice, and advances the state's phase tag.
type Stage interface {
	Name() string
	Run(ctx context.Context, state *State) error
}

// startStage records the workflow start in the message history. It is a
// fixed entry hook: the engine always sequences it into research.
type startStage struct{}

func (startStage) Name() string { return "start" }

func (startStage) Run(_ context.Context, state *State) error {
	state.AppendMessage(ai.RoleSystem, "Starting research workflow for: "+state.Query)
	return nil
}

// researchStage performs the run's single web search and extracts research
// notes from the results.
type researchStage struct {
	searcher   ai.Searcher
	chain      *Chain
	maxResults int
}

func (s *researchStage) Name() string { return "research" }

func (s *researchStage) Run(ctx context.Context, state *State) error {
	// Exactly one search per run. An empty result set is stored as a
	// non-nil slice so re-entry never searches again.
	if state.SearchResults == nil {
		results, err := s.searcher.Search(ctx, state.Query, s.maxResults)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if results == nil {
			results = []ai.SearchResult{}
		}
		state.SearchResults = results
		state.AppendMessage(ai.RoleSystem, "Performed initial search for: "+state.Query)
	}

	notes, err := s.chain.Invoke(ctx, Vars{
		"query":          state.Query,
		"search_results": formatSearchResults(state.SearchResults),
		varMessages:      state.Messages,
	})
	if err != nil {
		return err
	}

	state.ResearchNotes = notes
	state.Sources = deriveSources(state.SearchResults)
	state.AppendMessage(ai.RoleAssistant, "Research phase completed.")
	state.Phase = PhaseSynthesis
	return nil
}

// synthesisStage organizes the research notes into a coherent document.
type synthesisStage struct {
	chain *Chain
}

func (s *synthesisStage) Name() string { return "synthesis" }

func (s *synthesisStage) Run(ctx context.Context, state *State) error {
	if state.ResearchNotes == "" {
		return &PreconditionError{Stage: s.Name(), Missing: "research notes"}
	}
	if state.Sources == nil {
		return &PreconditionError{Stage: s.Name(), Missing: "sources"}
	}

	synthesized, err := s.chain.Invoke(ctx, Vars{
		"query":          state.Query,
		"research_notes": state.ResearchNotes,
		"sources":        formatSources(state.Sources),
		varMessages:      state.Messages,
	})
	if err != nil {
		return err
	}

	state.SynthesizedResearch = synthesized
	state.AppendMessage(ai.RoleAssistant, "Synthesis phase completed.")
	state.Phase = PhaseAnswer
	return nil
}

// answerStage drafts the final answer from the synthesized research.
type answerStage struct {
	chain *Chain
}

func (s *answerStage) Name() string { return "answer" }

func (s *answerStage) Run(ctx context.Context, state *State) error {
	if state.SynthesizedResearch == "" {
		return &PreconditionError{Stage: s.Name(), Missing: "synthesized research"}
	}
	if state.Sources == nil {
		return &PreconditionError{Stage: s.Name(), Missing: "sources"}
	}

	answer, err := s.chain.Invoke(ctx, Vars{
		"query":                state.Query,
		"synthesized_research": state.SynthesizedResearch,
		"sources":              formatSources(state.Sources),
		varMessages:            state.Messages,
	})
	if err != nil {
		return err
	}

	state.FinalAnswer = answer
	state.AppendMessage(ai.RoleAssistant, "Answer drafting phase completed.")
	state.Phase = PhaseComplete
	return nil
}

// formatSearchResults renders raw search records as a numbered block for
// prompt interpolation.
func formatSearchResults(results []ai.SearchResult) string {
	if len(results) == 0 {
		return "No results found."
	}
	var b strings.Builder
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = UnknownTitle
		}
		url := r.URL
		if url == "" {
			url = UnknownURL
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, title, url)
		if r.PublishedDate != "" {
			fmt.Fprintf(&b, "   Published: %s\n", r.PublishedDate)
		}
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
	}
	return b.String()
}

// formatSources renders the derived citation list for prompt interpolation.
func formatSources(sources []ai.Source) string {
	if len(sources) == 0 {
		return "No sources available."
	}
	var b strings.Builder
	for i, s := range sources {
		fmt.Fprintf(&b, "%d. %s - %s (%s)\n", i+1, s.Title, s.URL, s.PublishedDate)
	}
	return b.String()
}
