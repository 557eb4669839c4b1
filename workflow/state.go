package workflow

import (
	ai "github.com/spetersoncode/ferret"
)

// Phase identifies the next stage a run will enter. Stages set it to the
// following phase as their last mutation, so it only ever advances
// research → synthesis → answer → complete.
type Phase string

const (
	PhaseResearch  Phase = "research"
	PhaseSynthesis Phase = "synthesis"
	PhaseAnswer    Phase = "answer"
	PhaseComplete  Phase = "complete"
)

// Placeholder values substituted when a search result is missing a field.
const (
	UnknownTitle = "Unknown Title"
	UnknownURL   = "Unknown URL"
	UnknownDate  = "Unknown Date"
)

// State is the record threaded through all stages of one research run.
// It is created by NewState, owned exclusively by that run, and never
// shared across runs or goroutines.
type State struct {
	// Query is the immutable input, set once at construction.
	Query string

	// SearchResults holds the raw records from the single search performed
	// by the research stage. nil means the search has not run yet; a run
	// that found nothing stores a non-nil empty slice, so the search-once
	// guard holds even for empty result sets.
	SearchResults []ai.SearchResult

	// ResearchNotes is produced by the research stage and consumed by
	// synthesis.
	ResearchNotes string

	// Sources is derived once from SearchResults with placeholder defaults
	// for missing fields. len(Sources) always equals len(SearchResults)
	// once both are set.
	Sources []ai.Source

	// SynthesizedResearch is produced by synthesis and consumed by answer
	// drafting.
	SynthesizedResearch string

	// FinalAnswer is produced by answer drafting; its presence marks the
	// run as complete.
	FinalAnswer string

	// Messages is the append-only history of lifecycle notices. System
	// messages record workflow events, assistant messages record stage
	// completions.
	Messages []ai.Message

	// Phase is the next stage to enter.
	Phase Phase
}

// NewState creates the state for one research run.
func NewState(query string) *State {
	return &State{
		Query: query,
		Phase: PhaseResearch,
	}
}

// AppendMessage adds a lifecycle notice to the message history. Messages
// are only ever appended, never rewritten.
func (s *State) AppendMessage(role ai.Role, content string) {
	s.Messages = append(s.Messages, ai.Message{
		ID:      ai.GenerateMessageID(),
		Role:    role,
		Content: content,
	})
}

// WorkflowPath returns the contents of all assistant-role messages in
// order: a human-readable trace of completed phases.
func (s *State) WorkflowPath() []string {
	var path []string
	for _, msg := range s.Messages {
		if msg.Role == ai.RoleAssistant {
			path = append(path, msg.Content)
		}
	}
	return path
}

// deriveSources builds the citation list from raw search results,
// substituting placeholders for absent fields.
func deriveSources(results []ai.SearchResult) []ai.Source {
	sources := make([]ai.Source, 0, len(results))
	for _, r := range results {
		source := ai.Source{
			Title:         r.Title,
			URL:           r.URL,
			PublishedDate: r.PublishedDate,
		}
		if source.Title == "" {
			source.Title = UnknownTitle
		}
		if source.URL == "" {
			source.URL = UnknownURL
		}
		if source.PublishedDate == "" {
			source.PublishedDate = UnknownDate
		}
		sources = append(sources, source)
	}
	return sources
}
