package ferret

import "context"

// Completer is the language-model capability consumed by the workflow.
// Implementations live under provider/ and wrap a specific vendor SDK.
//
// Complete blocks until the model returns; callers wanting bounded latency
// should impose a deadline on ctx.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}

// Searcher is the web-search capability consumed by the workflow.
// Implementations live under search/.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}
