// Package ferret answers free-text questions by running a fixed deep-research
// pipeline: web search, research-note extraction, synthesis, and answer
// drafting, each language-model stage building on the one before it.
//
// The root package defines the shared vocabulary: conversation messages,
// search results, sources, and the two capability interfaces the pipeline
// consumes:
//
//   - [Completer]: a language model that turns a conversation into text
//   - [Searcher]: a web search provider returning ranked results
//
// The [github.com/spetersoncode/ferret/workflow] package contains the
// pipeline itself. Provider-backed implementations of the capability
// interfaces live under provider/ (Anthropic, OpenAI, Google) and search/
// (Tavily).
//
// # Basic Usage
//
//	completer := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	searcher := search.NewTavily(os.Getenv("TAVILY_API_KEY"))
//
//	pipeline := workflow.NewPipeline(completer, searcher)
//	result, err := pipeline.Run(ctx, "What is the capital of France?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FinalAnswer)
package ferret
