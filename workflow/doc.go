// Package workflow implements the deep-research pipeline as a linear
// four-phase state machine: start, research, synthesis, and answer drafting.
//
// One [State] value is created per query and owned exclusively by its run.
// Each stage reads the fields produced by the stages before it, writes its
// own output fields, appends a completion notice to the message history,
// and advances the phase tag. The [Engine] dispatches on the phase tag
// until the run reaches [PhaseComplete].
//
// # State Model
//
// State is passed by pointer and mutated in place by exactly one stage at
// a time:
//
//	research   SearchResults, ResearchNotes, Sources  → PhaseSynthesis
//	synthesis  SynthesizedResearch                    → PhaseAnswer
//	answer     FinalAnswer                            → PhaseComplete
//
// # Basic Usage
//
//	pipeline := workflow.NewPipeline(completer, searcher)
//	result, err := pipeline.Run(ctx, "How do tides work?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FinalAnswer)
//	for _, phase := range result.WorkflowPath {
//	    fmt.Println(phase)
//	}
//
// Failures are not retried: any stage error aborts the run and propagates
// to the caller wrapped in a [*StageError].
package workflow
