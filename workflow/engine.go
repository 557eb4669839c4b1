package workflow

import "context"

// Engine drives one run of the state machine. The start stage always runs
// first, then stages are dispatched on the state's phase tag until the run
// reaches PhaseComplete. Each stage sets the phase to its successor, so the
// dispatch loop is the routing table: research → synthesis → answer →
// complete. A phase with no registered stage terminates the run.
type Engine struct {
	start  Stage
	stages map[Phase]Stage
}

// NewEngine creates an engine from an entry stage and a phase-keyed stage set.
func NewEngine(start Stage, stages map[Phase]Stage) *Engine {
	return &Engine{start: start, stages: stages}
}

// Run executes stages sequentially until the state is complete. Execution
// is strictly linear: a stage fully finishes, including its external calls,
// before the next is dispatched. Any stage failure aborts the run with a
// *StageError; nothing is retried and no partial result is salvaged.
func (e *Engine) Run(ctx context.Context, state *State) error {
	if err := e.start.Run(ctx, state); err != nil {
		return &StageError{Stage: e.start.Name(), Err: err}
	}

	for state.Phase != PhaseComplete {
		stage, ok := e.stages[state.Phase]
		if !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return &StageError{Stage: stage.Name(), Err: err}
		}
		if err := stage.Run(ctx, state); err != nil {
			return &StageError{Stage: stage.Name(), Err: err}
		}
	}
	return nil
}
