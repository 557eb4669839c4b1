package workflow

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery indicates a run was requested with an empty query.
var ErrEmptyQuery = errors.New("workflow: query must not be empty")

// StageError wraps errors from stage execution.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("workflow: stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ModelInvocationError wraps a failed or empty completion from the
// language model backing a chain.
type ModelInvocationError struct {
	Chain string
	Err   error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("workflow: chain %q model invocation failed: %v", e.Chain, e.Err)
}

func (e *ModelInvocationError) Unwrap() error {
	return e.Err
}

// PreconditionError indicates a stage was entered without a field a prior
// stage should have produced. Under normal sequencing this cannot happen;
// it signals a programming defect, not a runtime condition to recover from.
type PreconditionError struct {
	Stage   string
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("workflow: stage %q entered without %s", e.Stage, e.Missing)
}
