package ferret

import "errors"

// ErrEmptyCompletion is returned when a Completer succeeds but produces
// no content. The workflow treats this the same as a failed call.
var ErrEmptyCompletion = errors.New("completion returned no content")
