package interview

import (
	"errors"
	"fmt"
)

// ErrTurnLimitReached signals that the session has exhausted its trainee
// turn budget and moved to awaiting judgment.
var ErrTurnLimitReached = errors.New("turn limit reached, session awaits judgment")

// InvalidStateError reports an operation attempted in a state that does not
// permit it.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Op, e.State)
}

// GenerationError reports a failed patient reply. The trainee turn that
// triggered the generation stays recorded; resubmitting retries the reply
// without duplicating the turn.
type GenerationError struct {
	TurnSequence int
	Err          error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating patient reply to turn %d: %v", e.TurnSequence, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
