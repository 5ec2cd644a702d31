package lifecycle

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the orchestrator and its ports.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrPrecondition      = errors.New("precondition not met")
	ErrNothingToCommit   = errors.New("nothing to commit")
	ErrAuthentication    = errors.New("authentication required")
	ErrRemoteGone        = errors.New("remote resource not found")
)

// StepError reports which step of a transition failed. Steps that
// completed before it already have their effects persisted; re-invoking
// the transition resumes from the failed step.
type StepError struct {
	Transition Transition
	Step       Step
	Err        error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %s failed: %v", e.Transition, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
