package wm

import (
	"errors"
	"fmt"
)

// ErrLookupMiss means neither the active window nor the active workspace
// could be determined, so there is nowhere to restore a window to.
var ErrLookupMiss = errors.New("failed to get active workspace or active window")

// TransitionError reports which step of a focus or unminimize sequence
// failed. Steps after it were not issued.
type TransitionError struct {
	Step string
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
