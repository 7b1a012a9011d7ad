package planner

import (
	"errors"
	"fmt"
)

// ErrNoMemoryBank means the memory folder has not been initialized yet.
var ErrNoMemoryBank = errors.New("no memory-bank found; run 'taraplan init' first")

// ErrNeedsClarification means the task description contains placeholders
// or was abandoned by the user, and the plan must not be generated.
var ErrNeedsClarification = errors.New("task description needs clarification")

// ResponseError wraps an init response that could not be used: either the
// JSON failed to parse or it proposed no files. Raw carries the untouched
// model output so the user can inspect it.
type ResponseError struct {
	Raw string
	Err error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("the model did not return valid JSON: %v", e.Err)
	}
	return "no files were provided in the JSON response"
}

func (e *ResponseError) Unwrap() error { return e.Err }
