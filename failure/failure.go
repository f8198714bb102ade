// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package failure

import (
	"fmt"
)

// Position is a point in script source. Line and Column are 1-based.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (pos Position) String() string {
	return fmt.Sprintf("%v:%d:%d", pos.Filename, pos.Line, pos.Column)
}

// Frame is one call frame active at the time of failure.
type Frame struct {
	FunctionName string    // Name of the callable, or the implicit top-level name.
	Position     *Position // Current position in the callable, nil for built-ins.
}

// Failure is the engine-side description of a failed evaluation.
type Failure struct {
	Category  Category  // Classification of the failure.
	Type      string    // Engine error type, e.g. "*starlark.EvalError".
	Message   string    // Raw diagnostic text.
	Position  *Position // Failure site, nil when the engine had no location.
	CallStack []Frame   // Active frames, innermost first.
	Backtrace string    // Rendered traceback, possibly empty.
}

// Function returns the innermost function name, or "" with no frames.
func (fail *Failure) Function() string {
	if len(fail.CallStack) == 0 {
		return ""
	}

	return fail.CallStack[0].FunctionName
}

// Validate checks the failure against the engine contract.
func (fail *Failure) Validate() (err error) {
	defer func() {
		if err != nil {
			err = &ErrContract{Type: fail.Type, Err: err}
		}
	}()

	if !fail.Category.Valid() {
		err = fmt.Errorf("%w: %v", ErrCategoryUnknown, fail.Category)
		return
	}

	if len(fail.Message) == 0 {
		err = ErrMessageEmpty
		return
	}

	if pos := fail.Position; pos != nil && (pos.Line < 1 || pos.Column < 1) {
		err = fmt.Errorf("%w: %v", ErrPositionInvalid, pos)
		return
	}

	return
}
