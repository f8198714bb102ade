// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bridge

import (
	"fmt"

	"github.com/ezrec/starbridge/failure"
)

// Display renders the canonical exception text. Empty attributes are
// substituted in place; the layout is fixed.
func Display(filename, functionName string, line, column int, message string) string {
	return fmt.Sprintf("%s in %s:%d:%d: %s", filename, functionName, line, column, message)
}

// Bridge converts a captured failure into its exception kind.
// A failure that breaks the engine contract yields *ErrInvariant instead.
func Bridge(fail failure.Failure) (exc StarlarkError, err error) {
	err = fail.Validate()
	if err != nil {
		err = &ErrInvariant{Failure: fail, Err: err}
		return
	}

	base := Exception{
		kind:         fail.Category,
		message:      fail.Message,
		errorType:    fail.Type,
		functionName: fail.Function(),
		backtrace:    fail.Backtrace,
	}

	// Failure site only; frame positions are not surfaced.
	if pos := fail.Position; pos != nil {
		base.filename = pos.Filename
		base.line = pos.Line
		base.column = pos.Column
	}

	base.display = Display(base.filename, base.functionName, base.line, base.column, base.message)

	switch fail.Category {
	case failure.CATEGORY_SYNTAX:
		exc = &SyntaxError{base}
	case failure.CATEGORY_EVAL:
		exc = &EvalError{base}
	case failure.CATEGORY_RESOLVE:
		exc = &ResolveError{base}
	case failure.CATEGORY_INTERNAL:
		exc = &InternalError{base}
	default:
		// Validate admits only the closed set.
		panic(fmt.Sprintf("bridge: unclassified category %v", fail.Category))
	}

	return
}

// FromError captures err and bridges it. It returns nil for nil, a
// StarlarkError for an engine failure, or *ErrInvariant.
func FromError(err error) error {
	fail := failure.Capture(err)
	if fail == nil {
		return nil
	}

	exc, err := Bridge(*fail)
	if err != nil {
		return err
	}

	return exc
}
