// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package failure

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Capture translates an error returned by the engine into a Failure.
// It returns nil for a nil error.
//
// Capture must run before the thread that produced err is reused; the call
// stack of an evaluation error is only as good as the thread state it was
// recorded from.
func Capture(err error) *Failure {
	if err == nil {
		return nil
	}

	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return captureEval(evalErr)
	}

	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		return &Failure{
			Category: CATEGORY_SYNTAX,
			Type:     typeOf(syntaxErr),
			Message:  syntaxErr.Msg,
			Position: positionOf(syntaxErr.Pos),
		}
	}

	var resolveErrs resolve.ErrorList
	if errors.As(err, &resolveErrs) && len(resolveErrs) > 0 {
		return captureResolve(resolveErrs)
	}

	return &Failure{
		Category: CATEGORY_INTERNAL,
		Type:     typeOf(err),
		Message:  err.Error(),
	}
}

func captureEval(err *starlark.EvalError) (fail *Failure) {
	fail = &Failure{
		Category:  CATEGORY_EVAL,
		Type:      typeOf(err),
		Message:   err.Msg,
		Backtrace: err.Backtrace(),
	}

	for depth := range len(err.CallStack) {
		frame := err.CallStack.At(depth)
		pos := positionOf(frame.Pos)
		fail.CallStack = append(fail.CallStack, Frame{
			FunctionName: frame.Name,
			Position:     pos,
		})
		// Built-in frames have no position; the failure site is the
		// innermost Starlark frame, i.e. the call site of the built-in.
		if fail.Position == nil && pos != nil {
			fail.Position = pos
		}
	}

	return
}

func captureResolve(errs resolve.ErrorList) (fail *Failure) {
	first := errs[0]
	fail = &Failure{
		Category: CATEGORY_RESOLVE,
		Type:     typeOf(errs),
		Message:  first.Msg,
		Position: positionOf(first.Pos),
	}

	if len(errs) > 1 {
		lines := make([]string, 0, len(errs))
		for _, err := range errs {
			lines = append(lines, err.Error())
		}
		fail.Backtrace = strings.Join(lines, "\n")
	}

	return
}

// positionOf returns nil for positions the engine could not attribute.
// The column is copied as-is so that Validate can reject a bad one.
func positionOf(pos syntax.Position) *Position {
	if !pos.IsValid() || pos.Line < 1 {
		return nil
	}

	return &Position{
		Filename: pos.Filename(),
		Line:     int(pos.Line),
		Column:   int(pos.Col),
	}
}

func typeOf(err error) string {
	return fmt.Sprintf("%T", err)
}
