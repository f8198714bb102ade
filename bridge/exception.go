// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package bridge

import (
	"github.com/ezrec/starbridge/failure"
)

// StarlarkError is implemented by every bridged exception kind.
type StarlarkError interface {
	error
	Kind() failure.Category
	Message() string
	ErrorType() string
	Filename() string
	Line() int
	Column() int
	FunctionName() string
	Backtrace() string

	exception() *Exception
}

// Exception holds the attributes common to all kinds. Fields are set once by
// Bridge and never change. Only values returned by Bridge or FromError are
// meaningful; a kind built directly, e.g. &EvalError{}, has every attribute
// empty and an empty Error().
type Exception struct {
	kind         failure.Category
	message      string
	errorType    string
	filename     string
	line         int
	column       int
	functionName string
	backtrace    string
	display      string
}

// Error returns the canonical display string.
func (exc *Exception) Error() string { return exc.display }

// Is matches ErrStarlark.
func (exc *Exception) Is(target error) bool { return target == ErrStarlark }

// Kind returns the failure category.
func (exc *Exception) Kind() failure.Category { return exc.kind }

// Message returns the raw diagnostic text.
func (exc *Exception) Message() string { return exc.message }

// ErrorType returns the engine error type, e.g. "*starlark.EvalError".
func (exc *Exception) ErrorType() string { return exc.errorType }

// Filename of the failure site, or "".
func (exc *Exception) Filename() string { return exc.filename }

// Line of the failure site, or 0.
func (exc *Exception) Line() int { return exc.line }

// Column of the failure site, or 0.
func (exc *Exception) Column() int { return exc.column }

// FunctionName of the innermost frame, or "".
func (exc *Exception) FunctionName() string { return exc.functionName }

// Backtrace rendered by the engine, or "".
func (exc *Exception) Backtrace() string { return exc.backtrace }

func (exc *Exception) exception() *Exception { return exc }

// SyntaxError is a script that failed to parse.
type SyntaxError struct{ Exception }

// EvalError is a failure during execution.
type EvalError struct{ Exception }

// ResolveError is a script that failed name resolution.
type ResolveError struct{ Exception }

// InternalError is any other engine failure.
type InternalError struct{ Exception }
