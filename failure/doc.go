// Package failure models a Starlark failure as the host sees it before it is
// bridged into an exception.
//
// A Failure is captured from a go.starlark.net error at the moment the engine
// returns it, while the call stack recorded in the error is still attached.
// The model is a closed set of categories (syntax, eval, resolve, internal),
// an optional failure position, the call stack innermost first, and the
// engine's rendered backtrace.
package failure
