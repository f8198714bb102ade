package bridge

import (
	"errors"

	"github.com/ezrec/starbridge/failure"
	"github.com/ezrec/starbridge/translate"
)

var f = translate.From

var (
	// ErrStarlark matches every bridged exception under errors.Is.
	ErrStarlark = errors.New(f("starlark error"))
)

// ErrInvariant reports a failure the bridge refused to convert.
type ErrInvariant struct {
	Failure failure.Failure // Copy of the offending failure.
	Err     error
}

func (err *ErrInvariant) Error() string {
	return f("bridge invariant: %v", err.Err)
}

func (err *ErrInvariant) Unwrap() error {
	return err.Err
}
