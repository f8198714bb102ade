package failure

import (
	"errors"

	"github.com/ezrec/starbridge/translate"
)

var f = translate.From

var (
	ErrCategoryUnknown = errors.New(f("category unknown"))
	ErrMessageEmpty    = errors.New(f("message empty"))
	ErrPositionInvalid = errors.New(f("position invalid"))
)

// ErrContract describes a Failure that breaks the engine contract.
type ErrContract struct {
	Type string // Engine error type of the offending failure.
	Err  error
}

func (err *ErrContract) Error() string {
	return f("%v: %v", err.Type, err.Err)
}

func (err *ErrContract) Unwrap() error {
	return err.Err
}
