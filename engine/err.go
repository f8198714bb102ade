package engine

import (
	"errors"

	"github.com/ezrec/starbridge/translate"
)

var f = translate.From

var (
	ErrModuleUnknown = errors.New(f("module unknown"))
	ErrLoadMissing   = errors.New(f("load not configured"))
	ErrLoadCycle     = errors.New(f("load cycle"))
	ErrLoadNil       = errors.New(f("load returned no module"))
)

// ErrModule names the offending module.
type ErrModule struct {
	Module string
	Err    error
}

func (err *ErrModule) Error() string {
	return f("module %v: %v", err.Module, err.Err)
}

func (err *ErrModule) Unwrap() error {
	return err.Err
}
