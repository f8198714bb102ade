// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"maps"
	"sync"

	"go.starlark.net/starlark"
)

// DefaultFilename is used for calls that do not name their source.
const DefaultFilename = "<expr>"

// PrintFunc receives the output of the Starlark print() builtin.
type PrintFunc func(msg string)

// LoadFunc resolves a load() statement. parent is the filename of the
// loading script. The globals of the returned instance become the module.
type LoadFunc func(module string, parent string) (*Starlark, error)

// Starlark is an interpreter instance with persistent globals.
type Starlark struct {
	Verbose bool      // If set, logs each call and its failure.
	Print   PrintFunc // Receives print() output. Nil uses the engine default.
	Load    LoadFunc  // Resolves load(). Nil rejects every load.

	options     Options
	predeclared starlark.StringDict

	mutex   sync.RWMutex
	globals starlark.StringDict
}

// NewStarlark creates an instance with the given dialect.
func NewStarlark(opts Options) (st *Starlark, err error) {
	predeclared, err := opts.predeclared()
	if err != nil {
		return
	}

	st = &Starlark{
		options:     opts,
		predeclared: predeclared,
		globals:     starlark.StringDict{},
	}

	return
}

// Options returns the dialect of the instance.
func (st *Starlark) Options() Options {
	opts := st.options
	opts.Modules = append([]string(nil), opts.Modules...)
	return opts
}

// Globals returns a copy of the global bindings.
func (st *Starlark) Globals() starlark.StringDict {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	return maps.Clone(st.globals)
}

// Global returns a single global binding.
func (st *Starlark) Global(name string) (value starlark.Value, ok bool) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	value, ok = st.globals[name]
	return
}

// SetGlobals adds or replaces global bindings.
func (st *Starlark) SetGlobals(dict starlark.StringDict) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	maps.Copy(st.globals, dict)
}

// DeleteGlobal removes a global binding, reporting whether it existed.
func (st *Starlark) DeleteGlobal(name string) (ok bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	_, ok = st.globals[name]
	delete(st.globals, name)
	return
}
