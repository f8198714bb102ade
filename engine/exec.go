// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"context"
	"log"
	"maps"

	"go.starlark.net/starlark"

	"github.com/ezrec/starbridge/bridge"
	"github.com/ezrec/starbridge/internal"
)

// call is the execution context of a single Eval or Exec.
type call struct {
	filename string
	thread   *starlark.Thread
	env      starlark.StringDict
	stop     func() bool
}

// begin prepares a call. The caller must hold st.mutex and invoke end.
func (st *Starlark) begin(ctx context.Context, filename string) (c *call) {
	if len(filename) == 0 {
		filename = DefaultFilename
	}

	c = &call{
		filename: filename,
		thread:   &starlark.Thread{Name: filename},
		// Globals shadow predeclared names.
		env: maps.Collect(internal.IterSeq2Concat(maps.All(st.predeclared), maps.All(st.globals))),
	}

	if st.Print != nil {
		c.thread.Print = func(_ *starlark.Thread, msg string) {
			st.Print(msg)
		}
	}

	c.thread.Load = func(_ *starlark.Thread, module string) (starlark.StringDict, error) {
		return st.load(module, filename)
	}

	if st.options.MaxSteps > 0 {
		c.thread.SetMaxExecutionSteps(st.options.MaxSteps)
	}

	if ctx.Err() != nil {
		c.thread.Cancel(context.Cause(ctx).Error())
	} else if ctx.Done() != nil {
		c.stop = context.AfterFunc(ctx, func() {
			c.thread.Cancel(context.Cause(ctx).Error())
		})
	}

	if st.Verbose {
		log.Printf("engine: %v: begin", filename)
	}

	return
}

// end releases the call and bridges err.
func (st *Starlark) end(c *call, err error) error {
	if c.stop != nil {
		c.stop()
	}

	err = bridge.FromError(err)
	if st.Verbose && err != nil {
		log.Printf("engine: %v: %v", c.filename, err)
	}

	return err
}

func (st *Starlark) load(module string, parent string) (dict starlark.StringDict, err error) {
	if st.Load == nil {
		err = &ErrModule{Module: module, Err: ErrLoadMissing}
		return
	}

	loaded, err := st.Load(module, parent)
	if err != nil {
		return
	}

	if loaded == nil {
		err = &ErrModule{Module: module, Err: ErrLoadNil}
		return
	}

	// An instance still executing up the load chain holds its lock.
	if loaded == st || !loaded.mutex.TryRLock() {
		err = &ErrModule{Module: module, Err: ErrLoadCycle}
		return
	}
	defer loaded.mutex.RUnlock()

	if st.Verbose {
		log.Printf("engine: %v: load %v", parent, module)
	}

	dict = maps.Clone(loaded.globals)
	return
}

// Eval evaluates a single expression against the globals.
// An empty filename selects DefaultFilename.
func (st *Starlark) Eval(ctx context.Context, filename string, expr string) (value starlark.Value, err error) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	c := st.begin(ctx, filename)
	value, err = starlark.EvalOptions(st.options.fileOptions(), c.thread, c.filename, expr, c.env)
	err = st.end(c, err)
	if err != nil {
		value = nil
	}

	return
}

// Exec executes a file of statements. Top-level bindings it makes are added
// to the globals, including those made before a runtime failure.
// An empty filename selects DefaultFilename.
func (st *Starlark) Exec(ctx context.Context, filename string, src string) (err error) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	c := st.begin(ctx, filename)
	globals, err := starlark.ExecFileOptions(st.options.fileOptions(), c.thread, c.filename, src, c.env)
	maps.Copy(st.globals, globals)

	return st.end(c, err)
}
