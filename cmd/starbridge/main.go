// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/starbridge/bridge"
	"github.com/ezrec/starbridge/config"
	"github.com/ezrec/starbridge/engine"
)

func main() {
	var cfg string
	var expr string
	var verbose bool

	flag.StringVar(&cfg, "c", "", ".yaml or .toml dialect configuration")
	flag.StringVar(&expr, "e", "", "Expression to evaluate after the files")
	flag.BoolVar(&verbose, "v", false, "Verbose mode, prints backtraces")

	flag.Parse()

	if flag.NArg() == 0 && len(expr) == 0 {
		log.Fatalf("%v: Nothing to do; give .star files or -e", os.Args[0])
	}

	opts := engine.Options{}
	if len(cfg) != 0 {
		var err error
		opts, err = config.Load(cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	st, err := engine.NewStarlark(opts)
	if err != nil {
		log.Fatal(err)
	}
	st.Verbose = verbose
	st.Print = func(msg string) {
		fmt.Println(msg)
	}
	st.Load = func(module string, parent string) (*engine.Starlark, error) {
		return loadFile(opts, module, verbose, map[string]bool{parent: true})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, path := range flag.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}

		err = st.Exec(ctx, path, string(src))
		if err != nil {
			fail(err, verbose)
		}
	}

	if len(expr) != 0 {
		value, err := st.Eval(ctx, "", expr)
		if err != nil {
			fail(err, verbose)
		}
		fmt.Println(value.String())
	}
}

// loadFile executes a module in its own instance. loading holds the files
// currently being loaded.
func loadFile(opts engine.Options, path string, verbose bool, loading map[string]bool) (st *engine.Starlark, err error) {
	if loading[path] {
		err = engine.ErrLoadCycle
		return
	}
	loading[path] = true
	defer delete(loading, path)

	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	st, err = engine.NewStarlark(opts)
	if err != nil {
		return
	}
	st.Verbose = verbose
	st.Load = func(module string, parent string) (*engine.Starlark, error) {
		return loadFile(opts, module, verbose, loading)
	}

	err = st.Exec(context.Background(), path, string(src))
	return
}

func fail(err error, verbose bool) {
	var exc bridge.StarlarkError
	if verbose && errors.As(err, &exc) && len(exc.Backtrace()) != 0 {
		fmt.Fprintln(os.Stderr, exc.Backtrace())
	}
	log.Fatal(err)
}
