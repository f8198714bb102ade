package engine

import (
	"slices"

	starlarkjson "go.starlark.net/lib/json"
	starlarkmath "go.starlark.net/lib/math"
	starlarktime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// Options selects the Starlark dialect and limits of an instance.
type Options struct {
	Set               bool `yaml:"set" toml:"set"`                                 // Allow set() and set literals.
	While             bool `yaml:"while" toml:"while"`                             // Allow while loops.
	TopLevelControl   bool `yaml:"top_level_control" toml:"top_level_control"`     // Allow if/for/while at top level.
	GlobalReassign    bool `yaml:"global_reassign" toml:"global_reassign"`         // Allow reassigning top-level names.
	Recursion         bool `yaml:"recursion" toml:"recursion"`                     // Allow recursive calls.
	LoadBindsGlobally bool `yaml:"load_binds_globally" toml:"load_binds_globally"` // Bind load() names as globals.

	MaxSteps uint64   `yaml:"max_steps" toml:"max_steps"` // Cancel after this many steps, 0 for unlimited.
	Modules  []string `yaml:"modules" toml:"modules"`     // Predeclared library modules.
}

// Modules that may be listed in Options.Modules.
var modules = map[string]starlark.Value{
	"json": starlarkjson.Module,
	"math": starlarkmath.Module,
	"time": starlarktime.Module,
}

// ModuleNames returns the names accepted in Options.Modules.
func ModuleNames() []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (opts *Options) fileOptions() *syntax.FileOptions {
	return &syntax.FileOptions{
		Set:               opts.Set,
		While:             opts.While,
		TopLevelControl:   opts.TopLevelControl,
		GlobalReassign:    opts.GlobalReassign,
		Recursion:         opts.Recursion,
		LoadBindsGlobally: opts.LoadBindsGlobally,
	}
}

// predeclared returns the names visible to every script of the instance.
func (opts *Options) predeclared() (dict starlark.StringDict, err error) {
	dict = starlark.StringDict{
		"struct": starlark.NewBuiltin("struct", starlarkstruct.Make),
	}

	for _, name := range opts.Modules {
		module, ok := modules[name]
		if !ok {
			err = &ErrModule{Module: name, Err: ErrModuleUnknown}
			return
		}
		dict[name] = module
	}

	return
}

// Validate checks the options without building an instance.
func (opts *Options) Validate() (err error) {
	_, err = opts.predeclared()
	return
}
