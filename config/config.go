// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads engine options from YAML or TOML files.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/starbridge/engine"
	"github.com/ezrec/starbridge/translate"
)

var f = translate.From

var (
	ErrFormatUnknown = errors.New(f("config format unknown"))
)

// ErrConfig locates a configuration failure.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// EnvMaxSteps overrides Options.MaxSteps when set.
const EnvMaxSteps = "STARBRIDGE_MAX_STEPS"

// Load reads options from path. The format is chosen by extension:
// .yaml and .yml for YAML, .toml for TOML.
func Load(path string) (opts engine.Options, err error) {
	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	case ".toml":
		err = toml.Unmarshal(data, &opts)
	default:
		err = ErrFormatUnknown
	}
	if err != nil {
		return
	}

	err = applyEnv(&opts)
	if err != nil {
		return
	}

	err = opts.Validate()
	return
}

func applyEnv(opts *engine.Options) (err error) {
	val, ok := os.LookupEnv(EnvMaxSteps)
	if !ok {
		return
	}

	steps, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return
	}

	opts.MaxSteps = steps
	return
}
