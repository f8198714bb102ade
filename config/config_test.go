package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/starbridge/engine"
)

func writeConfig(t *testing.T, name, text string) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0o644)
	assert.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	expected := engine.Options{
		While:     true,
		Recursion: true,
		MaxSteps:  5000,
		Modules:   []string{"json", "time"},
	}

	table := [](struct {
		name string
		text string
	}){
		{"dialect.yaml", "while: true\nrecursion: true\nmax_steps: 5000\nmodules: [json, time]\n"},
		{"dialect.YML", "while: true\nrecursion: true\nmax_steps: 5000\nmodules:\n  - json\n  - time\n"},
		{"dialect.toml", "while = true\nrecursion = true\nmax_steps = 5000\nmodules = [\"json\", \"time\"]\n"},
	}

	for _, entry := range table {
		opts, err := Load(writeConfig(t, entry.name, entry.text))
		assert.NoError(err, entry.name)
		assert.Equal(expected, opts, entry.name)
	}
}

func TestLoadEmpty(t *testing.T) {
	assert := assert.New(t)

	opts, err := Load(writeConfig(t, "empty.yaml", ""))
	assert.NoError(err)
	assert.Equal(engine.Options{}, opts)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(writeConfig(t, "dialect.json", "{}"))
	assert.ErrorIs(err, ErrFormatUnknown)

	_, err = Load(writeConfig(t, "bad.yaml", "modules: [nope]\n"))
	assert.ErrorIs(err, engine.ErrModuleUnknown)

	_, err = Load(writeConfig(t, "bad.toml", "while = \n"))
	var cfgErr *ErrConfig
	if assert.ErrorAs(err, &cfgErr) {
		assert.Contains(cfgErr.Path, "bad.toml")
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(EnvMaxSteps, "123")
	opts, err := Load(writeConfig(t, "steps.yaml", "max_steps: 5\n"))
	assert.NoError(err)
	assert.Equal(uint64(123), opts.MaxSteps)

	t.Setenv(EnvMaxSteps, "many")
	_, err = Load(writeConfig(t, "steps.yaml", "max_steps: 5\n"))
	assert.Error(err)
}
