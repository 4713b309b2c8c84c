package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "periodicdata.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://mirror.local"
format = "markdown"
concurrency = 8
expand_discovery = true
sections = ["Overview", "Reactivity"]

[log]
level = "debug"
json = true
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://mirror.local", c.BaseURL)
	assert.Equal(t, "markdown", c.Format)
	assert.Equal(t, 8, c.Concurrency)
	assert.True(t, c.ExpandDiscovery)
	assert.Equal(t, []string{"Overview", "Reactivity"}, c.Sections)
	assert.Equal(t, LogConfig{Level: "debug", JSON: true}, c.Log)
	// Unset keys keep their defaults.
	assert.Equal(t, 2.0, c.Rate)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `colour = "blue"`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `concurrency = "many"`))
	assert.Error(t, err)
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "json", "")
	fs.Int("concurrency", 4, "")
	fs.Bool("expand", false, "")
	require.NoError(t, fs.Parse([]string{"--format", "pdf", "--expand"}))

	c := DefaultConfig()
	c.Concurrency = 16
	ApplyFlags(&c, fs)

	assert.Equal(t, "pdf", c.Format)
	assert.True(t, c.ExpandDiscovery)
	assert.Equal(t, 16, c.Concurrency, "unset flag must not override the file")
}

func TestConfig_Validate(t *testing.T) {
	c := DefaultConfig()
	c.Format = "yaml"
	assert.ErrorIs(t, c.Validate(), ErrUnknownFormat)

	c = DefaultConfig()
	c.Concurrency = 0
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Rate = -1
	assert.Error(t, c.Validate())
}

func TestNewLogger(t *testing.T) {
	_, err := NewLogger(os.Stderr, "debug", true)
	assert.NoError(t, err)

	_, err = NewLogger(os.Stderr, "loud", false)
	assert.Error(t, err)
}
