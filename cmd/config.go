package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/gaurav-prasanna/periodicdata/crawl"
)

// ErrUnknownFormat is returned for an output format other than json,
// markdown or pdf.
var ErrUnknownFormat = errors.New("unknown output format")

// Config is the file-backed configuration. Every field can also be set
// with the flag of the same name; an explicitly set flag wins.
type Config struct {
	BaseURL         string    `toml:"base_url"`
	OutputDir       string    `toml:"output_dir"`
	Format          string    `toml:"format"`
	Concurrency     int       `toml:"concurrency"`
	Rate            float64   `toml:"rate"`
	Burst           int       `toml:"burst"`
	UserAgent       string    `toml:"user_agent"`
	ExpandDiscovery bool      `toml:"expand_discovery"`
	Sections        []string  `toml:"sections"`
	Log             LogConfig `toml:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		BaseURL:     crawl.DefaultBaseURL,
		Format:      "json",
		Concurrency: 4,
		Rate:        2,
		Burst:       1,
		Log:         LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns
// the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// ApplyFlags copies every explicitly set flag in fs onto c.
func ApplyFlags(c *Config, fs *pflag.FlagSet) {
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("base_url") {
		c.BaseURL, _ = fs.GetString("base_url")
	}
	if changed("output_dir") {
		c.OutputDir, _ = fs.GetString("output_dir")
	}
	if changed("format") {
		c.Format, _ = fs.GetString("format")
	}
	if changed("concurrency") {
		c.Concurrency, _ = fs.GetInt("concurrency")
	}
	if changed("rate") {
		c.Rate, _ = fs.GetFloat64("rate")
	}
	if changed("user_agent") {
		c.UserAgent, _ = fs.GetString("user_agent")
	}
	if changed("expand") {
		c.ExpandDiscovery, _ = fs.GetBool("expand")
	}
	if changed("log-level") {
		c.Log.Level, _ = fs.GetString("log-level")
	}
	if changed("log-json") {
		c.Log.JSON, _ = fs.GetBool("log-json")
	}
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Format {
	case "json", "markdown", "pdf":
	default:
		return fmt.Errorf("%w: %q (want json, markdown or pdf)", ErrUnknownFormat, c.Format)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Rate < 0 {
		return fmt.Errorf("rate must not be negative, got %g", c.Rate)
	}
	return nil
}
