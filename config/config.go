package config

//go:generate go run ../tools/schema-generator

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/grovetools/gametidy/internal/logging"
	"github.com/grovetools/gametidy/internal/transcript"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "gtidy.yml"

// TidyConfig defines the input, output, and discard policy of a tidy run.
type TidyConfig struct {
	// Input is the transcript to read.
	// "bobby_game.txt" (default).
	Input string `yaml:"input,omitempty"`

	// Output is the file written with one turn per line. It is truncated on each run.
	// "bobby_game_tidy.txt" (default).
	Output string `yaml:"output,omitempty"`

	// DropHead is the number of leading segments discarded as a preamble.
	// 1 (default).
	DropHead *int `yaml:"drop_head,omitempty"`

	// DropTail is the number of trailing segments discarded as an incomplete fragment.
	// 1 (default).
	DropTail *int `yaml:"drop_tail,omitempty"`
}

// WatchConfig defines settings for the watch command.
type WatchConfig struct {
	// Debounce is how long the input must stay quiet before a re-run.
	// "300ms" (default).
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// LoggingConfig defines diagnostic output settings.
type LoggingConfig struct {
	// Level is a logrus level name. "info" (default).
	Level string `yaml:"level,omitempty"`

	// Format is "text" (default) or "json".
	Format string `yaml:"format,omitempty"`
}

// Config is the top-level configuration structure for gtidy.
type Config struct {
	Tidy    TidyConfig    `yaml:"tidy,omitempty"`
	Watch   WatchConfig   `yaml:"watch,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	policy := transcript.DefaultPolicy()
	return &Config{
		Tidy: TidyConfig{
			Input:    transcript.DefaultInputFile,
			Output:   transcript.DefaultOutputFile,
			DropHead: &policy.DropHead,
			DropTail: &policy.DropTail,
		},
		Watch:   WatchConfig{Debounce: 300 * time.Millisecond},
		Logging: LoggingConfig{Level: "info", Format: logging.FormatText},
	}
}

// Load reads the YAML file at path over the defaults. An empty path means
// DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Policy returns the discard policy, falling back to the defaults for unset counts.
func (c *Config) Policy() transcript.Policy {
	policy := transcript.DefaultPolicy()
	if c.Tidy.DropHead != nil {
		policy.DropHead = *c.Tidy.DropHead
	}
	if c.Tidy.DropTail != nil {
		policy.DropTail = *c.Tidy.DropTail
	}
	return policy
}

// Validate checks values that would fail later at run time.
func (c *Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return err
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}
	switch c.Logging.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Logging.Format)
	}
	return nil
}
