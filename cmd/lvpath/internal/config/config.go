// Package config loads the lvpath CLI configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Heuristic names accepted by Search.Heuristic.
var Heuristics = []string{"zero", "diagonal", "octile", "chebyshev", "manhattan", "euclidean"}

// Config is the top-level configuration file.
type Config struct {
	// Grid controls the generated map.
	Grid GridConfig `yaml:"grid"`

	// Search controls the pathfinding run.
	Search SearchConfig `yaml:"search"`

	// Log controls diagnostic output on stderr.
	Log LogConfig `yaml:"log"`
}

// GridConfig describes a random grid.
type GridConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Density      float64 `yaml:"density"`
	Seed         uint64  `yaml:"seed"`
	Conn         int     `yaml:"conn"`
	CardinalCost float64 `yaml:"cardinal_cost"`
	DiagonalCost float64 `yaml:"diagonal_cost"`
}

// SearchConfig describes one search.
type SearchConfig struct {
	Heuristic string        `yaml:"heuristic"`
	MaxSteps  int           `yaml:"max_steps"`
	Timeout   time.Duration `yaml:"timeout"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:        32,
			Height:       16,
			Density:      0.25,
			Seed:         1,
			Conn:         8,
			CardinalCost: 1,
			DiagonalCost: 1.4142135623730951,
		},
		Search: SearchConfig{
			Heuristic: "octile",
			Timeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path yields the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Parse decodes YAML into cfg. Keys missing from data keep their current
// values; unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalid, g.Width, g.Height)
	case !(g.Density >= 0 && g.Density <= 1):
		return fmt.Errorf("%w: density %v not in [0,1]", ErrInvalid, g.Density)
	case g.Conn != 4 && g.Conn != 8:
		return fmt.Errorf("%w: conn %d, want 4 or 8", ErrInvalid, g.Conn)
	case !(g.CardinalCost >= 0) || !(g.DiagonalCost >= 0):
		return fmt.Errorf("%w: negative step cost", ErrInvalid)
	}

	if !slices.Contains(Heuristics, c.Search.Heuristic) {
		return fmt.Errorf("%w: heuristic %q, want one of %v", ErrInvalid, c.Search.Heuristic, Heuristics)
	}
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d", ErrInvalid, c.Search.MaxSteps)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: timeout %v", ErrInvalid, c.Search.Timeout)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q, want text or json", ErrInvalid, c.Log.Format)
	}

	return nil
}
