// Package config loads the YAML configuration of a crucible run: where the
// path starts, which way it is heading, where it ends and which parts to
// solve. The zero-configuration defaults reproduce the standard puzzle.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// Policy names accepted in PartConfig.Policy.
const (
	PolicyBounded = "bounded"
	PolicyMinMax  = "minmax"
)

var (
	// ErrBadPart indicates a part whose run bounds contradict each other.
	ErrBadPart = errors.New("config: invalid part")
	// ErrBadTarget indicates a target with only one negative coordinate.
	ErrBadTarget = errors.New("config: target row and col must both be set or both be negative")
)

var validate = validator.New()

// Point is a YAML-friendly coordinate.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// PartConfig describes one search to run.
type PartConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Policy string `yaml:"policy" validate:"required,oneof=bounded minmax"`
	MinRun int    `yaml:"min_run" validate:"gte=0"`
	MaxRun int    `yaml:"max_run" validate:"gte=1"`
	// FreeStart lets a minmax part leave a "none" heading in any direction.
	FreeStart bool `yaml:"free_start"`
}

// Config is the top-level configuration.
type Config struct {
	Start Point `yaml:"start"`
	// Heading is a direction name understood by gridgraph.ParseDirection.
	Heading string `yaml:"heading" validate:"oneof=up down left right none"`
	// Target with a negative row and column means the bottom-right cell.
	Target   Point        `yaml:"target"`
	MaxCost  int64        `yaml:"max_cost" validate:"gte=0"`
	LogLevel string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	Parts    []PartConfig `yaml:"parts" validate:"required,min=1,dive"`
}

// Default returns the configuration of the standard puzzle.
func Default() Config {
	return Config{
		Start:    Point{Row: 0, Col: 0},
		Heading:  "down",
		Target:   Point{Row: -1, Col: -1},
		MaxCost:  0,
		LogLevel: "info",
		Parts: []PartConfig{
			{Name: "Part 1", Policy: PolicyBounded, MaxRun: dijkstra.DefaultMaxRun},
			{Name: "Part 2", Policy: PolicyMinMax, MinRun: dijkstra.DefaultMinRun, MaxRun: dijkstra.DefaultMaxRunLong},
		},
	}
}

// Load reads path on top of Default. An empty path or a missing file
// yields the defaults; an unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Heading = strings.ToLower(strings.TrimSpace(cfg.Heading))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks struct tags and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if (c.Target.Row < 0) != (c.Target.Col < 0) {
		return fmt.Errorf("%w: got row %d, col %d", ErrBadTarget, c.Target.Row, c.Target.Col)
	}
	for i, p := range c.Parts {
		if p.Policy == PolicyMinMax && p.MinRun > p.MaxRun {
			return fmt.Errorf("%w: parts[%d] %q: min_run %d > max_run %d", ErrBadPart, i, p.Name, p.MinRun, p.MaxRun)
		}
	}

	return nil
}

// Direction returns the parsed heading.
func (c Config) Direction() (gridgraph.Direction, error) {
	return gridgraph.ParseDirection(c.Heading)
}

// TargetCoordinate returns the configured target, or nil when it should
// default to the grid's bottom-right cell. Validate rejects a target with
// only one negative coordinate.
func (c Config) TargetCoordinate() *gridgraph.Coordinate {
	if c.Target.Row < 0 && c.Target.Col < 0 {
		return nil
	}

	return &gridgraph.Coordinate{Row: c.Target.Row, Col: c.Target.Col}
}

// CruciblePart converts p into a runnable part.
func (p PartConfig) CruciblePart() crucible.Part {
	var pol dijkstra.Policy
	switch p.Policy {
	case PolicyMinMax:
		pol = dijkstra.MinMaxRun{Min: p.MinRun, Max: p.MaxRun, FreeStart: p.FreeStart}
	default:
		pol = dijkstra.BoundedRun{Max: p.MaxRun}
	}

	return crucible.Part{Name: p.Name, Policy: pol}
}

// Options builds crucible.Options from c. The logger is left for the
// caller to set.
func (c Config) Options() (crucible.Options, error) {
	dir, err := c.Direction()
	if err != nil {
		return crucible.Options{}, err
	}
	parts := make([]crucible.Part, 0, len(c.Parts))
	for _, p := range c.Parts {
		parts = append(parts, p.CruciblePart())
	}

	return crucible.Options{
		Parts:   parts,
		Start:   gridgraph.Coordinate{Row: c.Start.Row, Col: c.Start.Col},
		Heading: dir,
		Target:  c.TargetCoordinate(),
		MaxCost: c.MaxCost,
	}, nil
}
