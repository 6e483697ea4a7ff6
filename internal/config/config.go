package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/coordsim/internal/coord"
	"github.com/san-kum/coordsim/internal/geom"
	"github.com/san-kum/coordsim/internal/transform"
)

const (
	UnitsRadians = "radians"
	UnitsDegrees = "degrees"

	SystemCartesian   = "cartesian"
	SystemCylindrical = "cylindrical"
	SystemSpherical   = "spherical"

	DefaultLogLevel = "info"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a transform script: a start point and the steps to apply to it.
type Config struct {
	Name     string       `yaml:"name"`
	Units    string       `yaml:"units"`
	LogLevel string       `yaml:"log_level"`
	Start    StartConfig  `yaml:"start"`
	Steps    []StepConfig `yaml:"steps"`
}

// StartConfig gives the start point in one coordinate system. Coords are
// (x, y, z), (r, phi, z) or (rho, theta, phi).
type StartConfig struct {
	System string    `yaml:"system"`
	Coords []float64 `yaml:"coords"`
}

// StepConfig is one transform. Rotations use Axis and Angle; translations
// and scalings use By as offsets or factors.
type StepConfig struct {
	Op    string    `yaml:"op"`
	Axis  string    `yaml:"axis,omitempty"`
	Angle float64   `yaml:"angle,omitempty"`
	By    []float64 `yaml:"by,omitempty"`
}

// DefaultConfig rotates (1, 2, 3) a quarter turn about z, then translates
// by (1, 2, 3) and doubles it.
func DefaultConfig() *Config {
	return &Config{
		Name:     "reference",
		Units:    UnitsDegrees,
		LogLevel: DefaultLogLevel,
		Start:    StartConfig{System: SystemCartesian, Coords: []float64{1, 2, 3}},
		Steps: []StepConfig{
			{Op: "rotate", Axis: "z", Angle: 90},
			{Op: "translate", By: []float64{1, 2, 3}},
			{Op: "scale", By: []float64{2, 2, 2}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{LogLevel: DefaultLogLevel}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the script's shape. A single-letter axis other than
// x, y or z is accepted here; the pipeline reports it and skips the step.
func (c *Config) Validate() error {
	switch c.Units {
	case "", UnitsRadians, UnitsDegrees:
	default:
		return fmt.Errorf("%w: units %q", ErrInvalidConfig, c.Units)
	}

	if c.Start.System == "" && len(c.Start.Coords) == 0 {
		return fmt.Errorf("%w: missing start", ErrInvalidConfig)
	}
	switch c.Start.System {
	case SystemCartesian, SystemCylindrical, SystemSpherical:
	default:
		return fmt.Errorf("%w: start system %q", ErrInvalidConfig, c.Start.System)
	}
	if len(c.Start.Coords) != 3 {
		return fmt.Errorf("%w: start needs 3 coords, got %d", ErrInvalidConfig, len(c.Start.Coords))
	}

	for i, s := range c.Steps {
		switch transform.Op(s.Op) {
		case transform.OpRotate:
			if len(s.Axis) != 1 {
				return fmt.Errorf("%w: step %d: axis %q must be a single letter", ErrInvalidConfig, i, s.Axis)
			}
		case transform.OpTranslate, transform.OpScale:
			if len(s.By) != 3 {
				return fmt.Errorf("%w: step %d: %s needs 3 values, got %d", ErrInvalidConfig, i, s.Op, len(s.By))
			}
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidConfig, i, s.Op)
		}
	}
	return nil
}

func (c *Config) angle(v float64) float64 {
	if c.Units == UnitsDegrees {
		return mgl64.DegToRad(v)
	}
	return v
}

func (c *Config) StartPoint() (coord.Point, error) {
	if len(c.Start.Coords) != 3 {
		return coord.Point{}, fmt.Errorf("%w: start needs 3 coords", ErrInvalidConfig)
	}
	a, b, d := c.Start.Coords[0], c.Start.Coords[1], c.Start.Coords[2]

	switch c.Start.System {
	case SystemCartesian:
		return coord.FromCartesian(a, b, d), nil
	case SystemCylindrical:
		return coord.FromCylindrical(a, c.angle(b), d), nil
	case SystemSpherical:
		return coord.FromSpherical(a, c.angle(b), c.angle(d)), nil
	}
	return coord.Point{}, fmt.Errorf("%w: start system %q", ErrInvalidConfig, c.Start.System)
}

// PipelineSteps converts the script's steps, with angles in radians.
func (c *Config) PipelineSteps() ([]transform.Step, error) {
	steps := make([]transform.Step, 0, len(c.Steps))
	for i, s := range c.Steps {
		switch transform.Op(s.Op) {
		case transform.OpRotate:
			if len(s.Axis) != 1 {
				return nil, fmt.Errorf("%w: step %d: axis %q", ErrInvalidConfig, i, s.Axis)
			}
			axis, err := geom.ParseAxis(s.Axis)
			if err != nil {
				// carried through so the pipeline can report and skip it
				axis = geom.Axis(s.Axis[0])
			}
			steps = append(steps, transform.Rotate(axis, c.angle(s.Angle)))
		case transform.OpTranslate, transform.OpScale:
			if len(s.By) != 3 {
				return nil, fmt.Errorf("%w: step %d: %s needs 3 values", ErrInvalidConfig, i, s.Op)
			}
			v := mgl64.Vec3{s.By[0], s.By[1], s.By[2]}
			steps = append(steps, transform.Step{Op: transform.Op(s.Op), Vector: v})
		default:
			steps = append(steps, transform.Step{Op: transform.Op(s.Op)})
		}
	}
	return steps, nil
}

func (c *Config) SlogLevel() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
