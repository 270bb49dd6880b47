package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/milk9111/flycam/input"
	"gopkg.in/yaml.v3"
)

//go:embed controls.yaml
var defaultControls []byte

var ErrInvalid = errors.New("config: invalid controls")

type MovementConfig struct {
	Speed        float32 `yaml:"speed"`
	Horizontal   string  `yaml:"horizontal"`
	Vertical     string  `yaml:"vertical"`
	Longitudinal string  `yaml:"longitudinal"`
}

// Axes returns the axis labels, nil for the ones left empty.
func (m MovementConfig) Axes() (horizontal, vertical, longitudinal *string) {
	return optional(m.Horizontal), optional(m.Vertical), optional(m.Longitudinal)
}

type RotationConfig struct {
	SensitivityX float32 `yaml:"sensitivity_x"`
	SensitivityY float32 `yaml:"sensitivity_y"`
}

type CursorConfig struct {
	Hide bool `yaml:"hide"`
}

type ArcBallConfig struct {
	Distance float32 `yaml:"distance"`
	// Script is a path to a tengo orbit script; empty uses the built-in one.
	Script string `yaml:"script"`
}

// Controls is the camera control configuration.
type Controls struct {
	Movement MovementConfig     `yaml:"movement"`
	Rotation RotationConfig     `yaml:"rotation"`
	Cursor   CursorConfig       `yaml:"cursor"`
	ArcBall  ArcBallConfig      `yaml:"arc_ball"`
	Bindings input.BindingsSpec `yaml:"bindings"`
}

// Default returns the built-in controls.
func Default() (*Controls, error) {
	var c Controls
	if err := yaml.Unmarshal(defaultControls, &c); err != nil {
		return nil, fmt.Errorf("config: unmarshal defaults: %w", err)
	}
	return &c, nil
}

// Parse decodes data over the built-in defaults, so a file only needs the
// keys it changes.
func Parse(data []byte) (*Controls, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads controls from path. A missing file yields the defaults.
func Load(path string) (*Controls, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return c, nil
}

func (c *Controls) Validate() error {
	if c.Movement.Speed <= 0 {
		return fmt.Errorf("%w: movement.speed must be positive, got %g", ErrInvalid, c.Movement.Speed)
	}
	if c.ArcBall.Distance < 0 {
		return fmt.Errorf("%w: arc_ball.distance must not be negative, got %g", ErrInvalid, c.ArcBall.Distance)
	}
	if _, err := c.Bindings.Resolve(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// InputBindings resolves the key bindings.
func (c *Controls) InputBindings() (input.Bindings[string], error) {
	return c.Bindings.Resolve()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
