package viewport

import (
	"errors"
	"fmt"
	"math"
)

// Default configuration values.
const (
	DefaultMinZoom         = 0.25
	DefaultMaxZoom         = 4.0
	DefaultZoomStep        = 0.25
	DefaultZoomSensitivity = 0.008
	DefaultPanSensitivity  = 1.0
)

// ErrInvalidConfig is returned when a configuration value is out of range.
// Errors returned by NewConfig and New wrap it with the failing field.
var ErrInvalidConfig = errors.New("viewport: invalid config")

// Config holds the tuning parameters of the engine.
//
// A Config is a plain value: once built it is never mutated by the
// engine, and the zoom and pan operations are methods on it so they can
// be used without an Engine.
type Config struct {
	// MinZoom is the smallest allowed scale.
	MinZoom float64
	// MaxZoom is the largest allowed scale.
	MaxZoom float64
	// ZoomStep is the additive step used by ZoomIn and ZoomOut.
	ZoomStep float64
	// ZoomSensitivity is the exponent per normalized wheel unit.
	ZoomSensitivity float64
	// PanSensitivity multiplies wheel pan deltas. A negative value
	// inverts the pan direction.
	PanSensitivity float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MinZoom:         DefaultMinZoom,
		MaxZoom:         DefaultMaxZoom,
		ZoomStep:        DefaultZoomStep,
		ZoomSensitivity: DefaultZoomSensitivity,
		PanSensitivity:  DefaultPanSensitivity,
	}
}

// Option configures a Config during creation.
//
// Example:
//
//	e, err := viewport.New(
//	    viewport.WithMaxZoom(8),
//	    viewport.WithZoomStep(0.5),
//	)
type Option func(*Config)

// WithMinZoom sets the smallest allowed scale.
func WithMinZoom(v float64) Option {
	return func(c *Config) { c.MinZoom = v }
}

// WithMaxZoom sets the largest allowed scale.
func WithMaxZoom(v float64) Option {
	return func(c *Config) { c.MaxZoom = v }
}

// WithZoomStep sets the step used by ZoomIn and ZoomOut.
func WithZoomStep(v float64) Option {
	return func(c *Config) { c.ZoomStep = v }
}

// WithZoomSensitivity sets the wheel zoom sensitivity.
func WithZoomSensitivity(v float64) Option {
	return func(c *Config) { c.ZoomSensitivity = v }
}

// WithPanSensitivity sets the wheel pan multiplier.
func WithPanSensitivity(v float64) Option {
	return func(c *Config) { c.PanSensitivity = v }
}

// WithConfig replaces every field with the values of cfg.
// Options applied after it still take effect.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// NewConfig builds a Config from the defaults and the given options and
// validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports whether the configuration is usable.
// The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"MinZoom", c.MinZoom},
		{"MaxZoom", c.MaxZoom},
		{"ZoomStep", c.ZoomStep},
		{"ZoomSensitivity", c.ZoomSensitivity},
		{"PanSensitivity", c.PanSensitivity},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s=%v must be finite", ErrInvalidConfig, f.name, f.value)
		}
	}

	switch {
	case c.MinZoom <= 0:
		return fmt.Errorf("%w: MinZoom=%v must be > 0", ErrInvalidConfig, c.MinZoom)
	case c.MaxZoom < c.MinZoom:
		return fmt.Errorf("%w: MaxZoom=%v must be >= MinZoom=%v", ErrInvalidConfig, c.MaxZoom, c.MinZoom)
	case c.ZoomStep <= 0:
		return fmt.Errorf("%w: ZoomStep=%v must be > 0", ErrInvalidConfig, c.ZoomStep)
	case c.ZoomSensitivity <= 0:
		return fmt.Errorf("%w: ZoomSensitivity=%v must be > 0", ErrInvalidConfig, c.ZoomSensitivity)
	case c.PanSensitivity == 0:
		return fmt.Errorf("%w: PanSensitivity must be non-zero", ErrInvalidConfig)
	}
	return nil
}

// clampScale restricts s to [MinZoom, MaxZoom].
func (c Config) clampScale(s float64) float64 {
	return math.Max(c.MinZoom, math.Min(c.MaxZoom, s))
}
