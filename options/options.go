package options

import (
	"fmt"
	"log/slog"

	"github.com/mathblock/go-texcheck/engines/types"
	"github.com/mathblock/go-texcheck/macros"
	"github.com/mathblock/go-texcheck/platform"
)

// Config holds all configuration for creating a validator
type Config struct {
	// Logger for the validator
	handler slog.Handler
	// Type of engine to use (structural, mathtex)
	engineType types.Type
	// Empty-input policy override; nil keeps the engine's default
	emptyPolicy *platform.EmptyPolicy
	// Rendering settings override; mathtex only, nil keeps the default
	settings *macros.Settings
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogger sets the logger for the validator
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithEmptyInputValid makes the validator accept empty or all-whitespace
// input with a clean report.
func WithEmptyInputValid() Option {
	return func(c *Config) error {
		p := platform.EmptyValid
		c.emptyPolicy = &p
		return nil
	}
}

// WithEmptyInputInvalid makes the validator reject empty or all-whitespace
// input with an explicit error.
func WithEmptyInputInvalid() Option {
	return func(c *Config) error {
		p := platform.EmptyInvalid
		c.emptyPolicy = &p
		return nil
	}
}

// WithRenderSettings sets the rendering settings for the mathtex engine
func WithRenderSettings(settings macros.Settings) Option {
	return func(c *Config) error {
		c.settings = &settings
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.engineType == "" {
		return fmt.Errorf("no engine type specified")
	}
	if c.settings != nil && c.engineType != types.MathTex {
		return fmt.Errorf("render settings only apply to the %s engine", types.MathTex)
	}
	return nil
}

// GetHandler returns the configured logger
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the logger
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetEngineType returns the configured engine type
func (c *Config) GetEngineType() types.Type {
	return c.engineType
}

// SetEngineType sets the engine type
func (c *Config) SetEngineType(engineType types.Type) {
	c.engineType = engineType
}

// GetEmptyPolicy returns the empty-input policy override, or nil when the
// engine default applies
func (c *Config) GetEmptyPolicy() *platform.EmptyPolicy {
	return c.emptyPolicy
}

// GetRenderSettings returns the rendering settings override, or nil when
// the engine default applies
func (c *Config) GetRenderSettings() *macros.Settings {
	return c.settings
}
