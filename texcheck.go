// Package texcheck answers one question two independent ways: is this
// string acceptable input to a LaTeX typesetting pipeline? The structural
// engine checks well-formedness with counters and regex passes; the mathtex
// engine delegates to a typesetting engine's parser. Both implement
// platform.Validator and produce the same report shape, but they diverge on
// empty-input policy and strictness, so callers pick an engine (and thereby
// a policy) explicitly.
package texcheck

import (
	"fmt"

	"github.com/mathblock/go-texcheck/engines/mathtex"
	"github.com/mathblock/go-texcheck/engines/structural"
	"github.com/mathblock/go-texcheck/engines/types"
	"github.com/mathblock/go-texcheck/options"
	"github.com/mathblock/go-texcheck/platform"
)

// NewStructuralValidator creates a validator using the heuristic
// counter/regex engine. Empty input is invalid unless overridden with
// options.WithEmptyInputValid.
func NewStructuralValidator(opts ...options.Option) (platform.Validator, error) {
	cfg, err := buildConfig(types.Structural, opts)
	if err != nil {
		return nil, err
	}

	engineOpts := []structural.Option{
		structural.WithLogHandler(cfg.GetHandler()),
	}
	if p := cfg.GetEmptyPolicy(); p != nil {
		engineOpts = append(engineOpts, structural.WithEmptyPolicy(*p))
	}
	return structural.New(engineOpts...)
}

// NewMathTexValidator creates a validator that delegates to the typesetting
// engine's parser. Empty input is valid unless overridden with
// options.WithEmptyInputInvalid.
func NewMathTexValidator(opts ...options.Option) (platform.Validator, error) {
	cfg, err := buildConfig(types.MathTex, opts)
	if err != nil {
		return nil, err
	}

	engineOpts := []mathtex.Option{
		mathtex.WithLogHandler(cfg.GetHandler()),
	}
	if p := cfg.GetEmptyPolicy(); p != nil {
		engineOpts = append(engineOpts, mathtex.WithEmptyPolicy(*p))
	}
	if s := cfg.GetRenderSettings(); s != nil {
		engineOpts = append(engineOpts, mathtex.WithSettings(*s))
	}
	return mathtex.New(engineOpts...)
}

// NewValidator creates a validator for the named engine type.
func NewValidator(engineType types.Type, opts ...options.Option) (platform.Validator, error) {
	switch engineType {
	case types.Structural:
		return NewStructuralValidator(opts...)
	case types.MathTex:
		return NewMathTexValidator(opts...)
	default:
		return nil, fmt.Errorf("unsupported engine type: %q", engineType)
	}
}

// ValidateStructural is a one-shot helper wrapping NewStructuralValidator.
func ValidateStructural(text string, opts ...options.Option) (*platform.Report, error) {
	v, err := NewStructuralValidator(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(text), nil
}

// ValidateMathTex is a one-shot helper wrapping NewMathTexValidator.
func ValidateMathTex(text string, opts ...options.Option) (*platform.Report, error) {
	v, err := NewMathTexValidator(opts...)
	if err != nil {
		return nil, err
	}
	return v.Validate(text), nil
}

func buildConfig(engineType types.Type, opts []options.Option) (*options.Config, error) {
	cfg := options.DefaultConfig(engineType)

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
