// Package mathtex implements the render-based LaTeX validator. It trusts
// the typesetting engine's parser as the source of truth for syntax
// validity: whatever the engine parses is valid, whatever it rejects is
// reported with the engine's own diagnostic. The engine may accept
// constructs the output pipeline rejects; the structural engine's denylist
// check covers those known divergences.
package mathtex

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-latex/latex"

	"github.com/mathblock/go-texcheck/internal/helpers"
	"github.com/mathblock/go-texcheck/macros"
	"github.com/mathblock/go-texcheck/platform"
)

// Validator delegates validation to the typesetting engine's parse step.
type Validator struct {
	emptyPolicy platform.EmptyPolicy
	settings    macros.Settings
	logHandler  slog.Handler
	logger      *slog.Logger
}

// Option is a functional option for configuring the Validator.
type Option func(*Validator) error

// WithLogHandler sets the slog handler used by the validator.
func WithLogHandler(handler slog.Handler) Option {
	return func(v *Validator) error {
		if handler != nil {
			v.logHandler = handler
		}
		return nil
	}
}

// WithEmptyPolicy overrides the empty-input policy. The mathtex engine
// defaults to platform.EmptyValid.
func WithEmptyPolicy(policy platform.EmptyPolicy) Option {
	return func(v *Validator) error {
		v.emptyPolicy = policy
		return nil
	}
}

// WithSettings replaces the rendering settings. FailOnError is forced on:
// a validator that lets the engine swallow parse failures would report
// everything as valid.
func WithSettings(settings macros.Settings) Option {
	return func(v *Validator) error {
		settings.FailOnError = true
		v.settings = settings
		return nil
	}
}

// New creates a mathtex Validator with the provided options applied. The
// default settings are the display preset with FailOnError forced on.
func New(opts ...Option) (*Validator, error) {
	settings := macros.Display()
	settings.FailOnError = true

	v := &Validator{
		emptyPolicy: platform.EmptyValid,
		settings:    settings,
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	handler, logger := helpers.SetupLogger(v.logHandler, "mathtex", "Validator")
	v.logHandler = handler
	v.logger = logger
	return v, nil
}

func (v *Validator) String() string {
	return "mathtex.Validator"
}

// Validate expands custom macros and hands the result to the engine's
// parser. The engine's raised diagnostic is captured and normalized into a
// single report error; it never propagates to the caller.
func (v *Validator) Validate(text string) *platform.Report {
	logger := v.logger.WithGroup("Validate")

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		if v.emptyPolicy == platform.EmptyInvalid {
			return platform.NewReport([]string{platform.EmptyInputMessage}, nil)
		}
		return platform.NewReport(nil, nil)
	}

	expanded := macros.Expand(trimmed, v.settings.Macros)
	if err := v.parse(expanded); err != nil {
		msg := normalizeEngineError(err)
		logger.Debug("engine rejected input", "error", msg, "displayMode", v.settings.DisplayMode)
		return platform.NewReport([]string{msg}, nil)
	}

	// The engine's internal warnings are not surfaced by this strategy.
	return platform.NewReport(nil, nil)
}

// parse hands the formula to the typesetting engine. A bare formula is
// wrapped in $...$ so the engine scans it in math mode; input that already
// carries its own math delimiters is parsed as-is to avoid nesting them.
func (v *Validator) parse(formula string) error {
	if !strings.Contains(formula, "$") {
		formula = "$" + formula + "$"
	}
	if _, err := latex.ParseExpr(formula); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return nil
}
