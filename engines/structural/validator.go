// Package structural implements the heuristic LaTeX validator: a linear
// scan for delimiter balance plus a handful of regex passes for environment
// matching and suspicious characters. It never invokes a typesetting engine.
package structural

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mathblock/go-texcheck/internal/helpers"
	"github.com/mathblock/go-texcheck/platform"
)

// Validator is the regex/counter-based validation engine.
type Validator struct {
	emptyPolicy platform.EmptyPolicy
	denylist    []string
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

// WithEmptyPolicy overrides the empty-input policy. The structural engine
// defaults to platform.EmptyInvalid.
func WithEmptyPolicy(policy platform.EmptyPolicy) Option {
	return func(v *Validator) error {
		v.emptyPolicy = policy
		return nil
	}
}

// WithDenylist replaces the default denylist of commands that render in the
// preview engine but are rejected by the output pipeline.
func WithDenylist(commands []string) Option {
	return func(v *Validator) error {
		if commands == nil {
			return fmt.Errorf("denylist cannot be nil, use an empty slice to disable the check")
		}
		v.denylist = commands
		return nil
	}
}

// New creates a structural Validator with the provided options applied.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		emptyPolicy: platform.EmptyInvalid,
		denylist:    DefaultDenylist(),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	handler, logger := helpers.SetupLogger(v.logHandler, "structural", "Validator")
	v.logHandler = handler
	v.logger = logger
	return v, nil
}

func (v *Validator) String() string {
	return "structural.Validator"
}

// Validate runs every check over the input and aggregates the findings into
// a single report. The slices in the report follow the order the checks run:
// brace balance, bracket balance, environments (errors); trailing command,
// denylist, specials (warnings).
func (v *Validator) Validate(text string) *platform.Report {
	logger := v.logger.WithGroup("Validate")

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		if v.emptyPolicy == platform.EmptyValid {
			return platform.NewReport(nil, nil)
		}
		logger.Debug("rejecting empty input")
		return platform.NewReport([]string{platform.EmptyInputMessage}, nil)
	}

	var errs, warns []string
	errs = append(errs, scanBalance(text, '{', '}', "brace")...)
	errs = append(errs, scanBalance(text, '[', ']', "bracket")...)
	if hasIncompleteTrailingCommand(trimmed) {
		warns = append(warns, "command appears incomplete at end")
	}
	errs = append(errs, checkEnvironments(text)...)
	warns = append(warns, v.checkDenylist(text)...)
	warns = append(warns, checkSpecials(text)...)

	logger.Debug("validation complete",
		"bytes", len(text),
		"errors", len(errs),
		"warnings", len(warns),
	)
	return platform.NewReport(errs, warns)
}

// DefaultDenylist returns the commands known to render in the preview engine
// but fail in the output pipeline.
func DefaultDenylist() []string {
	return []string{
		`\htmlClass`,
		`\htmlId`,
		`\htmlStyle`,
		`\htmlData`,
		`\includegraphics`,
	}
}

// checkDenylist warns on each denylisted command present in the text. This
// is a substring containment check per command, not a token match.
func (v *Validator) checkDenylist(text string) []string {
	var msgs []string
	for _, cmd := range v.denylist {
		if strings.Contains(text, cmd) {
			msgs = append(msgs, fmt.Sprintf("%s is not supported by the output pipeline", cmd))
		}
	}
	return msgs
}
