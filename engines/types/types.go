// Package types defines the supported validation engine types.
package types

import (
	"fmt"
	"strings"
)

// Type identifies one of the validation engines.
type Type string

const (
	// Structural is the regex/counter-based well-formedness checker.
	Structural Type = "structural"

	// MathTex delegates validity to the typesetting engine's parser.
	MathTex Type = "mathtex"
)

func (t Type) String() string {
	return string(t)
}

// Parse converts a string to a Type, case-insensitively.
func Parse(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Structural:
		return Structural, nil
	case MathTex:
		return MathTex, nil
	default:
		return "", fmt.Errorf("invalid engine type: %q", s)
	}
}
