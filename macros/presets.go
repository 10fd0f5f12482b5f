package macros

// Strictness controls how the rendering engine reacts to non-standard LaTeX
// constructs.
type Strictness string

const (
	StrictIgnore Strictness = "ignore"
	StrictWarn   Strictness = "warn"
	StrictError  Strictness = "error"
)

// Settings bundles the macro table with the safety flags a rendering call
// needs. The presets below are the only configurations the editor frontend
// and the backend pipeline use.
//
// Only Macros and FailOnError are consumed by the mathtex engine (macro
// expansion, and forced on for validation). DisplayMode, AllowUnsafe, and
// Strict mirror the rendering contract for the frontend and backend
// pipeline; no validation path reads them.
type Settings struct {
	// DisplayMode selects block layout instead of inline layout.
	// Contract-mirroring data; validation strictness is identical in
	// both modes.
	DisplayMode bool

	// FailOnError makes the engine raise on parse failure instead of
	// rendering the error inline. The mathtex validator forces this on.
	FailOnError bool

	// AllowUnsafe permits commands that execute untrusted input. Always
	// false in the presets. Contract-mirroring data.
	AllowUnsafe bool

	// Strict is the reaction to non-standard constructs.
	// Contract-mirroring data.
	Strict Strictness

	// Macros is the custom command table, a fresh copy per Settings
	// value. Consumed by the mathtex engine for pre-parse expansion.
	Macros map[string]string
}

// Inline is the preset for inline equations: errors render inline rather
// than raising, unsafe commands stay disabled, and non-standard constructs
// warn without failing.
func Inline() Settings {
	return Settings{
		DisplayMode: false,
		FailOnError: false,
		AllowUnsafe: false,
		Strict:      StrictWarn,
		Macros:      Table(),
	}
}

// Display is the Inline preset in block layout.
func Display() Settings {
	s := Inline()
	s.DisplayMode = true
	return s
}
