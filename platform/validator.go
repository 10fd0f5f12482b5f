package platform

import "fmt"

// Validator is the interface shared by the validation engines. Each engine
// is an independent strategy for answering the same question: is this string
// acceptable input to the typesetting pipeline?
//
// Validate is a synchronous pure function. It never panics and never
// surfaces an engine failure as anything other than a Report error; callers
// get a usable report for every input.
type Validator interface {
	Validate(text string) *Report
	String() string
}

// EmptyPolicy decides how a validator treats empty or all-whitespace input.
// The structural engine defaults to EmptyInvalid, the mathtex engine to
// EmptyValid; callers picking one engine pick its policy explicitly rather
// than inheriting an accidental divergence.
type EmptyPolicy int

const (
	// EmptyInvalid reports empty input as an error.
	EmptyInvalid EmptyPolicy = iota

	// EmptyValid accepts empty input with a clean report.
	EmptyValid
)

// EmptyInputMessage is the error recorded under EmptyInvalid. The exact
// wording is part of the contract with the editor frontend.
const EmptyInputMessage = "LaTeX code is empty"

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyInvalid:
		return "empty-invalid"
	case EmptyValid:
		return "empty-valid"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", int(p))
	}
}
