package structural

import (
	"fmt"
	"regexp"
)

var envMarkerRe = regexp.MustCompile(`\\(begin|end)\{([^}]*)\}`)

// checkEnvironments matches \begin{name} markers against \end{name} markers
// with a stack machine. Markers are replayed in source order; names are
// case-sensitive exact matches.
func checkEnvironments(text string) []string {
	var msgs []string
	var stack []string

	for _, m := range envMarkerRe.FindAllStringSubmatchIndex(text, -1) {
		kind := text[m[2]:m[3]]
		name := text[m[4]:m[5]]

		if kind == "begin" {
			stack = append(stack, name)
			continue
		}

		if len(stack) == 0 {
			msgs = append(msgs, fmt.Sprintf(`\end{%s} has no matching \begin{%s}`, name, name))
			continue
		}
		opened := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if opened != name {
			msgs = append(msgs, fmt.Sprintf(`environment mismatch: \begin{%s} is closed by \end{%s}`, opened, name))
		}
	}

	for _, name := range stack {
		msgs = append(msgs, fmt.Sprintf(`unclosed environment: \begin{%s}`, name))
	}
	return msgs
}
