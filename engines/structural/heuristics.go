package structural

import (
	"regexp"
	"strings"
)

var trailingCommandRe = regexp.MustCompile(`\\[a-zA-Z]+$`)

// hasIncompleteTrailingCommand reports whether the trimmed input ends in a
// bare command, which usually means the author stopped typing mid-command.
func hasIncompleteTrailingCommand(trimmed string) bool {
	return trailingCommandRe.MatchString(trimmed)
}

// checkSpecials warns about suspicious unescaped characters.
//
// The dollar check counts unescaped '$' occurrences; an odd count means one
// of them has no matching closing '$'. The ampersand check warns on any '&'
// when the literal tabular opening is absent. It is deliberately coarse: an
// '&' inside aligned-column environments spelled differently (aligned,
// matrix) still warns. Callers rely on the lenient warning-only severity, so
// keep it that way.
func checkSpecials(text string) []string {
	var msgs []string

	runes := []rune(text)
	dollars := 0
	for i, r := range runes {
		if r == '$' && !escaped(runes, i) {
			dollars++
		}
	}
	if dollars%2 == 1 {
		msgs = append(msgs, `unescaped '$' without a matching closing '$'`)
	}

	if strings.Contains(text, "&") && !strings.Contains(text, `\begin{tabular`) {
		msgs = append(msgs, `'&' used outside of a tabular environment`)
	}
	return msgs
}
