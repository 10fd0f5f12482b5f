package structural

import "fmt"

// scanBalance checks one delimiter pair with a signed counter over a single
// left-to-right pass. A delimiter behind an odd run of backslashes is a
// literal character and does not count. The first unmatched closing
// delimiter is reported with its 1-based position and ends this sub-check;
// a positive leftover counter at end of input is reported as a count of
// unclosed delimiters.
func scanBalance(text string, open, close rune, name string) []string {
	runes := []rune(text)
	depth := 0
	for i, r := range runes {
		if r != open && r != close {
			continue
		}
		if escaped(runes, i) {
			continue
		}
		if r == open {
			depth++
			continue
		}
		depth--
		if depth < 0 {
			return []string{fmt.Sprintf("unmatched closing %s '%c' at position %d", name, close, i+1)}
		}
	}
	if depth > 0 {
		return []string{fmt.Sprintf("%d unclosed %s(s)", depth, name)}
	}
	return nil
}

// escaped reports whether the rune at index i sits behind an odd run of
// backslashes ("\{" is literal, "\\{" is a group opener after a literal
// backslash).
func escaped(runes []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && runes[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
