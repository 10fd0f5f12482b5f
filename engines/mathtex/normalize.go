package mathtex

import (
	"regexp"
	"strings"
)

var (
	enginePrefixRe   = regexp.MustCompile(`^\s*mathtex parse error:\s*`)
	enginePositionRe = regexp.MustCompile(`\s*at position \d+:?\s*`)
)

// normalizeEngineError turns an engine diagnostic into the report error
// string: the fixed wrapper prefix is stripped, any positional fragment is
// removed, and the remainder is trimmed. The result is the sole error the
// report carries.
func normalizeEngineError(err error) string {
	msg := enginePrefixRe.ReplaceAllString(err.Error(), "")
	msg = enginePositionRe.ReplaceAllString(msg, " ")
	return strings.TrimSpace(msg)
}
