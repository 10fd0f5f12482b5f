package mathtex

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEngineError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapper prefix stripped",
			err:  fmt.Errorf("%w: %v", ErrParseFailed, errors.New("unknown macro \\foo")),
			want: "unknown macro \\foo",
		},
		{
			name: "positional fragment stripped",
			err:  errors.New(`mathtex parse error: expected '}' at position 12: got EOF`),
			want: "expected '}' got EOF",
		},
		{
			name: "positional fragment at end",
			err:  errors.New("mathtex parse error: unexpected token at position 3:"),
			want: "unexpected token",
		},
		{
			name: "no prefix present",
			err:  errors.New("something else entirely"),
			want: "something else entirely",
		},
		{
			name: "surrounding whitespace trimmed",
			err:  errors.New("mathtex parse error:   bad input  "),
			want: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeEngineError(tt.err))
		})
	}
}
