package structural

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathblock/go-texcheck/platform"
)

func newTestValidator(t *testing.T, opts ...Option) *Validator {
	t.Helper()
	opts = append([]Option{WithLogHandler(slog.NewTextHandler(io.Discard, nil))}, opts...)
	v, err := New(opts...)
	require.NoError(t, err, "Failed to create validator")
	return v
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		text         string
		valid        bool
		wantErrors   []string
		wantWarnings []string
	}{
		{
			name:  "well formed fraction",
			text:  `\frac{1}{2}`,
			valid: true,
		},
		{
			name:  "well formed environment with optional argument",
			text:  `\begin{array}[t]{cc} x \end{array}`,
			valid: true,
		},
		{
			name:       "empty input",
			text:       "",
			valid:      false,
			wantErrors: []string{"LaTeX code is empty"},
		},
		{
			name:       "whitespace only input",
			text:       "   \n\t ",
			valid:      false,
			wantErrors: []string{"LaTeX code is empty"},
		},
		{
			name:       "single unclosed brace",
			text:       `\frac{1}{2`,
			valid:      false,
			wantErrors: []string{"1 unclosed brace(s)"},
		},
		{
			name:       "unmatched closing brace at start",
			text:       `}`,
			valid:      false,
			wantErrors: []string{"unmatched closing brace '}' at position 1"},
		},
		{
			name:       "unmatched closing bracket",
			text:       `x]`,
			valid:      false,
			wantErrors: []string{"unmatched closing bracket ']' at position 2"},
		},
		{
			name:       "unclosed brackets counted independently of braces",
			text:       `{a} [[`,
			valid:      false,
			wantErrors: []string{"2 unclosed bracket(s)"},
		},
		{
			name:  "escaped braces do not count",
			text:  `\{ x \}`,
			valid: true,
		},
		{
			name:       "double backslash before brace counts",
			text:       `\\{`,
			valid:      false,
			wantErrors: []string{"1 unclosed brace(s)"},
		},
		{
			name:       "environment mismatch",
			text:       `\begin{matrix}1\end{table}`,
			valid:      false,
			wantErrors: []string{`environment mismatch: \begin{matrix} is closed by \end{table}`},
		},
		{
			name:       "unclosed environment",
			text:       `\begin{foo}x`,
			valid:      false,
			wantErrors: []string{`unclosed environment: \begin{foo}`},
		},
		{
			name:       "orphan end",
			text:       `x\end{foo}`,
			valid:      false,
			wantErrors: []string{`\end{foo} has no matching \begin{foo}`},
		},
		{
			name:         "incomplete trailing command",
			text:         `\fra`,
			valid:        true,
			wantWarnings: []string{"command appears incomplete at end"},
		},
		{
			name:  "denylisted command warns without invalidating",
			text:  `\htmlClass{note}{x}`,
			valid: true,
			wantWarnings: []string{
				`\htmlClass is not supported by the output pipeline`,
			},
		},
		{
			name:         "orphaned dollar",
			text:         `price is $5`,
			valid:        true,
			wantWarnings: []string{`unescaped '$' without a matching closing '$'`},
		},
		{
			name:  "paired dollars",
			text:  `$x$`,
			valid: true,
		},
		{
			name:  "escaped dollar",
			text:  `\$100`,
			valid: true,
		},
		{
			name:         "ampersand outside tabular",
			text:         `a & b`,
			valid:        true,
			wantWarnings: []string{`'&' used outside of a tabular environment`},
		},
		{
			name:  "ampersand inside tabular",
			text:  `\begin{tabular}{cc} a & b \end{tabular}`,
			valid: true,
		},
		{
			// Known false positive, kept on purpose: only the literal
			// tabular opening suppresses the warning.
			name:         "ampersand inside aligned still warns",
			text:         `\begin{aligned}a &= b\end{aligned}`,
			valid:        true,
			wantWarnings: []string{`'&' used outside of a tabular environment`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := newTestValidator(t)
			report := v.Validate(tt.text)
			require.NotNil(t, report)

			assert.Equal(t, tt.valid, report.Valid)
			if tt.wantErrors == nil {
				assert.Empty(t, report.Errors)
			} else {
				assert.Equal(t, tt.wantErrors, report.Errors)
			}
			if tt.wantWarnings != nil {
				assert.Equal(t, tt.wantWarnings, report.Warnings)
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	t.Parallel()
	v := newTestValidator(t)

	const text = `\begin{matrix}a & $b\end{table}`
	first := v.Validate(text)
	second := v.Validate(text)
	require.Equal(t, first, second, "repeated validation must yield structurally equal reports")
}

func TestValidateMultipleFindings(t *testing.T) {
	t.Parallel()
	v := newTestValidator(t)

	// One brace error, one environment error, dollar and ampersand warnings.
	report := v.Validate(`\begin{matrix}{a & $`)
	require.False(t, report.Valid)
	assert.Equal(t, []string{
		"1 unclosed brace(s)",
		`unclosed environment: \begin{matrix}`,
	}, report.Errors)
	assert.Equal(t, []string{
		`unescaped '$' without a matching closing '$'`,
		`'&' used outside of a tabular environment`,
	}, report.Warnings)
}

func TestEmptyPolicyOverride(t *testing.T) {
	t.Parallel()
	v := newTestValidator(t, WithEmptyPolicy(platform.EmptyValid))

	report := v.Validate("   ")
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestWithDenylist(t *testing.T) {
	t.Parallel()

	t.Run("custom denylist", func(t *testing.T) {
		t.Parallel()
		v := newTestValidator(t, WithDenylist([]string{`\url`}))
		report := v.Validate(`\url{https://example.com} and \htmlClass{x}{y}`)
		assert.True(t, report.Valid)
		assert.Equal(t, []string{`\url is not supported by the output pipeline`}, report.Warnings)
	})

	t.Run("empty denylist disables check", func(t *testing.T) {
		t.Parallel()
		v := newTestValidator(t, WithDenylist([]string{}))
		report := v.Validate(`\htmlClass{x}{y}`)
		assert.Empty(t, report.Warnings)
	})

	t.Run("nil denylist rejected", func(t *testing.T) {
		t.Parallel()
		_, err := New(WithDenylist(nil))
		require.Error(t, err)
	})
}

func TestStringer(t *testing.T) {
	t.Parallel()
	v := newTestValidator(t)
	assert.Equal(t, "structural.Validator", v.String())
}

func TestValidateDebugLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	v, err := New(WithLogHandler(handler))
	require.NoError(t, err)

	v.Validate("αβγ")

	// the size attribute is a byte count, named accordingly
	assert.Contains(t, buf.String(), `"bytes":6`)
	assert.NotContains(t, buf.String(), `"chars"`)
}
