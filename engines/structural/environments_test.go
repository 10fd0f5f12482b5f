package structural

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEnvironments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "no environments", text: `x + y`, want: nil},
		{name: "matched pair", text: `\begin{matrix}x\end{matrix}`, want: nil},
		{
			name: "nested matched pairs",
			text: `\begin{table}\begin{tabular}{c}x\end{tabular}\end{table}`,
			want: nil,
		},
		{
			name: "mismatch names both",
			text: `\begin{matrix}1\end{table}`,
			want: []string{`environment mismatch: \begin{matrix} is closed by \end{table}`},
		},
		{
			name: "case sensitive names",
			text: `\begin{Matrix}x\end{matrix}`,
			want: []string{`environment mismatch: \begin{Matrix} is closed by \end{matrix}`},
		},
		{
			name: "end without begin",
			text: `\end{align}`,
			want: []string{`\end{align} has no matching \begin{align}`},
		},
		{
			name: "unclosed begin",
			text: `\begin{foo}x`,
			want: []string{`unclosed environment: \begin{foo}`},
		},
		{
			name: "crossed pairs report mismatches in order",
			text: `\begin{a}\begin{b}\end{a}\end{b}`,
			want: []string{
				`environment mismatch: \begin{b} is closed by \end{a}`,
				`environment mismatch: \begin{a} is closed by \end{b}`,
			},
		},
		{
			name: "mismatch then orphan end",
			text: `\begin{a}\end{b}\end{c}`,
			want: []string{
				`environment mismatch: \begin{a} is closed by \end{b}`,
				`\end{c} has no matching \begin{c}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkEnvironments(tt.text))
		})
	}
}
