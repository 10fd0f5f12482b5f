// Package markdown extracts math spans from markdown documents and runs a
// configured validator over each one. Fenced "math" code blocks are display
// spans; $...$ runs inside text are inline spans.
package markdown

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/mathblock/go-texcheck/internal/helpers"
	"github.com/mathblock/go-texcheck/platform"
)

// Span is one piece of math found in a document.
type Span struct {
	// Source is the math content without its delimiters.
	Source string `json:"source"`

	// Display is true for fenced math blocks, false for inline spans.
	Display bool `json:"display"`
}

// SpanReport pairs a span with its validation report.
type SpanReport struct {
	Span   Span             `json:"span"`
	Report *platform.Report `json:"report"`
}

// Scanner walks a markdown document for math spans.
type Scanner struct {
	md         goldmark.Markdown
	validator  platform.Validator
	logHandler slog.Handler
	logger     *slog.Logger
}

// Option is a functional option for configuring the Scanner.
type Option func(*Scanner) error

// WithLogHandler sets the slog handler used by the scanner.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Scanner) error {
		if handler != nil {
			s.logHandler = handler
		}
		return nil
	}
}

// NewScanner creates a Scanner that validates each extracted span with v.
func NewScanner(v platform.Validator, opts ...Option) (*Scanner, error) {
	if v == nil {
		return nil, fmt.Errorf("validator is nil")
	}

	s := &Scanner{
		md:        goldmark.New(),
		validator: v,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	handler, logger := helpers.SetupLogger(s.logHandler, "markdown", "Scanner")
	s.logHandler = handler
	s.logger = logger
	return s, nil
}

func (s *Scanner) String() string {
	return fmt.Sprintf("markdown.Scanner{Validator: %s}", s.validator)
}

// inlineMathRe locates $...$ runs inside a single text node. A span split
// across inline nodes (emphasis markers inside the math, hard breaks) is
// not found; this is a per-node heuristic, not a math-aware parser.
var inlineMathRe = regexp.MustCompile(`\$([^$\n]+)\$`)

// Scan extracts the math spans of a markdown document in source order.
func (s *Scanner) Scan(source []byte) []Span {
	root := s.md.Parser().Parse(gmtext.NewReader(source))

	var spans []Span
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if !bytes.Equal(node.Language(source), []byte("math")) {
				return ast.WalkContinue, nil
			}
			var buf bytes.Buffer
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(source))
			}
			spans = append(spans, Span{
				Source:  strings.TrimSpace(buf.String()),
				Display: true,
			})
		case *ast.Text:
			val := node.Segment.Value(source)
			for _, m := range inlineMathRe.FindAllSubmatch(val, -1) {
				spans = append(spans, Span{Source: string(m[1])})
			}
		}
		return ast.WalkContinue, nil
	})

	s.logger.Debug("scan complete", "bytes", len(source), "spans", len(spans))
	return spans
}

// Validate extracts the math spans and validates each with the configured
// validator, in source order.
func (s *Scanner) Validate(source []byte) []SpanReport {
	spans := s.Scan(source)
	reports := make([]SpanReport, 0, len(spans))
	for _, span := range spans {
		reports = append(reports, SpanReport{
			Span:   span,
			Report: s.validator.Validate(span.Source),
		})
	}
	return reports
}
