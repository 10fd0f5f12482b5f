// Command texcheck validates LaTeX input for the typesetting pipeline,
// reading files or stdin and printing one report per input.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	texcheck "github.com/mathblock/go-texcheck"
	"github.com/mathblock/go-texcheck/engines/types"
	"github.com/mathblock/go-texcheck/markdown"
	"github.com/mathblock/go-texcheck/options"
	"github.com/mathblock/go-texcheck/platform"
	"github.com/mathblock/go-texcheck/platform/source"
)

// CLI is the top-level command-line interface for texcheck.
type CLI struct {
	Engine   string   `help:"Validation engine." enum:"structural,mathtex" default:"structural"`
	Markdown bool     `help:"Treat input as markdown and validate each math span."`
	JSON     bool     `name:"json" help:"Emit reports as JSON instead of formatted text."`
	Verbose  bool     `short:"v" help:"Enable engine debug logging."`
	Paths    []string `arg:"" optional:"" help:"Input files, or '-' for stdin (default)."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("texcheck"),
		kong.Description("Validate LaTeX input for the typesetting pipeline."),
		kong.UsageOnError(),
	)

	allValid, err := run(&cli, os.Stdout)
	kctx.FatalIfErrorf(err)
	if !allValid {
		os.Exit(1)
	}
}

func run(cli *CLI, w io.Writer) (bool, error) {
	validator, err := newValidator(cli)
	if err != nil {
		return false, err
	}

	paths := cli.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	allValid := true
	for _, path := range paths {
		text, err := loadInput(path)
		if err != nil {
			return false, err
		}
		if len(paths) > 1 {
			fmt.Fprintf(w, "== %s\n", path)
		}

		valid, err := checkOne(cli, validator, text, w)
		if err != nil {
			return false, err
		}
		allValid = allValid && valid
	}
	return allValid, nil
}

func checkOne(cli *CLI, validator platform.Validator, text string, w io.Writer) (bool, error) {
	if cli.Markdown {
		scanner, err := markdown.NewScanner(validator, markdown.WithLogHandler(logHandler(cli)))
		if err != nil {
			return false, err
		}
		reports := scanner.Validate([]byte(text))
		if cli.JSON {
			return allSpansValid(reports), writeJSON(w, reports)
		}
		valid := true
		for _, sr := range reports {
			fmt.Fprintln(w, renderSpanHeader(sr.Span))
			fmt.Fprint(w, renderReport(sr.Report))
			valid = valid && sr.Report.Valid
		}
		if len(reports) == 0 {
			fmt.Fprintln(w, "no math spans found")
		}
		return valid, nil
	}

	report := validator.Validate(text)
	if cli.JSON {
		return report.Valid, writeJSON(w, report)
	}
	fmt.Fprint(w, renderReport(report))
	return report.Valid, nil
}

func newValidator(cli *CLI) (platform.Validator, error) {
	engineType, err := types.Parse(cli.Engine)
	if err != nil {
		return nil, err
	}
	return texcheck.NewValidator(engineType, options.WithLogger(logHandler(cli)))
}

func logHandler(cli *CLI) slog.Handler {
	if cli.Verbose {
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewTextHandler(io.Discard, nil)
}

func loadInput(path string) (string, error) {
	var loader source.Loader
	var err error
	if path == "-" {
		loader, err = source.NewFromIoReader(os.Stdin, "stdin")
	} else {
		loader, err = source.NewFromDisk(path)
	}
	if err != nil {
		return "", err
	}

	r, err := loader.GetReader()
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", loader.GetSourceURL(), err)
	}
	return string(data), nil
}

func allSpansValid(reports []markdown.SpanReport) bool {
	for _, sr := range reports {
		if !sr.Report.Valid {
			return false
		}
	}
	return true
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
