// Package macros holds the custom command table and rendering presets
// shared with the backend typesetting pipeline. The table here and the
// backend's copy must stay byte-for-byte identical so that the editor
// preview and the final output agree; neither side can verify the other at
// runtime, so macros_test.go pins this copy against a golden fixture.
package macros

import "regexp"

var table = map[string]string{
	// number sets
	`\RR`: `\mathbb{R}`,
	`\NN`: `\mathbb{N}`,
	`\ZZ`: `\mathbb{Z}`,
	`\QQ`: `\mathbb{Q}`,
	`\CC`: `\mathbb{C}`,

	// named symbols
	`\eps`:    `\varepsilon`,
	`\dd`:     `\mathrm{d}`,
	`\ee`:     `\mathrm{e}`,
	`\ii`:     `\mathrm{i}`,
	`\degree`: `^{\circ}`,
	`\T`:      `^{\mathsf{T}}`,
	`\given`:  `\,\vert\,`,

	// uppercase Greek letters missing from standard LaTeX
	`\Alpha`:   `\mathrm{A}`,
	`\Beta`:    `\mathrm{B}`,
	`\Epsilon`: `\mathrm{E}`,
	`\Zeta`:    `\mathrm{Z}`,
	`\Eta`:     `\mathrm{H}`,
	`\Iota`:    `\mathrm{I}`,
	`\Kappa`:   `\mathrm{K}`,
	`\Mu`:      `\mathrm{M}`,
	`\Nu`:      `\mathrm{N}`,
	`\Omicron`: `\mathrm{O}`,
	`\Rho`:     `\mathrm{P}`,
	`\Tau`:     `\mathrm{T}`,
	`\Chi`:     `\mathrm{X}`,
}

// Table returns a copy of the custom command table. Mutating the returned
// map does not affect the process-wide table.
func Table() map[string]string {
	out := make(map[string]string, len(table))
	for name, expansion := range table {
		out[name] = expansion
	}
	return out
}

var commandRe = regexp.MustCompile(`\\[a-zA-Z]+`)

// Expand rewrites custom commands in text to their expansions so an engine
// that only knows standard commands can parse the input. Expansion is
// textual and single-pass; table expansions never reference other custom
// commands. Commands absent from the table pass through untouched, and a
// longer command sharing a custom prefix (e.g. \RRx) is not rewritten.
func Expand(text string, macros map[string]string) string {
	if len(macros) == 0 {
		return text
	}
	return commandRe.ReplaceAllStringFunc(text, func(cmd string) string {
		if expansion, ok := macros[cmd]; ok {
			return expansion
		}
		return cmd
	})
}
