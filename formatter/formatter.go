// Package formatter produces the canonical form of a model expression:
// whitespace stripped, names lowercased, and redundant parentheses removed.
package formatter

import (
	"github.com/cxcsds/modexpr/parser"
)

// Options configure formatting.
type Options struct {
	PreserveCase bool
	KeepParens   bool // skip redundant-parenthesis removal
}

// Format validates text and returns its canonical form. The output is
// guaranteed to parse to the same component list as the input.
func Format(text string, options ...Options) (string, error) {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	expr, err := parser.New(text, parser.Options{PreserveCase: opts.PreserveCase})
	if err != nil {
		return "", err
	}

	out := expr.Text()
	if !opts.KeepParens {
		out = parser.RemoveRedundantParens(out)
	}

	return out, nil
}
