// Package parser maintains the structure of spectral model combination
// expressions such as "wa*(po+ga)" or "mt{tables/grid.mod}*po": it validates
// the grammar, numbers the components left to right, and supports structural
// edits addressed by those sequence numbers.
package parser

import (
	"fmt"
	"strings"

	"github.com/cxcsds/modexpr/tokenizer"
)

// ComponentSpec identifies one model component inside an expression.
type ComponentSpec struct {
	TokenIndex int    // index of the component's first token
	Sequence   int    // 1-based position among all components of the full expression
	Content    string // component name, or name{path} for table models
}

// Location is a half-open byte range [Start, End) into Expression.Text().
type Location struct {
	Start int
	End   int
}

// SequenceContext assigns initial sequence numbers after every (re)parse.
// Standalone expressions number 1..N; expressions embedded in a larger model
// tree are numbered from an offset and renumbered by the owning tree through
// SetComponentSequence once all sub-expressions are built.
type SequenceContext interface {
	InitSequences(specs []ComponentSpec)
}

// Standalone numbers components 1..N.
type Standalone struct{}

func (Standalone) InitSequences(specs []ComponentSpec) {
	for i := range specs {
		specs[i].Sequence = i + 1
	}
}

// TreeNode numbers components Base+1..Base+N for a sub-expression nested in
// a larger model tree.
type TreeNode struct {
	Base int
}

func (t TreeNode) InitSequences(specs []ComponentSpec) {
	for i := range specs {
		specs[i].Sequence = t.Base + i + 1
	}
}

// Options configure an Expression.
type Options struct {
	Sequencing   SequenceContext // defaults to Standalone{}
	PreserveCase bool            // keep input case instead of lowercasing
}

// Expression owns one token sequence and one component list, kept consistent
// with each other and with the normalized expression text. Instances are not
// safe for concurrent mutation.
type Expression struct {
	text   string
	tokens []tokenizer.Token
	specs  []ComponentSpec
	opts   Options
}

// New parses text into an Expression. Whitespace is stripped and, unless
// PreserveCase is set, the text is lowercased; all reported offsets refer to
// the normalized text returned by Text().
func New(text string, options ...Options) (*Expression, error) {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Sequencing == nil {
		opts.Sequencing = Standalone{}
	}

	e := &Expression{opts: opts}
	if err := e.init(text); err != nil {
		return nil, err
	}

	return e, nil
}

// init runs the full pipeline on text and commits the result only on
// success, so a failed reparse leaves the prior state untouched.
func (e *Expression) init(text string) error {
	compact := normalize(text, e.opts)

	tokens, err := scanTokens(compact, e.opts)
	if err != nil {
		return err
	}

	if err := validate(compact, tokens); err != nil {
		return err
	}

	specs := buildSpecs(tokens)
	e.opts.Sequencing.InitSequences(specs)

	e.text = compact
	e.tokens = tokens
	e.specs = specs

	return nil
}

// reparse parses candidate and, when preserve is set, carries the previous
// sequence numbers over to the new component list.
func (e *Expression) reparse(candidate string, preserve bool) error {
	old := e.specs

	next := Expression{opts: e.opts}
	if err := next.init(candidate); err != nil {
		return err
	}

	if preserve {
		if len(next.specs) != len(old) {
			return fmt.Errorf("%w: %d components, was %d", ErrComponentCountChanged, len(next.specs), len(old))
		}
		for i := range next.specs {
			next.specs[i].Sequence = old[i].Sequence
		}
	}

	*e = next

	return nil
}

// Text returns the normalized expression text.
func (e *Expression) Text() string {
	return e.text
}

// Tokens returns a copy of the token sequence.
func (e *Expression) Tokens() []tokenizer.Token {
	out := make([]tokenizer.Token, len(e.tokens))
	copy(out, e.tokens)
	return out
}

// ComponentSpecs returns a copy of the ordered component list.
func (e *Expression) ComponentSpecs() []ComponentSpec {
	out := make([]ComponentSpec, len(e.specs))
	copy(out, e.specs)
	return out
}

// ComponentCount returns the number of components.
func (e *Expression) ComponentCount() int {
	return len(e.specs)
}

// Empty reports whether the expression has no components.
func (e *Expression) Empty() bool {
	return len(e.specs) == 0
}

// SetComponentSequence assigns a tree-wide sequence number to the component
// at the 1-based index. The number must not be in use by another component.
func (e *Expression) SetComponentSequence(index, seq int) error {
	if index < 1 || index > len(e.specs) {
		return fmt.Errorf("%w: %d of %d", ErrComponentIndexOutOfRange, index, len(e.specs))
	}

	for i := range e.specs {
		if i != index-1 && e.specs[i].Sequence == seq {
			return fmt.Errorf("%w: %d", ErrDuplicateSequence, seq)
		}
	}

	e.specs[index-1].Sequence = seq

	return nil
}

// GetComponentLocation returns the source span of the component at the
// 1-based index, for user-facing error reports.
func (e *Expression) GetComponentLocation(index int) (Location, error) {
	if index < 1 || index > len(e.specs) {
		return Location{}, fmt.Errorf("%w: %d of %d", ErrComponentIndexOutOfRange, index, len(e.specs))
	}

	spec := e.specs[index-1]
	start := e.tokens[spec.TokenIndex].Offset

	return Location{Start: start, End: start + len(spec.Content)}, nil
}

// indexOfSequence returns the position of the spec carrying seq.
func (e *Expression) indexOfSequence(seq int) (int, error) {
	for i := range e.specs {
		if e.specs[i].Sequence == seq {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %d", ErrSequenceNotFound, seq)
}

// maxSequence returns the highest sequence number in use, 0 when empty.
func (e *Expression) maxSequence() int {
	max := 0
	for i := range e.specs {
		if e.specs[i].Sequence > max {
			max = e.specs[i].Sequence
		}
	}

	return max
}

// normalize strips whitespace and applies case folding.
func normalize(text string, opts Options) string {
	compact := strings.Join(strings.Fields(text), "")
	if !opts.PreserveCase {
		compact = strings.ToLower(compact)
	}

	return compact
}

// scanTokens tokenizes normalized text.
func scanTokens(compact string, opts Options) ([]tokenizer.Token, error) {
	return tokenizer.NewExprTokenizer(compact, tokenizer.TokenizerOptions{
		SkipWhitespace: true,
		PreserveCase:   opts.PreserveCase,
	}).AllTokens()
}
