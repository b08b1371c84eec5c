package parser

import (
	"fmt"

	"github.com/cxcsds/modexpr/tokenizer"
)

// ReplaceWordBySequence overwrites the content of the component carrying the
// given sequence number. A rename that keeps the token shape is patched in
// place; anything else splices a candidate string and reparses it, keeping
// the previous sequence numbers.
func (e *Expression) ReplaceWordBySequence(seq int, name string) error {
	idx, err := e.indexOfSequence(seq)
	if err != nil {
		return err
	}

	comp, compTokens, err := e.normalizeComponent(name)
	if err != nil {
		return err
	}

	spec := &e.specs[idx]
	start := e.tokens[spec.TokenIndex].Offset
	end := start + len(spec.Content)
	oldCount := e.componentTokenCount(idx)

	if len(compTokens) == oldCount {
		// Same token shape: patch tokens, text and offsets without a rebuild.
		delta := len(comp) - len(spec.Content)
		for i := range compTokens {
			compTokens[i].Offset += start
		}
		copy(e.tokens[spec.TokenIndex:], compTokens)
		for i := spec.TokenIndex + oldCount; i < len(e.tokens); i++ {
			e.tokens[i].Offset += delta
		}
		spec.Content = comp
		e.text = e.text[:start] + comp + e.text[end:]

		return nil
	}

	return e.reparse(e.text[:start]+comp+e.text[end:], true)
}

// InsertWordBySequence inserts a new component combined by op ('+' or '*').
// A sequence number beyond the last component appends at end-of-string;
// otherwise the component is inserted before the one carrying seq. When the
// insertion point directly follows a '*' and op is '+', the multiplicative
// neighbour is grouped first, so "a*b" gains c as "a*(c+b)" instead of the
// regrouping "a*c+b".
func (e *Expression) InsertWordBySequence(seq int, name string, op byte) error {
	if op != '+' && op != '*' {
		return fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}

	comp, _, err := e.normalizeComponent(name)
	if err != nil {
		return err
	}

	if e.Empty() {
		return e.reparse(comp, false)
	}
	if seq > e.maxSequence() {
		return e.reparse(e.text+string(op)+comp, false)
	}

	idx, err := e.indexOfSequence(seq)
	if err != nil {
		return err
	}

	start := e.tokens[e.specs[idx].TokenIndex].Offset

	if op == '+' && start > 0 && e.text[start-1] == '*' {
		end := e.findGroupEnd(start)
		candidate := e.text[:start] + "(" + comp + "+" + e.text[start:end] + ")" + e.text[end:]

		return e.reparse(candidate, false)
	}

	return e.reparse(e.text[:start]+comp+string(op)+e.text[start:], false)
}

// DeleteWordBySequence removes the component carrying the given sequence
// number together with exactly one neighbouring operator, chosen so that the
// remaining text never holds adjacent or dangling operators and no surviving
// component changes group.
func (e *Expression) DeleteWordBySequence(seq int) error {
	idx, err := e.indexOfSequence(seq)
	if err != nil {
		return err
	}

	if len(e.specs) == 1 {
		return e.reparse("", false)
	}

	spec := e.specs[idx]
	start := e.tokens[spec.TokenIndex].Offset
	end := start + len(spec.Content)

	// A component that is the sole content of a paren pair takes the pair
	// with it, so the operator policy sees the context outside the parens.
	for start > 0 && end < len(e.text) && e.text[start-1] == '(' && e.text[end] == ')' {
		start--
		end++
	}

	var prev, next byte
	if start > 0 {
		prev = e.text[start-1]
	}
	if end < len(e.text) {
		next = e.text[end]
	}

	switch {
	case prev == '*',
		prev == '+' && (next == 0 || next == ')' || next == '+'):
		start-- // the previous operator goes with the component
	case (prev == 0 || prev == '(') && (next == '+' || next == '*'),
		prev == '+' && next == '*':
		end++ // the next operator goes with the component
	}

	candidate := RemoveRedundantParens(e.text[:start] + e.text[end:])

	return e.reparse(candidate, false)
}

// normalizeComponent validates edit text as exactly one component and
// returns its normalized form together with its tokens.
func (e *Expression) normalizeComponent(name string) (string, []tokenizer.Token, error) {
	probe := Expression{opts: Options{Sequencing: Standalone{}, PreserveCase: e.opts.PreserveCase}}
	if err := probe.init(name); err != nil {
		return "", nil, err
	}

	if len(probe.specs) != 1 || probe.specs[0].Content != probe.text {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidComponentName, name)
	}

	return probe.text, probe.tokens, nil
}

// findGroupEnd scans forward from offset for the end of the current
// multiplicative run: a top-level '+', the ')' closing the enclosing group,
// or end-of-string.
func (e *Expression) findGroupEnd(from int) int {
	depth := 0

	for i := from; i < len(e.text); i++ {
		switch e.text[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i
			}
			depth--
		case '+':
			if depth == 0 {
				return i
			}
		case '{':
			for i < len(e.text) && e.text[i] != '}' {
				i++
			}
		}
	}

	return len(e.text)
}
