package parser

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestReplaceWordBySequence(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		seq          int
		replacement  string
		expectedText string
	}{
		{
			name:         "same length rename",
			input:        "wa*(po+ga)",
			seq:          2,
			replacement:  "zb",
			expectedText: "wa*(zb+ga)",
		},
		{
			name:         "longer rename shifts offsets",
			input:        "wa*(po+ga)",
			seq:          2,
			replacement:  "powerlaw",
			expectedText: "wa*(powerlaw+ga)",
		},
		{
			name:         "word to table model",
			input:        "wa*po",
			seq:          1,
			replacement:  "mt{tables/grid.mod}",
			expectedText: "mt{tables/grid.mod}*po",
		},
		{
			name:         "table model to word",
			input:        "wa{/path/to-file}*po",
			seq:          1,
			replacement:  "wa",
			expectedText: "wa*po",
		},
		{
			name:         "last component",
			input:        "wa*(po+ga)",
			seq:          3,
			replacement:  "bb",
			expectedText: "wa*(po+bb)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := New(tt.input)
			assert.NoError(t, err)

			before := expr.ComponentSpecs()

			assert.NoError(t, expr.ReplaceWordBySequence(tt.seq, tt.replacement))
			assert.Equal(t, tt.expectedText, expr.Text())

			// Sequence stability: same sequence numbers, only the addressed
			// content changed.
			after := expr.ComponentSpecs()
			assert.Equal(t, len(before), len(after))
			for i := range after {
				assert.Equal(t, before[i].Sequence, after[i].Sequence)
				if after[i].Sequence != tt.seq {
					assert.Equal(t, before[i].Content, after[i].Content)
				}
			}

			// Tokens and text stay consistent after the patch.
			reparsed, err := New(expr.Text())
			assert.NoError(t, err)
			assert.Equal(t, reparsed.Tokens(), expr.Tokens())
		})
	}
}

func TestReplaceErrors(t *testing.T) {
	expr, err := New("wa*po")
	assert.NoError(t, err)

	err = expr.ReplaceWordBySequence(9, "zb")
	assert.True(t, errors.Is(err, ErrSequenceNotFound))

	err = expr.ReplaceWordBySequence(1, "po+ga")
	assert.True(t, errors.Is(err, ErrInvalidComponentName))

	err = expr.ReplaceWordBySequence(1, "")
	assert.True(t, errors.Is(err, ErrInvalidComponentName))

	// Failed edits leave the expression untouched.
	assert.Equal(t, "wa*po", expr.Text())
	assert.Equal(t, 2, expr.ComponentCount())
}

func TestInsertWordBySequence(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		seq          int
		component    string
		op           byte
		expectedText string
	}{
		{
			name:         "grouping preserving insert",
			input:        "wa*po",
			seq:          2,
			component:    "ga",
			op:           '+',
			expectedText: "wa*(ga+po)",
		},
		{
			name:         "groupify closes at next top-level plus",
			input:        "wa*po+ed",
			seq:          2,
			component:    "ga",
			op:           '+',
			expectedText: "wa*(ga+po)+ed",
		},
		{
			name:         "additive insert before component",
			input:        "po+ga",
			seq:          2,
			component:    "ed",
			op:           '+',
			expectedText: "po+ed+ga",
		},
		{
			name:         "multiplicative insert before component",
			input:        "po+ga",
			seq:          2,
			component:    "wa",
			op:           '*',
			expectedText: "po+wa*ga",
		},
		{
			name:         "append at end",
			input:        "wa*po",
			seq:          3,
			component:    "ga",
			op:           '+',
			expectedText: "wa*po+ga",
		},
		{
			name:         "insert at head",
			input:        "po+ga",
			seq:          1,
			component:    "ed",
			op:           '+',
			expectedText: "ed+po+ga",
		},
		{
			name:         "insert inside existing group",
			input:        "wa*(po+ga)",
			seq:          2,
			component:    "ed",
			op:           '+',
			expectedText: "wa*(ed+po+ga)",
		},
		{
			name:         "table model insert",
			input:        "po",
			seq:          1,
			component:    "mt{tables/grid.mod}",
			op:           '*',
			expectedText: "mt{tables/grid.mod}*po",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := New(tt.input)
			assert.NoError(t, err)

			assert.NoError(t, expr.InsertWordBySequence(tt.seq, tt.component, tt.op))
			assert.Equal(t, tt.expectedText, expr.Text())

			// Sequences are re-derived 1..N after a structural change.
			for i, spec := range expr.ComponentSpecs() {
				assert.Equal(t, i+1, spec.Sequence)
			}
		})
	}
}

func TestInsertIntoEmptyExpression(t *testing.T) {
	expr, err := New("")
	assert.NoError(t, err)
	assert.True(t, expr.Empty())

	assert.NoError(t, expr.InsertWordBySequence(1, "po", '+'))
	assert.Equal(t, "po", expr.Text())
	assert.Equal(t, 1, expr.ComponentCount())
}

func TestInsertErrors(t *testing.T) {
	expr, err := New("wa*po")
	assert.NoError(t, err)

	err = expr.InsertWordBySequence(1, "ga", '-')
	assert.True(t, errors.Is(err, ErrInvalidOperator))

	err = expr.InsertWordBySequence(1, "(po)", '+')
	assert.True(t, errors.Is(err, ErrInvalidComponentName))

	assert.Equal(t, "wa*po", expr.Text())
}

func TestDeleteWordBySequence(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		seq          int
		expectedText string
	}{
		{
			name:         "middle of additive chain",
			input:        "a+b+c",
			seq:          2,
			expectedText: "a+c",
		},
		{
			name:         "head of additive chain",
			input:        "a+b+c",
			seq:          1,
			expectedText: "b+c",
		},
		{
			name:         "tail of additive chain",
			input:        "a+b+c",
			seq:          3,
			expectedText: "a+b",
		},
		{
			name:         "multiplied component keeps its star",
			input:        "wa*po",
			seq:          1,
			expectedText: "po",
		},
		{
			name:         "multiplier of additive tail",
			input:        "a*b+c",
			seq:          2,
			expectedText: "a+c",
		},
		{
			name:         "additive head of product",
			input:        "a+b*c",
			seq:          2,
			expectedText: "a+c",
		},
		{
			name:         "inside component group",
			input:        "wa*(po+ga)",
			seq:          3,
			expectedText: "wa*po",
		},
		{
			name:         "first of component group",
			input:        "wa*(po+ga)",
			seq:          2,
			expectedText: "wa*ga",
		},
		{
			name:         "group survives factor deletion",
			input:        "wa*(po+ga)",
			seq:          1,
			expectedText: "po+ga",
		},
		{
			name:         "sole content of parens takes them along",
			input:        "wa*(po)",
			seq:          2,
			expectedText: "wa",
		},
		{
			name:         "component after group",
			input:        "(po+ga)*wa",
			seq:          3,
			expectedText: "po+ga",
		},
		{
			name:         "table model deletion",
			input:        "wa{/path/to-file}*po",
			seq:          1,
			expectedText: "po",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := New(tt.input)
			assert.NoError(t, err)

			assert.NoError(t, expr.DeleteWordBySequence(tt.seq))
			assert.Equal(t, tt.expectedText, expr.Text())

			for i, spec := range expr.ComponentSpecs() {
				assert.Equal(t, i+1, spec.Sequence)
			}
		})
	}
}

func TestDeleteStructuralInverse(t *testing.T) {
	// Spec'd inverse property: [A,B,C] as A+B+C, delete 2 leaves exactly
	// [A,C] renumbered {1,2} with valid text.
	expr, err := New("compa+compb+compc")
	assert.NoError(t, err)

	assert.NoError(t, expr.DeleteWordBySequence(2))

	specs := expr.ComponentSpecs()
	assert.Equal(t, 2, len(specs))
	assert.Equal(t, "compa", specs[0].Content)
	assert.Equal(t, "compc", specs[1].Content)
	assert.Equal(t, 1, specs[0].Sequence)
	assert.Equal(t, 2, specs[1].Sequence)

	_, err = New(expr.Text())
	assert.NoError(t, err)
}

func TestDeleteOnlyComponent(t *testing.T) {
	expr, err := New("po")
	assert.NoError(t, err)

	assert.NoError(t, expr.DeleteWordBySequence(1))
	assert.Equal(t, "", expr.Text())
	assert.True(t, expr.Empty())
}

func TestDeleteErrors(t *testing.T) {
	expr, err := New("wa*po")
	assert.NoError(t, err)

	err = expr.DeleteWordBySequence(5)
	assert.True(t, errors.Is(err, ErrSequenceNotFound))
	assert.Equal(t, "wa*po", expr.Text())
}

func TestEditRoundTrip(t *testing.T) {
	// insert then delete the same component restores the component list
	expr, err := New("wa*(po+ga)")
	assert.NoError(t, err)

	assert.NoError(t, expr.InsertWordBySequence(2, "ed", '+'))
	assert.Equal(t, []string{"wa", "ed", "po", "ga"}, contents(expr.specs))

	assert.NoError(t, expr.DeleteWordBySequence(2))
	assert.Equal(t, []string{"wa", "po", "ga"}, contents(expr.specs))
}
