package formatter

import (
	"testing"

	"github.com/cxcsds/modexpr/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "whitespace and case",
			input:    " WA * ( Po + GA ) ",
			expected: "wa*(po+ga)",
		},
		{
			name:     "redundant parens removed",
			input:    "((po+ga))",
			expected: "po+ga",
		},
		{
			name:     "single component unwrapped with star",
			input:    "wa(po)",
			expected: "wa*po",
		},
		{
			name:     "needed parens kept",
			input:    "wa*(po+ga)",
			expected: "wa*(po+ga)",
		},
		{
			name:     "table specifier verbatim",
			input:    "wa{/Path/To-File} * po",
			expected: "wa{/path/to-file}*po",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Format(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestFormatKeepParens(t *testing.T) {
	actual, err := Format("((po+ga))", Options{KeepParens: true})
	require.NoError(t, err)
	assert.Equal(t, "((po+ga))", actual)
}

func TestFormatPreserveCase(t *testing.T) {
	actual, err := Format("WA*Po", Options{PreserveCase: true})
	require.NoError(t, err)
	assert.Equal(t, "WA*Po", actual)
}

func TestFormatInvalid(t *testing.T) {
	_, err := Format("(comp1+comp2)(comp3+comp4)")
	assert.ErrorIs(t, err, parser.ErrGroupMultiplication)

	_, err = Format("po-ga")
	assert.ErrorIs(t, err, parser.ErrMisplacedOperator)
}

func TestFormatPreservesComponents(t *testing.T) {
	inputs := []string{
		"wa*(po+ga)",
		"((po))+ga",
		"wa(po)",
		"(wa{/a/b-c})*po",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			before, err := parser.New(input)
			require.NoError(t, err)

			formatted, err := Format(input)
			require.NoError(t, err)

			after, err := parser.New(formatted)
			require.NoError(t, err)

			start, end := parser.FindWordDifference(before, after)
			assert.Equal(t, 0, start)
			assert.Equal(t, 0, end)
		})
	}
}
