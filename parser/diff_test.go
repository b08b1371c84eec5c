package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func mustParse(t *testing.T, text string) *Expression {
	t.Helper()

	expr, err := New(text)
	assert.NoError(t, err)

	return expr
}

func TestFindWordDifference(t *testing.T) {
	tests := []struct {
		name    string
		oldExpr string
		newExpr string
		start   int
		end     int
	}{
		{
			name:    "replaced component",
			oldExpr: "wa*(po+ga)",
			newExpr: "wa*(po+bb)",
			start:   3,
			end:     3,
		},
		{
			name:    "no difference",
			oldExpr: "wa*(po+ga)",
			newExpr: "wa*(po+ga)",
			start:   0,
			end:     0,
		},
		{
			name:    "appended component",
			oldExpr: "wa*po",
			newExpr: "wa*po+ga",
			start:   3,
			end:     3,
		},
		{
			name:    "deleted component",
			oldExpr: "wa*(po+ga)",
			newExpr: "wa*ga",
			start:   2,
			end:     2,
		},
		{
			name:    "inserted within repeated run",
			oldExpr: "wa+ga+ga+po",
			newExpr: "wa+ga+ga+ga+po",
			start:   2,
			end:     4,
		},
		{
			name:    "first component changed",
			oldExpr: "po+ga",
			newExpr: "zb+ga",
			start:   1,
			end:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := FindWordDifference(mustParse(t, tt.oldExpr), mustParse(t, tt.newExpr))
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestEditOperationCheck(t *testing.T) {
	tests := []struct {
		name     string
		oldExpr  string
		newExpr  string
		compIdx  int
		expected bool
	}{
		{
			name:     "replace changes exactly one component",
			oldExpr:  "wa*(po+ga)",
			newExpr:  "wa*(po+bb)",
			compIdx:  3,
			expected: true,
		},
		{
			name:     "insert changes exactly one component",
			oldExpr:  "wa*po",
			newExpr:  "wa*(ga+po)",
			compIdx:  2,
			expected: true,
		},
		{
			name:     "delete changes exactly one component",
			oldExpr:  "a+b+c",
			newExpr:  "a+c",
			compIdx:  2,
			expected: true,
		},
		{
			name:     "two components changed",
			oldExpr:  "a+b+c",
			newExpr:  "a+x+y",
			compIdx:  2,
			expected: false,
		},
		{
			name:     "wrong index for delete",
			oldExpr:  "a+b+c",
			newExpr:  "a+c",
			compIdx:  1,
			expected: false,
		},
		{
			name:     "size delta two",
			oldExpr:  "a",
			newExpr:  "a+b+c",
			compIdx:  2,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := TestEditOperation(mustParse(t, tt.oldExpr), mustParse(t, tt.newExpr), tt.compIdx)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
