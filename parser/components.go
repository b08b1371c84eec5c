package parser

import (
	"strings"

	"github.com/cxcsds/modexpr/tokenizer"
)

// buildSpecs walks a validated token sequence and groups it into ordered
// component specs. A WORD directly followed by '{' absorbs every token up to
// and including the matching '}' into one table-model spec; the brace
// content was already grammar-checked and is stored verbatim.
func buildSpecs(tokens []tokenizer.Token) []ComponentSpec {
	specs := make([]ComponentSpec, 0, 4)

	for i := 0; i < len(tokens); i++ {
		if tokens[i].Type != tokenizer.WORD {
			continue
		}

		start := i
		var content strings.Builder
		content.WriteString(tokens[i].Value)

		if i+1 < len(tokens) && tokens[i+1].Type == tokenizer.OPENED_BRACE {
			for i++; tokens[i].Type != tokenizer.CLOSED_BRACE; i++ {
				content.WriteString(tokens[i].Value)
			}
			content.WriteString(tokens[i].Value)
		}

		specs = append(specs, ComponentSpec{
			TokenIndex: start,
			Content:    content.String(),
		})
	}

	return specs
}

// componentTokenCount returns the number of tokens spanned by the component
// at position idx: 1 for a plain word, the whole word{...} run for a table
// model.
func (e *Expression) componentTokenCount(idx int) int {
	start := e.specs[idx].TokenIndex
	if start+1 >= len(e.tokens) || e.tokens[start+1].Type != tokenizer.OPENED_BRACE {
		return 1
	}

	count := 2
	for i := start + 2; e.tokens[i].Type != tokenizer.CLOSED_BRACE; i++ {
		count++
	}

	return count + 1
}
