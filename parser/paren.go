package parser

import "strings"

// Precedence levels for a parenthesized span: lower binds looser, meaning
// the surrounding parentheses are more necessary.
const (
	precedenceAdditive       = 1 // top-level '+' or '-'
	precedenceMultiplicative = 2 // '*', '/', or a nested parenthesis
	precedenceSingle         = 3 // exactly one component, parens never needed
)

// findMatchingRightParen locates the ')' matching the '(' at left and
// reports whether a '+' occurs at any depth inside the span. A '+' anywhere
// in the span marks it as a component group. Returns -1 when unmatched.
func findMatchingRightParen(text string, left int) (right int, hasPlus bool) {
	depth := 0

	for i := left; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, hasPlus
			}
		case '+':
			hasPlus = true
		case '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return -1, false
			}
			i += end
		}
	}

	return -1, false
}

// findPrecedenceLevel classifies the span text[start:end], the interior of a
// parenthesis pair. Only characters outside nested parens and table
// specifiers are inspected.
func findPrecedenceLevel(text string, start, end int) int {
	var top strings.Builder
	nested := false

	for i := start; i < end; i++ {
		switch text[i] {
		case '(':
			right, _ := findMatchingRightParen(text, i)
			if right < 0 || right >= end {
				return precedenceMultiplicative
			}
			i = right
			nested = true
		case '{':
			off := strings.IndexByte(text[i:], '}')
			if off < 0 {
				return precedenceMultiplicative
			}
			i += off
		default:
			top.WriteByte(text[i])
		}
	}

	flat := top.String()
	if strings.ContainsAny(flat, "+-") {
		return precedenceAdditive
	}
	if nested || strings.ContainsAny(flat, "*/") {
		return precedenceMultiplicative
	}

	return precedenceSingle
}

// RemoveRedundantParens strips parentheses whose removal cannot change the
// evaluation grouping. The pass is recursive, innermost-first, and
// idempotent: running it on its own output makes no further change.
func RemoveRedundantParens(text string) string {
	return killRedundantParen(text, 0)
}

func killRedundantParen(text string, from int) string {
	i := from
	for i < len(text) && text[i] != '(' {
		if text[i] == '{' {
			off := strings.IndexByte(text[i:], '}')
			if off < 0 {
				return text
			}
			i += off
		}
		i++
	}
	if i >= len(text) {
		return text
	}

	right, _ := findMatchingRightParen(text, i)
	if right < 0 {
		return text
	}

	// Innermost first: clean the interior before classifying this pair.
	interior := killRedundantParen(text[i+1:right], 0)
	text = text[:i+1] + interior + text[right:]
	right = i + 1 + len(interior)

	var before, after byte
	if i > 0 {
		before = text[i-1]
	}
	if right+1 < len(text) {
		after = text[right+1]
	}

	if findPrecedenceLevel(text, i+1, right) == precedenceSingle {
		// A lone component never needs parens; a '*' keeps an abutting
		// component multiplied, otherwise the paren just disappears.
		left, rightRepl := "", ""
		if isComponentEnd(before) {
			left = "*"
		}
		if isComponentStart(after) {
			rightRepl = "*"
		}
		text = text[:i] + left + text[i+1:right] + rightRepl + text[right+1:]

		return killRedundantParen(text, i)
	}

	if isLowBefore(before) && isLowAfter(after) {
		// The surrounding context already binds no tighter than the
		// interior, so the pair changes nothing.
		text = text[:i] + text[i+1:right] + text[right+1:]

		return killRedundantParen(text, i)
	}

	return killRedundantParen(text, i+1)
}

// isComponentEnd reports whether c can close a factor directly before '('.
func isComponentEnd(c byte) bool {
	return isWordByte(c) || c == ')' || c == '}'
}

// isComponentStart reports whether c can open a factor directly after ')'.
func isComponentStart(c byte) bool {
	return isWordByte(c) || c == '('
}

// isLowBefore reports whether the char before '(' leaves the pair in an
// additive or boundary context. A word, ')', '}' or '*' blocks removal.
func isLowBefore(c byte) bool {
	return c == 0 || c == '+' || c == '('
}

// isLowAfter reports whether the char after ')' leaves the pair in an
// additive or boundary context. A word, '(' or '*' blocks removal.
func isLowAfter(c byte) bool {
	return c == 0 || c == '+' || c == ')'
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '.':
		return true
	default:
		return false
	}
}

// multiplyingCGroups reports whether two component groups are combined
// multiplicatively, either by '*' or by juxtaposition. The semantics of
// multiplying two additive groups are ambiguous and rejected at validation.
func multiplyingCGroups(text string) bool {
	pending := false

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '+':
			pending = false
		case '{':
			off := strings.IndexByte(text[i:], '}')
			if off < 0 {
				return false
			}
			i += off
		case '(':
			right, hasPlus := findMatchingRightParen(text, i)
			if right < 0 {
				return false
			}
			if multiplyingCGroups(text[i+1 : right]) {
				return true
			}
			if hasPlus {
				if pending {
					return true
				}
				pending = true
			}
			i = right
		}
	}

	return false
}
