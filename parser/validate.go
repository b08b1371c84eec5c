package parser

import (
	"fmt"

	"github.com/cxcsds/modexpr/tokenizer"
)

// validate enforces the combination grammar on a token sequence:
// balanced delimiters, '-' and '/' confined to table specifiers, operators
// only between components, and no multiplication of two component groups.
// Implicit multiplication (a word or ')' abutting '(') is legal.
func validate(text string, tokens []tokenizer.Token) error {
	depth := 0
	inBrace := false
	prev := tokenizer.Token{Type: tokenizer.EOF}

	for i, tok := range tokens {
		if inBrace {
			if err := validateBraceToken(tok, prev); err != nil {
				return err
			}
			if tok.Type == tokenizer.CLOSED_BRACE {
				inBrace = false
			}
			prev = tok
			continue
		}

		switch tok.Type {
		case tokenizer.MINUS, tokenizer.DIVIDE:
			return fmt.Errorf("%w: %q at position %d", ErrMisplacedOperator, tok.Value, tok.Offset)

		case tokenizer.PLUS, tokenizer.MULTIPLY:
			if !endsComponent(prev.Type) {
				return fmt.Errorf("%w: %q at position %d", ErrMisplacedToken, tok.Value, tok.Offset)
			}
			if i == len(tokens)-1 {
				return fmt.Errorf("%w: expression ends with %q", ErrMisplacedToken, tok.Value)
			}

		case tokenizer.OPENED_PARENS:
			depth++

		case tokenizer.CLOSED_PARENS:
			if depth == 0 {
				return fmt.Errorf("%w: ')' at position %d", ErrUnbalancedParens, tok.Offset)
			}
			if prev.Type == tokenizer.OPENED_PARENS {
				return fmt.Errorf("%w: at position %d", ErrEmptyParens, tok.Offset)
			}
			if !endsComponent(prev.Type) {
				return fmt.Errorf("%w: ')' at position %d", ErrMisplacedToken, tok.Offset)
			}
			depth--

		case tokenizer.OPENED_BRACE:
			if prev.Type != tokenizer.WORD {
				return fmt.Errorf("%w: table specifier must follow a component name at position %d", ErrMisplacedToken, tok.Offset)
			}
			inBrace = true

		case tokenizer.CLOSED_BRACE:
			return fmt.Errorf("%w: '}' at position %d", ErrUnbalancedBraces, tok.Offset)

		case tokenizer.WORD:
			if prev.Type == tokenizer.CLOSED_BRACE {
				return fmt.Errorf("%w: %q must be joined by an operator at position %d", ErrMisplacedToken, tok.Value, tok.Offset)
			}
		}

		prev = tok
	}

	if inBrace {
		return fmt.Errorf("%w: unterminated '{'", ErrNestedGroup)
	}
	if depth != 0 {
		return fmt.Errorf("%w: missing ')'", ErrUnbalancedParens)
	}

	if multiplyingCGroups(text) {
		return fmt.Errorf("%w: %s", ErrGroupMultiplication, text)
	}

	return nil
}

// validateBraceToken checks a token inside a '{...}' span. Only words, '-'
// and '/' may appear; '-' must sit between words.
func validateBraceToken(tok, prev tokenizer.Token) error {
	switch tok.Type {
	case tokenizer.WORD, tokenizer.DIVIDE:
		return nil

	case tokenizer.MINUS:
		if prev.Type != tokenizer.WORD {
			return fmt.Errorf("%w: '-' at position %d", ErrInvalidBraceContent, tok.Offset)
		}
		return nil

	case tokenizer.CLOSED_BRACE:
		if prev.Type == tokenizer.OPENED_BRACE {
			return fmt.Errorf("%w: empty specifier at position %d", ErrInvalidBraceContent, tok.Offset)
		}
		if prev.Type == tokenizer.MINUS {
			return fmt.Errorf("%w: '-' at end of specifier at position %d", ErrInvalidBraceContent, tok.Offset)
		}
		return nil

	case tokenizer.OPENED_BRACE:
		return fmt.Errorf("%w: '{' at position %d", ErrNestedGroup, tok.Offset)

	default:
		return fmt.Errorf("%w: %q at position %d", ErrInvalidBraceContent, tok.Value, tok.Offset)
	}
}

// endsComponent reports whether a token type can close a factor, i.e. may be
// followed by a combining operator or ')'.
func endsComponent(t tokenizer.TokenType) bool {
	switch t {
	case tokenizer.WORD, tokenizer.CLOSED_PARENS, tokenizer.CLOSED_BRACE:
		return true
	default:
		return false
	}
}
