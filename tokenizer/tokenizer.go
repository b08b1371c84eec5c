package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// ExprTokenizer is a tokenizer for model expressions that returns an iterator
type ExprTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
	PreserveCase   bool
}

// NewExprTokenizer creates a new ExprTokenizer
func NewExprTokenizer(input string, options ...TokenizerOptions) *ExprTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
		PreserveCase:   false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &ExprTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *ExprTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:   t.input,
			options: t.options,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}
				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, excluding the trailing EOF token.
func (t *ExprTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}
		if token.Type == EOF {
			break
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	current  rune
	options  TokenizerOptions
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	switch {
	case t.current == 0:
		return t.newToken(EOF, ""), nil
	case t.current == ' ' || t.current == '\t' || t.current == '\r' || t.current == '\n':
		return t.readWhitespace(), nil
	case t.current == '+':
		return t.readSingle(PLUS), nil
	case t.current == '-':
		return t.readSingle(MINUS), nil
	case t.current == '*':
		return t.readSingle(MULTIPLY), nil
	case t.current == '/':
		return t.readSingle(DIVIDE), nil
	case t.current == '(':
		return t.readSingle(OPENED_PARENS), nil
	case t.current == ')':
		return t.readSingle(CLOSED_PARENS), nil
	case t.current == '{':
		return t.readSingle(OPENED_BRACE), nil
	case t.current == '}':
		return t.readSingle(CLOSED_BRACE), nil
	case isWordRune(t.current):
		return t.readWord(), nil
	default:
		return Token{}, fmt.Errorf("%w: %q at position %d", ErrUnexpectedCharacter, t.current, t.position-1)
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.position++
		return
	}

	t.current = rune(t.input[t.position])
	t.position++
}

// readSingle reads a one-character token
func (t *tokenizer) readSingle(tokenType TokenType) Token {
	token := t.newToken(tokenType, string(t.current))
	t.readChar()
	return token
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	var builder strings.Builder
	startOffset := t.position - 1

	for unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:   WHITESPACE,
		Value:  builder.String(),
		Offset: startOffset,
	}
}

// readWord reads a component name or path segment
func (t *tokenizer) readWord() Token {
	var builder strings.Builder
	startOffset := t.position - 1

	for isWordRune(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	word := builder.String()
	if !t.options.PreserveCase {
		word = strings.ToLower(word)
	}

	return Token{
		Type:   WORD,
		Value:  word,
		Offset: startOffset,
	}
}

// newToken creates a new token at the current position
func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:   tokenType,
		Value:  value,
		Offset: t.position - 1 - (len(value) - 1),
	}
}

// isWordRune reports whether r may appear in a component name or a path
// segment inside a table specifier.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.'
}
