package tokenizer

import "errors"

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	WORD // component names, path segments

	// Combination operators
	PLUS     // +
	MINUS    // - (only legal inside table specifiers)
	MULTIPLY // *
	DIVIDE   // / (only legal inside table specifiers)

	// Grouping
	OPENED_PARENS // (
	CLOSED_PARENS // )
	OPENED_BRACE  // { (opens a table-model specifier)
	CLOSED_BRACE  // } (closes a table-model specifier)
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case OPENED_BRACE:
		return "OPENED_BRACE"
	case CLOSED_BRACE:
		return "CLOSED_BRACE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a token in a model expression
type Token struct {
	Type   TokenType
	Value  string
	Offset int // byte offset into the scanned string
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// IsOperator reports whether the token is a combining operator (+ - * /).
func (t Token) IsOperator() bool {
	switch t.Type {
	case PLUS, MINUS, MULTIPLY, DIVIDE:
		return true
	default:
		return false
	}
}
