package parser

import "errors"

// Sentinel errors
var (
	// ErrUnbalancedParens indicates an unmatched '(' or ')'.
	// Grammar errors
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	// ErrUnbalancedBraces indicates a stray '}' with no opening '{'.
	ErrUnbalancedBraces = errors.New("unbalanced curly braces")
	// ErrNestedGroup indicates a nested or unterminated table specifier.
	ErrNestedGroup = errors.New("nested or unterminated table specifier")
	// ErrMisplacedOperator indicates '-' or '/' outside a table specifier.
	ErrMisplacedOperator = errors.New("'-' and '/' are only allowed inside table specifiers")
	// ErrMisplacedToken indicates a token in a position the grammar forbids.
	ErrMisplacedToken = errors.New("misplaced token")
	// ErrEmptyParens indicates an empty '()' pair.
	ErrEmptyParens = errors.New("empty parentheses")
	// ErrInvalidBraceContent indicates a table specifier holding anything but words, '-' and '/'.
	ErrInvalidBraceContent = errors.New("table specifier may contain only words, '-' and '/'")
	// ErrGroupMultiplication indicates two additive component groups combined multiplicatively.
	ErrGroupMultiplication = errors.New("cannot multiply two additive component groups")

	// ErrSequenceNotFound indicates an edit addressed a sequence number not present.
	// Lookup errors
	ErrSequenceNotFound = errors.New("component sequence not found")
	// ErrComponentIndexOutOfRange indicates a 1-based component index outside the list.
	ErrComponentIndexOutOfRange = errors.New("component index out of range")
	// ErrDuplicateSequence indicates an attempt to assign an already-used sequence number.
	ErrDuplicateSequence = errors.New("duplicate component sequence")

	// ErrInvalidComponentName indicates edit text that is not a single component.
	// Edit errors
	ErrInvalidComponentName = errors.New("component name must be a single word or word{path} specifier")
	// ErrInvalidOperator indicates a combining operator other than '+' or '*'.
	ErrInvalidOperator = errors.New("combining operator must be '+' or '*'")
	// ErrComponentCountChanged indicates a replace edit altered the number of components.
	ErrComponentCountChanged = errors.New("edit changed the component count")
)
