package typer

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/token"
	"github.com/cwbudde/mlc/internal/types"
)

// ErrorKind classifies a type-checking failure.
type ErrorKind int

const (
	// NameNotFound: a Name or FunctionCall referenced an identifier that
	// is not bound in any enclosing scope, or an Assignment target is not
	// bound in the current scope.
	NameNotFound ErrorKind = iota
	// ConflictingTypes: a declaration, assignment, or list literal
	// required two types to agree and they didn't.
	ConflictingTypes
	// InvalidType: an expression of one type was used where a different,
	// specific type was required (currently only an If condition).
	InvalidType
)

func (k ErrorKind) String() string {
	switch k {
	case NameNotFound:
		return "name not found"
	case ConflictingTypes:
		return "conflicting types"
	case InvalidType:
		return "invalid type"
	default:
		return "type error"
	}
}

// Error is the error type returned by Check. Declared and Actual are
// populated for ConflictingTypes and InvalidType; both are nil for
// NameNotFound.
type Error struct {
	Kind     ErrorKind
	Token    token.Token
	Declared types.Type
	Actual   types.Type
}

// Pos satisfies internal/cerrors.Positioned.
func (e *Error) Pos() token.Position { return e.Token.Pos }

func (e *Error) Error() string {
	switch e.Kind {
	case NameNotFound:
		return fmt.Sprintf("%s: undefined name %q", e.Token.Pos, e.Token.Lexeme)
	case ConflictingTypes:
		return fmt.Sprintf("%s: %q has type %s, expected %s", e.Token.Pos, e.Token.Lexeme, e.Actual, e.Declared)
	case InvalidType:
		return fmt.Sprintf("%s: %q has type %s, expected %s", e.Token.Pos, e.Token.Lexeme, e.Actual, e.Declared)
	default:
		return fmt.Sprintf("%s: type error near %q", e.Token.Pos, e.Token.Lexeme)
	}
}

func nameNotFound(tok token.Token) *Error {
	return &Error{Kind: NameNotFound, Token: tok}
}

func conflictingTypes(tok token.Token, declared, actual types.Type) *Error {
	return &Error{Kind: ConflictingTypes, Token: tok, Declared: declared, Actual: actual}
}

func invalidType(tok token.Token, actual, expected types.Type) *Error {
	return &Error{Kind: InvalidType, Token: tok, Declared: expected, Actual: actual}
}
