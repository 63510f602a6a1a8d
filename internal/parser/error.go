package parser

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/token"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// UnexpectedToken: a production expected one kind of token and found
	// another.
	UnexpectedToken ErrorKind = iota
	// InvalidName: a name was expected in a binding position (a variable,
	// parameter, or function name) but what was found cannot serve as one.
	InvalidName
)

// Error is the error type returned by Parse. The parser does not attempt
// error recovery: the first Error aborts parsing.
type Error struct {
	Kind           ErrorKind
	OffendingToken token.Token
	Message        string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (got %s)", e.OffendingToken.Pos, e.Message, e.OffendingToken.Kind)
}

// Pos satisfies internal/cerrors.Positioned.
func (e *Error) Pos() token.Position { return e.OffendingToken.Pos }
