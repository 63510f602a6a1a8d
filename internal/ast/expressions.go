package ast

import "github.com/cwbudde/mlc/internal/token"

// If is both an expression (it produces the true branch's value) and,
// when used as a statement, a value-discarding conditional.
type If struct {
	Token     token.Token // the 'if' token
	Condition Expression
	TrueBlock Block
	ElseBlock Block // nil when there is no else
}

func (e *If) expressionNode()     {}
func (e *If) Pos() token.Position { return e.Token.Pos }

// BinaryOp applies a BinaryOperator to two operands.
type BinaryOp struct {
	LHS Expression
	Op  BinaryOperator
	RHS Expression
}

func (e *BinaryOp) expressionNode()     {}
func (e *BinaryOp) Pos() token.Position { return e.LHS.Pos() }

// UnaryOp applies a UnaryOperator to one operand.
type UnaryOp struct {
	Token token.Token // the operator token
	Op    UnaryOperator
	RHS   Expression
}

func (e *UnaryOp) expressionNode()     {}
func (e *UnaryOp) Pos() token.Position { return e.Token.Pos }

// FunctionCall invokes a named function with a list of argument
// expressions.
type FunctionCall struct {
	Name token.Token
	Args []Expression
}

func (e *FunctionCall) expressionNode()     {}
func (e *FunctionCall) Pos() token.Position { return e.Name.Pos }

// IntLiteral is a bare integer literal.
type IntLiteral struct {
	Token token.Token
}

func (e *IntLiteral) expressionNode()     {}
func (e *IntLiteral) Pos() token.Position { return e.Token.Pos }

// BoolLiteral is a `true` or `false` literal.
type BoolLiteral struct {
	Value bool
	Token token.Token
}

func (e *BoolLiteral) expressionNode()     {}
func (e *BoolLiteral) Pos() token.Position { return e.Token.Pos }

// ListLiteral is a bracketed, comma-separated sequence of expressions.
type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (e *ListLiteral) expressionNode()     {}
func (e *ListLiteral) Pos() token.Position { return e.Token.Pos }

// Name is a reference to a variable or function by identifier.
type Name struct {
	Token token.Token
}

func (e *Name) expressionNode()     {}
func (e *Name) Pos() token.Position { return e.Token.Pos }
