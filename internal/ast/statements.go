package ast

import (
	"github.com/cwbudde/mlc/internal/token"
	"github.com/cwbudde/mlc/internal/types"
)

// Param is one name:type entry in a function's parameter list.
type Param struct {
	Name token.Token
	Type types.Type
}

// VariableDeclaration is `let name: type = value`.
type VariableDeclaration struct {
	Token token.Token // the 'let' token
	Name  token.Token
	Type  types.Type
	Value Expression
}

func (s *VariableDeclaration) statementNode()      {}
func (s *VariableDeclaration) Pos() token.Position { return s.Token.Pos }

// FunctionDefinition is `fn name(params) -> returnType { body }`.
type FunctionDefinition struct {
	Token      token.Token // the 'fn' token
	Name       token.Token
	ReturnType types.Type
	Args       []Param
	Body       Block
}

func (s *FunctionDefinition) statementNode()      {}
func (s *FunctionDefinition) Pos() token.Position { return s.Token.Pos }

// Assignment is `name = value`.
type Assignment struct {
	To    token.Token
	Value Expression
}

func (s *Assignment) statementNode()      {}
func (s *Assignment) Pos() token.Position { return s.To.Pos }

// While is `while condition { body }`.
type While struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      Block
}

func (s *While) statementNode()      {}
func (s *While) Pos() token.Position { return s.Token.Pos }

// Return is `return value;`.
type Return struct {
	Token token.Token // the 'return' token
	Value Expression
}

func (s *Return) statementNode()      {}
func (s *Return) Pos() token.Position { return s.Token.Pos }

// ExpressionStatement is an expression used in statement position, its
// value discarded.
type ExpressionStatement struct {
	Value Expression
}

func (s *ExpressionStatement) statementNode()      {}
func (s *ExpressionStatement) Pos() token.Position { return s.Value.Pos() }
