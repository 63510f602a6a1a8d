package sexpr

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/ast"
)

// FromBlock renders a Block as a single SExpr whose head and leading
// arguments come from its first statement, with the remaining statements
// appended as further arguments -- the block is spliced into its first
// statement's application, so a block of exactly one application statement
// prints identically to that statement alone. A leaf first statement (a
// bare name or literal) becomes the head of an application, so a block
// holding only `z` prints as "(z)".
func FromBlock(block ast.Block) SExpr {
	if len(block) == 0 {
		return Func("block")
	}
	first := FromStatement(block[0])
	args := append([]SExpr{}, first.Args...)
	for _, s := range block[1:] {
		args = append(args, FromStatement(s))
	}
	return Func(first.Head, args...)
}

// FromStatements renders a top-level program (a bare slice of statements,
// not a block) as a "(program ...)" application.
func FromStatements(stmts []ast.Statement) SExpr {
	args := make([]SExpr, len(stmts))
	for i, s := range stmts {
		args[i] = FromStatement(s)
	}
	return Func("program", args...)
}

// FromStatement renders one ast.Statement node.
func FromStatement(s ast.Statement) SExpr {
	switch s := s.(type) {
	case *ast.VariableDeclaration:
		return Func("variable_declaration",
			Value(fmt.Sprintf("%s:%s", s.Name.Lexeme, s.Type)),
			FromExpression(s.Value))

	case *ast.FunctionDefinition:
		args := []SExpr{Value(s.Name.Lexeme)}
		for _, p := range s.Args {
			args = append(args, Value(fmt.Sprintf("%s:%s", p.Name.Lexeme, p.Type)))
		}
		args = append(args, FromBlock(s.Body))
		args = append(args, Value("->"+s.ReturnType.String()))
		return Func("function_define", args...)

	case *ast.Assignment:
		return Func("=", Value(s.To.Lexeme), FromExpression(s.Value))

	case *ast.While:
		return Func("while", FromExpression(s.Condition), FromBlock(s.Body))

	case *ast.Return:
		return Func("return", FromExpression(s.Value))

	case *ast.ExpressionStatement:
		return FromExpression(s.Value)

	default:
		panic(fmt.Sprintf("sexpr: unhandled statement type %T", s))
	}
}

// FromExpression renders one ast.Expression node.
func FromExpression(e ast.Expression) SExpr {
	switch e := e.(type) {
	case *ast.If:
		args := []SExpr{FromExpression(e.Condition), FromBlock(e.TrueBlock)}
		if e.ElseBlock != nil {
			args = append(args, FromBlock(e.ElseBlock))
		}
		return Func("if", args...)

	case *ast.BinaryOp:
		return Func(e.Op.String(), FromExpression(e.LHS), FromExpression(e.RHS))

	case *ast.UnaryOp:
		return Func(e.Op.String(), FromExpression(e.RHS))

	case *ast.FunctionCall:
		args := make([]SExpr, len(e.Args))
		for i, a := range e.Args {
			args[i] = FromExpression(a)
		}
		return Func(e.Name.Lexeme, args...)

	case *ast.IntLiteral:
		return Value(e.Token.Lexeme)

	case *ast.BoolLiteral:
		return Value(fmt.Sprintf("%t", e.Value))

	case *ast.ListLiteral:
		args := make([]SExpr, len(e.Elements))
		for i, el := range e.Elements {
			args[i] = FromExpression(el)
		}
		return Func("list", args...)

	case *ast.Name:
		return Value(e.Token.Lexeme)

	default:
		panic(fmt.Sprintf("sexpr: unhandled expression type %T", e))
	}
}
