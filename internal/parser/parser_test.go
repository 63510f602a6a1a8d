package parser_test

import (
	"testing"

	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/lexer"
	"github.com/cwbudde/mlc/internal/parser"
	"github.com/cwbudde/mlc/internal/sexpr"
	"github.com/cwbudde/mlc/internal/types"
)

func parse(t *testing.T, source string) []ast.Statement {
	t.Helper()
	stmts, err := parser.Parse(lexer.Lex(source))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", source, err)
	}
	return stmts
}

func TestParseReturnLiteral(t *testing.T) {
	stmts := parse(t, "fn main() -> int { return 42; }")
	fn := stmts[0].(*ast.FunctionDefinition)
	if fn.Name.Lexeme != "main" || !fn.ReturnType.Equals(types.Int) {
		t.Fatalf("unexpected function header: %+v", fn)
	}
	ret := fn.Body[0].(*ast.Return)
	lit := ret.Value.(*ast.IntLiteral)
	if lit.Token.Lexeme != "42" {
		t.Fatalf("expected literal 42, got %q", lit.Token.Lexeme)
	}
}

func TestParseAdditionPrecedence(t *testing.T) {
	stmts := parse(t, "fn main() -> int { return 20 + 22; }")
	ret := stmts[0].(*ast.FunctionDefinition).Body[0].(*ast.Return)
	bin := ret.Value.(*ast.BinaryOp)
	if bin.Op != ast.Add {
		t.Fatalf("expected Add, got %v", bin.Op)
	}
}

func TestParseVariableDeclarationAndAssignment(t *testing.T) {
	stmts := parse(t, "fn main() -> int { let a: int = 20; a = a + 22; return a; }")
	body := stmts[0].(*ast.FunctionDefinition).Body
	if len(body) != 3 {
		t.Fatalf("expected 3 body statements, got %d", len(body))
	}
	decl := body[0].(*ast.VariableDeclaration)
	if decl.Name.Lexeme != "a" || !decl.Type.Equals(types.Int) {
		t.Fatalf("unexpected declaration: %+v", decl)
	}
	assign := body[1].(*ast.Assignment)
	if assign.To.Lexeme != "a" {
		t.Fatalf("unexpected assignment target: %+v", assign)
	}
}

func TestParseUnaryNegation(t *testing.T) {
	stmts := parse(t, "fn main() -> int { return 62 + -20; }")
	ret := stmts[0].(*ast.FunctionDefinition).Body[0].(*ast.Return)
	bin := ret.Value.(*ast.BinaryOp)
	neg := bin.RHS.(*ast.UnaryOp)
	if neg.Op != ast.Sub {
		t.Fatalf("expected Sub, got %v", neg.Op)
	}
}

func TestParseLogicalAnd(t *testing.T) {
	stmts := parse(t, "fn main() -> bool { return (1 > 0) && (1 > 0); }")
	ret := stmts[0].(*ast.FunctionDefinition).Body[0].(*ast.Return)
	bin := ret.Value.(*ast.BinaryOp)
	if bin.Op != ast.And {
		t.Fatalf("expected And, got %v", bin.Op)
	}
	if _, ok := bin.LHS.(*ast.BinaryOp); !ok {
		t.Fatalf("expected parenthesized comparison on LHS, got %T", bin.LHS)
	}
}

func TestParseWhileRequiresNoSemicolon(t *testing.T) {
	stmts := parse(t, "fn main() -> int { let x:int=0; while 42 > x { x = x + 1 } return x; }")
	body := stmts[0].(*ast.FunctionDefinition).Body
	while := body[1].(*ast.While)
	cond := while.Condition.(*ast.BinaryOp)
	if cond.Op != ast.GreaterThan {
		t.Fatalf("expected GreaterThan, got %v", cond.Op)
	}
	if len(while.Body) != 1 {
		t.Fatalf("expected 1 statement in while body, got %d", len(while.Body))
	}
}

func TestParseFunctionCall(t *testing.T) {
	stmts := parse(t, "fn universe(a:int,b:int)->int{return a+b;} fn main()->int{return universe(20,22);}")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(stmts))
	}
	universe := stmts[0].(*ast.FunctionDefinition)
	if len(universe.Args) != 2 {
		t.Fatalf("expected 2 params, got %d", len(universe.Args))
	}
	main := stmts[1].(*ast.FunctionDefinition)
	ret := main.Body[0].(*ast.Return)
	call := ret.Value.(*ast.FunctionCall)
	if call.Name.Lexeme != "universe" || len(call.Args) != 2 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

func TestParseIfExpressionAsStatementOmitsSemicolon(t *testing.T) {
	stmts := parse(t, "fn main() -> int { if 0 == 0 { return 42; } return 0; }")
	body := stmts[0].(*ast.FunctionDefinition).Body
	if len(body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(body))
	}
	exprStmt := body[0].(*ast.ExpressionStatement)
	ifExpr := exprStmt.Value.(*ast.If)
	cond := ifExpr.Condition.(*ast.BinaryOp)
	if cond.Op != ast.Equals {
		t.Fatalf("expected Equals, got %v", cond.Op)
	}
	if ifExpr.ElseBlock != nil {
		t.Fatalf("expected no else block, got %v", ifExpr.ElseBlock)
	}
}

func TestParseElseIfWrapsNestedIfInSingletonBlock(t *testing.T) {
	stmts := parse(t, "fn main() -> int { if 0 == 1 { return 1; } else if 0 == 2 { return 2; } else { return 3; } return 0; }")
	exprStmt := stmts[0].(*ast.FunctionDefinition).Body[0].(*ast.ExpressionStatement)
	outer := exprStmt.Value.(*ast.If)
	if len(outer.ElseBlock) != 1 {
		t.Fatalf("expected else-if to wrap in a singleton block, got %d statements", len(outer.ElseBlock))
	}
	inner := outer.ElseBlock[0].(*ast.ExpressionStatement).Value.(*ast.If)
	if inner.ElseBlock == nil {
		t.Fatalf("expected the nested if to carry its own else block")
	}
}

func TestParseListLiteral(t *testing.T) {
	stmts := parse(t, "fn main() -> int { let xs: int = [1, 2, 3,]; return 0; }")
	decl := stmts[0].(*ast.FunctionDefinition).Body[0].(*ast.VariableDeclaration)
	list := decl.Value.(*ast.ListLiteral)
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements (trailing comma tolerated), got %d", len(list.Elements))
	}
}

func TestParseRejectsListTypeAnnotation(t *testing.T) {
	_, err := parser.Parse(lexer.Lex("fn main() -> int { let xs: list<int> = [1]; return 0; }"))
	if err == nil {
		t.Fatal("expected an error parsing a list<T> type annotation")
	}
}

// TestParseIsRoundTripPrintable asserts invariant 1: pretty-printing a
// parsed tree via the s-expression writer yields the same canonical form
// every time for identical input, and that form is exactly what the
// grammar shape predicts.
func TestParseIsRoundTripPrintable(t *testing.T) {
	source := "fn universe(a:int,b:int)->int{return a+b;}"
	first := sexpr.FromStatements(parse(t, source)).String()
	second := sexpr.FromStatements(parse(t, source)).String()
	if first != second {
		t.Fatalf("printing the same source twice produced different forms:\n%s\n%s", first, second)
	}

	want := "(program (function_define universe a:int b:int (return (+ a b)) ->int))"
	if first != want {
		t.Fatalf("got %s, want %s", first, want)
	}
}

// TestParseSemicolonToleranceProducesIdenticalAST asserts invariant 5: an
// optional trailing ';' after a while or if-expression statement does not
// change the parsed tree, verified by comparing their s-expression forms.
func TestParseSemicolonToleranceProducesIdenticalAST(t *testing.T) {
	withSemi := "fn main() -> int { while 1 > 0 { return 1; }; return 0; }"
	withoutSemi := "fn main() -> int { while 1 > 0 { return 1; } return 0; }"

	a := sexpr.FromStatements(parse(t, withSemi)).String()
	b := sexpr.FromStatements(parse(t, withoutSemi)).String()
	if a != b {
		t.Fatalf("semicolon tolerance violated:\nwith ';'   : %s\nwithout ';': %s", a, b)
	}

	withSemi = "fn main() -> int { if 1 > 0 { return 1; }; return 0; }"
	withoutSemi = "fn main() -> int { if 1 > 0 { return 1; } return 0; }"

	a = sexpr.FromStatements(parse(t, withSemi)).String()
	b = sexpr.FromStatements(parse(t, withoutSemi)).String()
	if a != b {
		t.Fatalf("semicolon tolerance violated:\nwith ';'   : %s\nwithout ';': %s", a, b)
	}
}
