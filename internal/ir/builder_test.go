package ir_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/ir"
	"github.com/cwbudde/mlc/internal/token"
	"github.com/cwbudde/mlc/internal/typedast"
	"github.com/cwbudde/mlc/internal/types"
)

func intTok(lexeme string) token.Token { return token.Unlocated(token.Int, lexeme) }

// fn main() -> int { return 42; }
func TestBuildReturnsExactGoldenIR(t *testing.T) {
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.Return{Value: &typedast.IntLiteral{Token: intTok("42")}},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	got := strings.Join(lines, "\n")
	want := "define i32 @main() {\n\tret i32 42\n}"
	if got != want {
		t.Fatalf("Build() =\n%s\nwant:\n%s", got, want)
	}
}

// fn main() -> int { return 20 + 22; }
func TestBuildAdditionMintsOneTempAndReturnsIt(t *testing.T) {
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.Return{
						Value: &typedast.BinaryOp{
							LHS: &typedast.IntLiteral{Token: intTok("20")},
							Op:  ast.Add,
							RHS: &typedast.IntLiteral{Token: intTok("22")},
							Typ: types.Int,
						},
					},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	if lines[1] != "\t%add_1 = add i32 20, 22" {
		t.Errorf("body line = %q, want %q", lines[1], "\t%add_1 = add i32 20, 22")
	}
	if lines[2] != "\tret i32 %add_1" {
		t.Errorf("ret line = %q, want %q", lines[2], "\tret i32 %add_1")
	}
}

// fn main() -> int { let a: int = 20; a = a + 22; return a; }
func TestBuildVariableDeclarationAssignmentAndLoad(t *testing.T) {
	aName := token.Unlocated(token.Name, "a")
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.VariableDeclaration{Name: aName, Typ: types.Int, Value: &typedast.IntLiteral{Token: intTok("20")}},
					&typedast.Assignment{
						To: aName,
						Value: &typedast.BinaryOp{
							LHS: &typedast.Name{Token: aName, Typ: types.Int},
							Op:  ast.Add,
							RHS: &typedast.IntLiteral{Token: intTok("22")},
							Typ: types.Int,
						},
					},
					&typedast.Return{Value: &typedast.Name{Token: aName, Typ: types.Int}},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"%a = alloca i32", "store i32 20, i32* %a", "%a_1 = load i32, i32* %a", "store i32 %add_1, i32* %a"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, joined)
		}
	}
}

// fn universe(a:int,b:int)->int{return a+b;} fn main()->int{return universe(20,22);}
func TestBuildFunctionCallAcrossDefinitions(t *testing.T) {
	aTok := token.Unlocated(token.Name, "a")
	bTok := token.Unlocated(token.Name, "b")
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "universe"),
			ReturnType: types.Int,
			Args: []typedast.Param{
				{Name: aTok, Type: types.Int},
				{Name: bTok, Type: types.Int},
			},
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.Return{Value: &typedast.BinaryOp{
						LHS: &typedast.Name{Token: aTok, Typ: types.Int},
						Op:  ast.Add,
						RHS: &typedast.Name{Token: bTok, Typ: types.Int},
						Typ: types.Int,
					}},
				},
				Typ: types.Int,
			},
		},
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.Return{Value: &typedast.FunctionCall{
						Name: token.Unlocated(token.Name, "universe"),
						Args: []typedast.Expression{
							&typedast.IntLiteral{Token: intTok("20")},
							&typedast.IntLiteral{Token: intTok("22")},
						},
						Typ: types.Int,
					}},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "define i32 @universe(i32 %_a, i32 %_b) {") {
		t.Errorf("missing universe header, got:\n%s", joined)
	}
	if !strings.Contains(joined, "call i32 @universe(i32 20, i32 22)") {
		t.Errorf("missing call, got:\n%s", joined)
	}
}

// fn main() -> int { if 0 == 0 { return 42; } return 0; }
func TestBuildIfWithoutElseHasUninitializedSlotShape(t *testing.T) {
	ifExpr := &typedast.If{
		Condition: &typedast.BinaryOp{
			LHS: &typedast.IntLiteral{Token: intTok("0")},
			Op:  ast.Equals,
			RHS: &typedast.IntLiteral{Token: intTok("0")},
			Typ: types.Bool,
		},
		TrueBlock: typedast.Block{
			Body: []typedast.Statement{&typedast.Return{Value: &typedast.IntLiteral{Token: intTok("42")}}},
			Typ:  types.Int,
		},
	}
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					&typedast.ExpressionStatement{Value: ifExpr},
					&typedast.Return{Value: &typedast.IntLiteral{Token: intTok("0")}},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"if_ret_var_1 = alloca i32", "br i1 %eq_1", "if_true_1:", "if_else_1:", "if_end_1:"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, joined)
		}
	}
	// Neither branch stores into the result slot here: the true block ends
	// in a return (not a trailing expression), and the else branch has no
	// body at all -- yet the slot is still allocated and loaded at if_end,
	// the uninitialized-slot shape kept as-is rather than synthesized away.
	if strings.Contains(joined, "store i32") {
		t.Errorf("expected no store into the if result slot, got:\n%s", joined)
	}
	if !strings.Contains(joined, "%if_ret_var_loaded_1 = load i32, i32* %if_ret_var_1") {
		t.Errorf("expected the slot to be loaded at if_end, got:\n%s", joined)
	}
}

// while 42 > x { x = x + 1 }
func TestBuildWhileEmitsLoopLabelsOnce(t *testing.T) {
	xTok := token.Unlocated(token.Name, "x")
	whileStmt := &typedast.While{
		Condition: &typedast.BinaryOp{
			LHS: &typedast.IntLiteral{Token: intTok("42")},
			Op:  ast.GreaterThan,
			RHS: &typedast.Name{Token: xTok, Typ: types.Int},
			Typ: types.Bool,
		},
		Body: typedast.Block{
			Body: []typedast.Statement{
				&typedast.Assignment{To: xTok, Value: &typedast.BinaryOp{
					LHS: &typedast.Name{Token: xTok, Typ: types.Int},
					Op:  ast.Add,
					RHS: &typedast.IntLiteral{Token: intTok("1")},
					Typ: types.Int,
				}},
			},
			Typ: types.Unit,
		},
	}
	program := []typedast.Statement{
		&typedast.FunctionDefinition{
			Name:       token.Unlocated(token.Name, "main"),
			ReturnType: types.Int,
			Body: typedast.Block{
				Body: []typedast.Statement{
					whileStmt,
					&typedast.Return{Value: &typedast.Name{Token: xTok, Typ: types.Int}},
				},
				Typ: types.Int,
			},
		},
	}

	lines, err := ir.Build(program)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"br label %while_1", "while_1:", "while_true_1:", "while_end_1:"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, joined)
		}
	}
}
