// Package typer type-checks an internal/ast tree into an internal/typedast
// tree, resolving every Name and FunctionCall against a stack of scopes and
// rejecting programs whose types disagree.
package typer

import (
	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/token"
	"github.com/cwbudde/mlc/internal/typedast"
	"github.com/cwbudde/mlc/internal/types"
)

// scope is one level of the lookup stack: a flat name -> type binding.
// FunctionDefinition and VariableDeclaration both write into it, which
// deliberately conflates the function and value namespaces.
type scope map[string]types.Type

// checker holds the scope stack threaded through a single Check call. It
// is not safe for concurrent use and not exported: Check is the only
// entry point.
type checker struct {
	scopes []scope
}

// Check type-checks a full program, returning the typed statements or the
// first error encountered. Checking stops at the first error, mirroring
// the parser's no-recovery behavior.
func Check(stmts []ast.Statement) ([]typedast.Statement, error) {
	c := &checker{scopes: []scope{make(scope)}}
	return c.checkBlock(stmts)
}

func (c *checker) push() { c.scopes = append(c.scopes, make(scope)) }
func (c *checker) pop()  { c.scopes = c.scopes[:len(c.scopes)-1] }

func (c *checker) current() scope { return c.scopes[len(c.scopes)-1] }

// findInScopes searches the stack top-down, returning the bound type and
// whether it was found.
func (c *checker) findInScopes(name string) (types.Type, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i][name]; ok {
			return t, true
		}
	}
	return nil, false
}

func (c *checker) checkBlock(stmts []ast.Statement) ([]typedast.Statement, error) {
	out := make([]typedast.Statement, 0, len(stmts))
	for _, s := range stmts {
		typed, err := c.checkStatement(s)
		if err != nil {
			return nil, err
		}
		out = append(out, typed)
	}
	return out, nil
}

// checkBlockExpr types a Block and additionally reports its resulting
// type: the last statement's type, or Unit if the block is empty.
func (c *checker) checkBlockExpr(block ast.Block) (typedast.Block, error) {
	stmts, err := c.checkBlock(block)
	if err != nil {
		return typedast.Block{}, err
	}
	t := types.Unit
	if len(stmts) > 0 {
		t = stmts[len(stmts)-1].Type()
	}
	return typedast.Block{Body: stmts, Typ: t}, nil
}

func (c *checker) checkStatement(s ast.Statement) (typedast.Statement, error) {
	switch s := s.(type) {
	case *ast.FunctionDefinition:
		return c.checkFunctionDefinition(s)
	case *ast.VariableDeclaration:
		return c.checkVariableDeclaration(s)
	case *ast.Assignment:
		return c.checkAssignment(s)
	case *ast.While:
		return c.checkWhile(s)
	case *ast.Return:
		value, err := c.checkExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &typedast.Return{Value: value}, nil
	case *ast.ExpressionStatement:
		value, err := c.checkExpression(s.Value)
		if err != nil {
			return nil, err
		}
		return &typedast.ExpressionStatement{Value: value}, nil
	default:
		panic("typer: unhandled statement type")
	}
}

func (c *checker) checkFunctionDefinition(s *ast.FunctionDefinition) (typedast.Statement, error) {
	c.current()[s.Name.Lexeme] = s.ReturnType

	c.push()
	defer c.pop()

	args := make([]typedast.Param, 0, len(s.Args))
	for _, p := range s.Args {
		c.current()[p.Name.Lexeme] = p.Type
		args = append(args, typedast.Param{Name: p.Name, Type: p.Type})
	}

	body, err := c.checkBlockExpr(s.Body)
	if err != nil {
		return nil, err
	}

	return &typedast.FunctionDefinition{
		Name:       s.Name,
		ReturnType: s.ReturnType,
		Args:       args,
		Body:       body,
	}, nil
}

func (c *checker) checkVariableDeclaration(s *ast.VariableDeclaration) (typedast.Statement, error) {
	value, err := c.checkExpression(s.Value)
	if err != nil {
		return nil, err
	}
	if !value.Type().Equals(s.Type) {
		return nil, conflictingTypes(s.Name, s.Type, value.Type())
	}
	c.current()[s.Name.Lexeme] = s.Type
	return &typedast.VariableDeclaration{Name: s.Name, Typ: s.Type, Value: value}, nil
}

// checkAssignment resolves the target only in the current scope, not the
// full stack: assigning to a name bound only in an enclosing scope is
// reported as NameNotFound, and the outer binding is left untouched.
func (c *checker) checkAssignment(s *ast.Assignment) (typedast.Statement, error) {
	value, err := c.checkExpression(s.Value)
	if err != nil {
		return nil, err
	}
	declared, ok := c.current()[s.To.Lexeme]
	if !ok {
		return nil, nameNotFound(s.To)
	}
	if !value.Type().Equals(declared) {
		return nil, conflictingTypes(s.To, declared, value.Type())
	}
	return &typedast.Assignment{To: s.To, Value: value}, nil
}

// checkWhile types the condition and body. The condition's type is not
// checked, and the body shares the enclosing scope: only function bodies
// introduce a new scope frame, so `while 42 > x { x = x + 1 }` resolves x
// in the same scope that declared it.
func (c *checker) checkWhile(s *ast.While) (typedast.Statement, error) {
	cond, err := c.checkExpression(s.Condition)
	if err != nil {
		return nil, err
	}
	body, err := c.checkBlockExpr(s.Body)
	if err != nil {
		return nil, err
	}
	return &typedast.While{Condition: cond, Body: body}, nil
}

func (c *checker) checkExpression(e ast.Expression) (typedast.Expression, error) {
	switch e := e.(type) {
	case *ast.If:
		return c.checkIf(e)
	case *ast.BinaryOp:
		return c.checkBinaryOp(e)
	case *ast.UnaryOp:
		return c.checkUnaryOp(e)
	case *ast.FunctionCall:
		return c.checkFunctionCall(e)
	case *ast.IntLiteral:
		return &typedast.IntLiteral{Token: e.Token}, nil
	case *ast.BoolLiteral:
		return &typedast.BoolLiteral{Value: e.Value, Token: e.Token}, nil
	case *ast.ListLiteral:
		return c.checkListLiteral(e)
	case *ast.Name:
		t, ok := c.findInScopes(e.Token.Lexeme)
		if !ok {
			return nil, nameNotFound(e.Token)
		}
		return &typedast.Name{Token: e.Token, Typ: t}, nil
	default:
		panic("typer: unhandled expression type")
	}
}

// checkIf applies the int-to-bool demotion: a bare Int condition is
// rewritten as a genuine BinaryOp{GreaterThan} node against the literal
// zero and typed through the ordinary binary rule, which yields Bool.
// Any other condition type is typed as-is and must already be Bool.
func (c *checker) checkIf(e *ast.If) (typedast.Expression, error) {
	cond, err := c.checkExpression(e.Condition)
	if err != nil {
		return nil, err
	}

	if cond.Type().Equals(types.Int) {
		cond = &typedast.BinaryOp{
			LHS: cond,
			Op:  ast.GreaterThan,
			RHS: &typedast.IntLiteral{Token: token.Unlocated(token.Int, "0")},
			Typ: binaryResultType(ast.GreaterThan),
		}
	}

	if !cond.Type().Equals(types.Bool) {
		return nil, invalidType(e.Token, cond.Type(), types.Bool)
	}

	trueBlock, err := c.checkBlockExpr(e.TrueBlock)
	if err != nil {
		return nil, err
	}

	var elseBlock *typedast.Block
	if e.ElseBlock != nil {
		tb, err := c.checkBlockExpr(e.ElseBlock)
		if err != nil {
			return nil, err
		}
		elseBlock = &tb
	}

	return &typedast.If{Condition: cond, TrueBlock: trueBlock, ElseBlock: elseBlock}, nil
}

// binaryResultType is the single source of truth for what a binary
// operator produces: Int for Add, Bool for everything else. The if
// condition demotion in checkIf relies on this same rule.
func binaryResultType(op ast.BinaryOperator) types.Type {
	if op == ast.Add {
		return types.Int
	}
	return types.Bool
}

func (c *checker) checkBinaryOp(e *ast.BinaryOp) (typedast.Expression, error) {
	lhs, err := c.checkExpression(e.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := c.checkExpression(e.RHS)
	if err != nil {
		return nil, err
	}
	return &typedast.BinaryOp{LHS: lhs, Op: e.Op, RHS: rhs, Typ: binaryResultType(e.Op)}, nil
}

func (c *checker) checkUnaryOp(e *ast.UnaryOp) (typedast.Expression, error) {
	rhs, err := c.checkExpression(e.RHS)
	if err != nil {
		return nil, err
	}
	return &typedast.UnaryOp{Op: e.Op, RHS: rhs}, nil
}

func (c *checker) checkFunctionCall(e *ast.FunctionCall) (typedast.Expression, error) {
	args := make([]typedast.Expression, 0, len(e.Args))
	for _, a := range e.Args {
		typed, err := c.checkExpression(a)
		if err != nil {
			return nil, err
		}
		args = append(args, typed)
	}
	ret, ok := c.findInScopes(e.Name.Lexeme)
	if !ok {
		return nil, nameNotFound(e.Name)
	}
	return &typedast.FunctionCall{Name: e.Name, Args: args, Typ: ret}, nil
}

// checkListLiteral requires every element to agree on type; an empty
// literal defaults to List{Int} (see the Open Questions entry in
// DESIGN.md).
func (c *checker) checkListLiteral(e *ast.ListLiteral) (typedast.Expression, error) {
	if len(e.Elements) == 0 {
		return &typedast.ListLiteral{Elements: nil, ElemType: types.Int}, nil
	}

	elems := make([]typedast.Expression, 0, len(e.Elements))
	first, err := c.checkExpression(e.Elements[0])
	if err != nil {
		return nil, err
	}
	elemType := first.Type()
	elems = append(elems, first)

	for _, raw := range e.Elements[1:] {
		typed, err := c.checkExpression(raw)
		if err != nil {
			return nil, err
		}
		if !typed.Type().Equals(elemType) {
			return nil, conflictingTypes(e.Token, elemType, typed.Type())
		}
		elems = append(elems, typed)
	}

	return &typedast.ListLiteral{Elements: elems, ElemType: elemType}, nil
}
