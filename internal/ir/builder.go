package ir

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/ast"
	"github.com/cwbudde/mlc/internal/typedast"
	"github.com/cwbudde/mlc/internal/types"
)

// Builder lowers a typed program into IR lines. It is not safe for
// concurrent use; construct one per call to Build.
type Builder struct {
	counters *Counters
}

// NewBuilder returns a Builder with a fresh Counters.
func NewBuilder() *Builder {
	return &Builder{counters: NewCounters()}
}

// Build lowers a fully type-checked program into textual LLVM IR, one
// line per returned string.
func Build(stmts []typedast.Statement) ([]string, error) {
	b := NewBuilder()
	var top []Element
	for _, s := range stmts {
		if err := b.buildStatement(s, &top); err != nil {
			return nil, err
		}
	}
	return Flatten(top), nil
}

var binaryOpcodes = map[ast.BinaryOperator]struct {
	category string
	opcode   string
}{
	ast.Add:         {"add", "add"},
	ast.Equals:      {"eq", "icmp eq"},
	ast.GreaterThan: {"gt", "icmp sgt"},
	ast.And:         {"and", "and"},
	ast.Or:          {"or", "or"},
}

func (b *Builder) buildStatement(stmt typedast.Statement, scope *[]Element) error {
	switch s := stmt.(type) {
	case *typedast.FunctionDefinition:
		return b.buildFunctionDefinition(s, scope)
	case *typedast.VariableDeclaration:
		return b.buildVariableDeclaration(s, scope)
	case *typedast.Assignment:
		return b.buildAssignment(s, scope)
	case *typedast.While:
		return b.buildWhile(s, scope)
	case *typedast.Return:
		v, err := b.buildExpression(s.Value, scope)
		if err != nil {
			return err
		}
		*scope = append(*scope, Elem(fmt.Sprintf("ret %s", v.ToIR(true))))
		return nil
	case *typedast.ExpressionStatement:
		_, err := b.buildExpression(s.Value, scope)
		return err
	default:
		panic("ir: unhandled statement type")
	}
}

func (b *Builder) buildFunctionDefinition(s *typedast.FunctionDefinition, scope *[]Element) error {
	params := ""
	for i, p := range s.Args {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("%s %%_%s", p.Type.IRType(), p.Name.Lexeme)
	}

	header := fmt.Sprintf("define %s @%s(%s) {", s.ReturnType.IRType(), s.Name.Lexeme, params)

	var body []Element
	for _, p := range s.Args {
		slot := NewVariable(p.Name.Lexeme, p.Type)
		body = append(body, Elem(fmt.Sprintf("%%%s = alloca %s", p.Name.Lexeme, p.Type.IRType())))
		body = append(body, Elem(slot.Store(Temp("%_"+p.Name.Lexeme, p.Type))))
	}
	for _, st := range s.Body.Body {
		if err := b.buildStatement(st, &body); err != nil {
			return err
		}
	}

	*scope = append(*scope, Elem(header))
	*scope = append(*scope, Scope(body))
	*scope = append(*scope, Elem("}"))
	return nil
}

func (b *Builder) buildVariableDeclaration(s *typedast.VariableDeclaration, scope *[]Element) error {
	v, err := b.buildExpression(s.Value, scope)
	if err != nil {
		return err
	}
	slot := NewVariable(s.Name.Lexeme, s.Typ)
	*scope = append(*scope, Elem(fmt.Sprintf("%%%s = alloca %s", s.Name.Lexeme, s.Typ.IRType())))
	*scope = append(*scope, Elem(slot.Store(v)))
	return nil
}

func (b *Builder) buildAssignment(s *typedast.Assignment, scope *[]Element) error {
	v, err := b.buildExpression(s.Value, scope)
	if err != nil {
		return err
	}
	slot := NewVariable(s.To.Lexeme, s.Value.Type())
	*scope = append(*scope, Elem(slot.Store(v)))
	return nil
}

func (b *Builder) buildWhile(s *typedast.While, scope *[]Element) error {
	n := b.counters.NextN("while")
	loopLabel := fmt.Sprintf("while_%d", n)
	trueLabel := fmt.Sprintf("while_true_%d", n)
	endLabel := fmt.Sprintf("while_end_%d", n)

	*scope = append(*scope, Elem(fmt.Sprintf("br label %%%s", loopLabel)))
	*scope = append(*scope, Elem(loopLabel+":"))

	var condScope []Element
	cond, err := b.buildExpression(s.Condition, &condScope)
	if err != nil {
		return err
	}
	condScope = append(condScope, Elem(fmt.Sprintf("br i1 %s, label %%%s, label %%%s", cond.ToIR(false), trueLabel, endLabel)))
	*scope = append(*scope, Scope(condScope))

	*scope = append(*scope, Elem(trueLabel+":"))
	var bodyScope []Element
	for _, st := range s.Body.Body {
		if err := b.buildStatement(st, &bodyScope); err != nil {
			return err
		}
	}
	bodyScope = append(bodyScope, Elem(fmt.Sprintf("br label %%%s", loopLabel)))
	*scope = append(*scope, Scope(bodyScope))

	*scope = append(*scope, Elem(endLabel+":"))
	return nil
}

func (b *Builder) buildExpression(expr typedast.Expression, scope *[]Element) (MemoryValue, error) {
	switch e := expr.(type) {
	case *typedast.If:
		return b.buildIf(e, scope)
	case *typedast.BinaryOp:
		return b.buildBinaryOp(e, scope)
	case *typedast.UnaryOp:
		return b.buildUnaryOp(e, scope)
	case *typedast.FunctionCall:
		return b.buildFunctionCall(e, scope)
	case *typedast.IntLiteral:
		return Const(e.Token.Lexeme, types.Int), nil
	case *typedast.BoolLiteral:
		if e.Value {
			return Const("1", types.Bool), nil
		}
		return Const("0", types.Bool), nil
	case *typedast.ListLiteral:
		panic("ir: list literal lowering is unreachable for a well-typed program")
	case *typedast.Name:
		slot := NewVariable(e.Token.Lexeme, e.Typ)
		into := Temp(b.counters.NextTemp(e.Token.Lexeme), e.Typ)
		*scope = append(*scope, Elem(slot.Load(into)))
		return into, nil
	default:
		panic("ir: unhandled expression type")
	}
}

// buildBlockValue emits every statement of block except a trailing
// expression statement, whose value (if any) is built and returned
// directly rather than discarded. hasValue is false for an empty block or
// one whose last statement does not itself produce a value (e.g. Return).
func (b *Builder) buildBlockValue(block typedast.Block, scope *[]Element) (value MemoryValue, hasValue bool, err error) {
	for i, st := range block.Body {
		if i == len(block.Body)-1 {
			if es, ok := st.(*typedast.ExpressionStatement); ok {
				v, err := b.buildExpression(es.Value, scope)
				return v, true, err
			}
		}
		if err := b.buildStatement(st, scope); err != nil {
			return MemoryValue{}, false, err
		}
	}
	return MemoryValue{}, false, nil
}

func (b *Builder) buildIf(e *typedast.If, scope *[]Element) (MemoryValue, error) {
	n := b.counters.NextN("if")
	retVar := fmt.Sprintf("if_ret_var_%d", n)
	trueLabel := fmt.Sprintf("if_true_%d", n)
	elseLabel := fmt.Sprintf("if_else_%d", n)
	endLabel := fmt.Sprintf("if_end_%d", n)
	slot := NewVariable(retVar, e.Type())

	*scope = append(*scope, Elem(fmt.Sprintf("%%%s = alloca %s", retVar, e.Type().IRType())))

	cond, err := b.buildExpression(e.Condition, scope)
	if err != nil {
		return MemoryValue{}, err
	}
	*scope = append(*scope, Elem(fmt.Sprintf("br i1 %s, label %%%s, label %%%s", cond.ToIR(false), trueLabel, elseLabel)))

	*scope = append(*scope, Elem(trueLabel+":"))
	var trueScope []Element
	trueVal, trueHasValue, err := b.buildBlockValue(e.TrueBlock, &trueScope)
	if err != nil {
		return MemoryValue{}, err
	}
	if trueHasValue {
		trueScope = append(trueScope, Elem(slot.Store(trueVal)))
	}
	trueScope = append(trueScope, Elem(fmt.Sprintf("br label %%%s", endLabel)))
	*scope = append(*scope, Scope(trueScope))

	*scope = append(*scope, Elem(elseLabel+":"))
	var elseScope []Element
	if e.ElseBlock != nil {
		elseVal, elseHasValue, err := b.buildBlockValue(*e.ElseBlock, &elseScope)
		if err != nil {
			return MemoryValue{}, err
		}
		if elseHasValue {
			elseScope = append(elseScope, Elem(slot.Store(elseVal)))
		}
	}
	// When there is no else, this slot is left uninitialized on the false
	// path; the shape is kept as-is rather than synthesizing a store.
	elseScope = append(elseScope, Elem(fmt.Sprintf("br label %%%s", endLabel)))
	*scope = append(*scope, Scope(elseScope))

	*scope = append(*scope, Elem(endLabel+":"))
	loaded := Temp(b.counters.NextTemp("if_ret_var_loaded"), e.Type())
	*scope = append(*scope, Scope([]Element{Elem(slot.Load(loaded))}))

	return loaded, nil
}

func (b *Builder) buildBinaryOp(e *typedast.BinaryOp, scope *[]Element) (MemoryValue, error) {
	lhs, err := b.buildExpression(e.LHS, scope)
	if err != nil {
		return MemoryValue{}, err
	}
	rhs, err := b.buildExpression(e.RHS, scope)
	if err != nil {
		return MemoryValue{}, err
	}
	info, ok := binaryOpcodes[e.Op]
	if !ok {
		panic("ir: unhandled binary operator")
	}
	name := b.counters.NextTemp(info.category)
	*scope = append(*scope, Elem(fmt.Sprintf("%s = %s %s %s, %s", name, info.opcode, e.LHS.Type().IRType(), lhs.ToIR(false), rhs.ToIR(false))))
	return Temp(name, e.Typ), nil
}

func (b *Builder) buildUnaryOp(e *typedast.UnaryOp, scope *[]Element) (MemoryValue, error) {
	rhs, err := b.buildExpression(e.RHS, scope)
	if err != nil {
		return MemoryValue{}, err
	}
	switch e.Op {
	case ast.Sub:
		name := b.counters.NextTemp("sub")
		*scope = append(*scope, Elem(fmt.Sprintf("%s = sub i32 0, %s", name, rhs.ToIR(false))))
		return Temp(name, types.Int), nil
	case ast.Not:
		name := b.counters.NextTemp("not")
		*scope = append(*scope, Elem(fmt.Sprintf("%s = xor i1 %s, 1", name, rhs.ToIR(false))))
		return Temp(name, types.Bool), nil
	default:
		panic("ir: unhandled unary operator")
	}
}

func (b *Builder) buildFunctionCall(e *typedast.FunctionCall, scope *[]Element) (MemoryValue, error) {
	args := make([]MemoryValue, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := b.buildExpression(a, scope)
		if err != nil {
			return MemoryValue{}, err
		}
		args = append(args, v)
	}
	name := b.counters.NextTemp("function_" + e.Name.Lexeme)
	*scope = append(*scope, Elem(fmt.Sprintf("%s = call %s @%s(%s)", name, e.Typ.IRType(), e.Name.Lexeme, joinTyped(args))))
	return Temp(name, e.Typ), nil
}
