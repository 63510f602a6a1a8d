// Package ir turns a typed AST into textual LLVM IR: a small tree of
// Elements built depth-first, then flattened into indented lines.
package ir

import (
	"fmt"
	"strings"

	"github.com/cwbudde/mlc/internal/types"
)

// Element is one node of the IR tree: either a single emitted line or a
// Scope whose children are indented one level further than their parent.
type Element interface {
	flatten() []string
}

// Elem is a single IR line.
type Elem string

func (e Elem) flatten() []string { return []string{string(e)} }

// Scope nests a sequence of Elements one indentation level deeper.
type Scope []Element

func (s Scope) flatten() []string {
	var out []string
	for _, e := range s {
		for _, line := range e.flatten() {
			out = append(out, "\t"+line)
		}
	}
	return out
}

// Flatten depth-first flattens a top-level Element slice into the final
// output lines, with no added indentation at the outermost level.
func Flatten(elements []Element) []string {
	var out []string
	for _, e := range elements {
		out = append(out, e.flatten()...)
	}
	return out
}

// MemoryValue is either a named SSA temporary or a literal constant, each
// carrying the LLVM type it was produced as.
type MemoryValue struct {
	isTemp bool
	name   string // register name (with leading '%') for a temp; literal text for a const
	typ    types.Type
}

// Temp builds a MemoryValue referring to a previously emitted register.
func Temp(name string, t types.Type) MemoryValue {
	return MemoryValue{isTemp: true, name: name, typ: t}
}

// Const builds a MemoryValue holding a literal constant, with no backing
// register: Int and Bool literals never allocate a temp.
func Const(value string, t types.Type) MemoryValue {
	return MemoryValue{isTemp: false, name: value, typ: t}
}

// ToIR renders the value for use as an instruction operand. With
// includeType, it is prefixed by its LLVM type (e.g. "i32 42"); without,
// it is just the bare value (e.g. "42" or "%add_1").
func (m MemoryValue) ToIR(includeType bool) string {
	if includeType {
		return fmt.Sprintf("%s %s", m.typ.IRType(), m.name)
	}
	return m.name
}

// Type returns the value's LLVM-level type.
func (m MemoryValue) Type() types.Type { return m.typ }

// Variable is a stack slot identified by its source name and type. It
// knows how to render the load and store instructions that move values
// between itself and SSA temps; the alloca that creates the slot is
// emitted by the builder at the declaration site.
type Variable struct {
	name string
	typ  types.Type
}

// NewVariable builds a Variable for the source name (without the leading
// '%').
func NewVariable(name string, t types.Type) Variable {
	return Variable{name: name, typ: t}
}

// Load renders a load from this slot into the given temp.
func (v Variable) Load(into MemoryValue) string {
	t := v.typ.IRType()
	return fmt.Sprintf("%s = load %s, %s* %%%s", into.ToIR(false), t, t, v.name)
}

// Store renders a store of from into this slot.
func (v Variable) Store(from MemoryValue) string {
	return fmt.Sprintf("store %s, %s* %%%s", from.ToIR(true), v.typ.IRType(), v.name)
}

// Counters mints unique `%category_n` register and `category_n` label
// names, one independent sequence per category.
type Counters struct {
	counts map[string]int
}

// NewCounters returns a fresh, empty Counters.
func NewCounters() *Counters {
	return &Counters{counts: make(map[string]int)}
}

func (c *Counters) bump(category string) int {
	c.counts[category]++
	return c.counts[category]
}

// NextTemp mints a fresh register name "%category_n".
func (c *Counters) NextTemp(category string) string {
	return fmt.Sprintf("%%%s_%d", category, c.bump(category))
}

// NextN mints a fresh number within category, for callers that need to
// derive several related names (e.g. if_true_n, if_else_n, if_end_n) that
// must all share one n.
func (c *Counters) NextN(category string) int {
	return c.bump(category)
}

// joinTyped joins a slice of MemoryValues as fully-typed, comma-separated
// operands, e.g. for a call's argument list.
func joinTyped(values []MemoryValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.ToIR(true)
	}
	return strings.Join(parts, ", ")
}
