// Package types defines the source language's type system: the small,
// closed set of types a program's expressions and declarations can carry,
// and the mapping from each one to its LLVM IR type string.
package types

import "fmt"

// Type is a source-level type. The set of implementations is closed:
// Int, Bool, List, and Unit.
type Type interface {
	// String renders the type the way the source language spells it.
	String() string

	// IRType is the LLVM IR type string this type lowers to. Unit has no
	// IR representation and returns the empty string; List is reserved and
	// also has no IR representation yet.
	IRType() string

	// Equals reports structural equality against another Type.
	Equals(other Type) bool
}

// IntType is the 32-bit signed integer type.
type IntType struct{}

func (IntType) String() string       { return "int" }
func (IntType) IRType() string       { return "i32" }
func (IntType) Equals(o Type) bool   { _, ok := o.(IntType); return ok }

// BoolType is the 1-bit boolean type.
type BoolType struct{}

func (BoolType) String() string     { return "bool" }
func (BoolType) IRType() string     { return "i1" }
func (BoolType) Equals(o Type) bool { _, ok := o.(BoolType); return ok }

// UnitType is the type of a block with no trailing expression. It appears
// only internally in the typed AST and is never surface syntax.
type UnitType struct{}

func (UnitType) String() string     { return "unit" }
func (UnitType) IRType() string     { return "" }
func (UnitType) Equals(o Type) bool { _, ok := o.(UnitType); return ok }

// ListType is the single built-in generic type constructor. Its payload is
// reserved: the typer accepts and checks list-typed values, but the IR
// builder has no lowering for them (see internal/ir).
type ListType struct {
	Elem Type
}

func (l ListType) String() string { return fmt.Sprintf("list<%s>", l.Elem) }
func (l ListType) IRType() string { return "" }

func (l ListType) Equals(o Type) bool {
	other, ok := o.(ListType)
	if !ok {
		return false
	}
	return l.Elem.Equals(other.Elem)
}

// Int, Bool, and Unit are the canonical zero-value instances; comparisons
// should go through Equals rather than Go's == on the interface, since a
// ListType with an equal element type must also compare equal despite not
// being the identical struct literal as e.g. Int{}.
var (
	Int  Type = IntType{}
	Bool Type = BoolType{}
	Unit Type = UnitType{}
)
