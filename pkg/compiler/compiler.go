// Package compiler exposes the single entry point that drives the whole
// pipeline: lex, parse, type-check, and lower to textual LLVM IR.
// Everything upstream (internal/lexer, internal/parser, internal/typer,
// internal/ir) is an implementation detail; callers outside this module
// depend only on Compile and the error types it can return.
package compiler

import (
	"github.com/cwbudde/mlc/internal/ir"
	"github.com/cwbudde/mlc/internal/lexer"
	"github.com/cwbudde/mlc/internal/parser"
	"github.com/cwbudde/mlc/internal/typer"
)

// Compile runs the full pipeline over source and returns the emitted IR,
// one line per slice element. The lexer never errors (unrecognized
// characters are silently skipped); a returned error is always a
// *parser.Error or a *typer.Error, both of which implement
// internal/cerrors.Positioned for diagnostic rendering.
func Compile(source string) ([]string, error) {
	tokens := lexer.Lex(source)

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	typed, err := typer.Check(program)
	if err != nil {
		return nil, err
	}

	return ir.Build(typed)
}
