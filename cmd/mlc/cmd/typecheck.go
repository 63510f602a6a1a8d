package cmd

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/cerrors"
	"github.com/cwbudde/mlc/internal/lexer"
	"github.com/cwbudde/mlc/internal/parser"
	"github.com/cwbudde/mlc/internal/typer"
	"github.com/spf13/cobra"
)

var typecheckCmd = &cobra.Command{
	Use:   "typecheck [file]",
	Short: "Parse and type-check a source file, reporting the first error found",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypecheck,
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

func runTypecheck(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	stmts, err := parser.Parse(lexer.Lex(source))
	if err != nil {
		fmt.Println(cerrors.Render(err, source))
		return err
	}

	typed, err := typer.Check(stmts)
	if err != nil {
		fmt.Println(cerrors.Render(err, source))
		return err
	}

	fmt.Printf("ok: %d top-level statement(s) type-checked\n", len(typed))
	return nil
}
