package cmd

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/cerrors"
	"github.com/cwbudde/mlc/internal/lexer"
	"github.com/cwbudde/mlc/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and list its top-level statements by node type",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	stmts, err := parser.Parse(lexer.Lex(source))
	if err != nil {
		fmt.Println(cerrors.Render(err, source))
		return err
	}

	for i, s := range stmts {
		fmt.Printf("%d: %T\n", i, s)
	}
	return nil
}
