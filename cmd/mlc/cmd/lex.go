package cmd

import (
	"fmt"

	"github.com/cwbudde/mlc/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's row:column")
}

func runLex(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.Lex(source) {
		if showPos {
			fmt.Printf("%-14s %-12q @%s\n", tok.Kind, tok.Lexeme, tok.Pos)
		} else {
			fmt.Printf("%-14s %q\n", tok.Kind, tok.Lexeme)
		}
	}
	return nil
}
