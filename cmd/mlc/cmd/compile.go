package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/mlc/internal/cerrors"
	"github.com/cwbudde/mlc/pkg/compiler"
	"github.com/spf13/cobra"
)

var compileOutput string

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a source file to a .ll LLVM IR file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "output file (default: <input>.ll)")
}

func runCompile(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	lines, err := compiler.Compile(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, cerrors.Render(err, source))
		return err
	}

	outFile := compileOutput
	if outFile == "" {
		ext := filepath.Ext(filename)
		outFile = strings.TrimSuffix(filename, ext) + ".ll"
	}

	if err := os.WriteFile(outFile, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	fmt.Printf("compiled %s -> %s\n", filename, outFile)
	return nil
}
