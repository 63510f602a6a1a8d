package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mlc",
	Short: "A compiler for a small statically-typed procedural language",
	Long: `mlc compiles programs in a small statically-typed procedural language
down to textual LLVM IR.

The language has two value types (int, bool), user-defined functions,
local variables, while loops, if/else (also usable as an expression),
and the usual arithmetic, comparison, and logical operators.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func readSource(args []string) (source, filename string, err error) {
	if len(args) != 1 {
		return "", "", fmt.Errorf("expected exactly one source file")
	}
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}
