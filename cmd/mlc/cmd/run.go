package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cwbudde/mlc/internal/cerrors"
	"github.com/cwbudde/mlc/pkg/compiler"
	"github.com/spf13/cobra"
)

var runClang string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Compile a source file, assemble it with clang, and run the result",
	Long: `run compiles a source file to LLVM IR, invokes clang to produce a native
binary, executes that binary, and exits with its exit code.

Neither this command nor pkg/compiler.Compile checks for the presence of
a main function; a program that doesn't define one fails at the clang
link step, not here.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runClang, "clang", "clang", "the clang binary to invoke")
}

func runRun(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	lines, err := compiler.Compile(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, cerrors.Render(err, source))
		return err
	}

	dir, err := os.MkdirTemp("", "mlc-run-*")
	if err != nil {
		return fmt.Errorf("failed to create a temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	llPath := filepath.Join(dir, base+".ll")
	binPath := filepath.Join(dir, base)

	if err := os.WriteFile(llPath, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write IR file %s: %w", llPath, err)
	}

	assemble := exec.Command(runClang, llPath, "-o", binPath)
	assemble.Stdout = os.Stdout
	assemble.Stderr = os.Stderr
	if err := assemble.Run(); err != nil {
		return fmt.Errorf("clang failed to assemble %s: %w", llPath, err)
	}

	run := exec.Command(binPath)
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	run.Stdin = os.Stdin
	runErr := run.Run()

	exitCode := 0
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if runErr != nil {
		return fmt.Errorf("failed to run %s: %w", binPath, runErr)
	}

	// os.Exit skips deferred cleanup, so drop the temp directory first.
	os.RemoveAll(dir)
	os.Exit(exitCode)
	return nil
}
