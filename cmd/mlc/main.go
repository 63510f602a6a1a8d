// Command mlc is the command-line driver for the compiler: it reads
// source text, runs it through pkg/compiler, and writes or runs the
// resulting LLVM IR.
package main

import (
	"os"

	"github.com/cwbudde/mlc/cmd/mlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
