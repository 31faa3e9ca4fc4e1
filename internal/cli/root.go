// Package cli is the Cobra command tree for the loxi binary, grounded
// on go-dws's cmd/dwscript/cmd package (root.go/run.go): a package-level
// rootCmd plus sibling subcommand files that register themselves via
// init(), a persistent --verbose flag, and an Execute entry point the
// thin cmd/loxi/main.go calls.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Exit codes per spec §6: 0 success, 65 scan/parse error (the
// crafting-interpreters convention the teacher's main.go also follows
// for os.Exit(65)), 70 runtime error, 1 usage/file error.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitSyntax  = 65
	ExitRuntime = 70
)

var (
	verbose  bool
	noColor  bool
	exitCode int
)

var rootCmd = &cobra.Command{
	Use:   "loxi [script] [args...]",
	Short: "loxi is a tree-walking interpreter for a small class-based scripting language",
	Long: `loxi runs a .lox script, or enters an interactive REPL when given no script.

  loxi                 start the REPL
  loxi script.lox      run script.lox, calling its main() with no arguments
  loxi script.lox a b  run script.lox, passing "a" and "b" to main() as strings`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print scan/parse progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in diagnostics")
}

// Execute runs the command tree over args and returns the process exit
// code; it never calls os.Exit itself, so tests can invoke it
// in-process.
func Execute(args []string) int {
	rootCmd.SetArgs(args)
	exitCode = ExitOK
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
		if exitCode == ExitOK {
			exitCode = ExitUsage
		}
	}
	return exitCode
}

func useColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
