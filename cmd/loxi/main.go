// Command loxi is the CLI entry point: run a .lox file, dump its
// tokens/AST, or enter the REPL. Grounded on go-dws's
// cmd/dwscript/cmd package (a Cobra command tree) generalized to this
// language's two-pass driver (spec §4.8, §6) instead of dwscript's
// single-pass interp.Eval.
package main

import (
	"os"

	"github.com/samdecook/loxi/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
