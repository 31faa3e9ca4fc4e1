package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdecook/loxi/internal/lexer"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/parser"
)

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "scan and parse a .lox file, printing its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		exitCode = ExitUsage
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	reporter := loxerr.NewReporter(os.Stderr, string(src), args[0], useColor())

	sc := lexer.New(src)
	toks := sc.Scan()
	if sc.HadError() {
		for _, e := range sc.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		exitCode = ExitSyntax
		return fmt.Errorf("scan failed")
	}

	prog, perr := parser.Parse(toks, false)
	if perr != nil {
		reporter.Report(perr)
		exitCode = ExitSyntax
		return fmt.Errorf("parse failed")
	}
	for _, stmt := range prog.Stmts {
		fmt.Println(stmt.String())
	}
	return nil
}
