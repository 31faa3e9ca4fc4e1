package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdecook/loxi/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "scan a .lox file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		exitCode = ExitUsage
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	sc := lexer.New(src)
	for _, tok := range sc.Scan() {
		fmt.Println(tok.String())
	}
	if sc.HadError() {
		for _, e := range sc.Errors() {
			fmt.Fprintln(os.Stderr, e)
		}
		exitCode = ExitSyntax
		return fmt.Errorf("scan failed")
	}
	return nil
}
