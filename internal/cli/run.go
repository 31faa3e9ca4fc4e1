package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/samdecook/loxi/internal/builtin"
	"github.com/samdecook/loxi/internal/config"
	"github.com/samdecook/loxi/internal/interp"
	"github.com/samdecook/loxi/internal/lexer"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
	"github.com/samdecook/loxi/internal/parser"
	"github.com/samdecook/loxi/internal/replio"
	"github.com/spf13/cobra"
)

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runREPL()
	}
	return runFile(args[0], args[1:])
}

func runFile(path string, scriptArgs []string) error {
	if !strings.HasSuffix(path, ".lox") {
		exitCode = ExitUsage
		return fmt.Errorf("script path must end in .lox, got %q", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		exitCode = ExitUsage
		return fmt.Errorf("reading %s: %w", path, err)
	}

	batch := loxerr.BatchID()
	verbosef("scan batch %s: %s\n", batch, path)

	reporter := loxerr.NewReporter(os.Stderr, string(src), path, useColor())

	sc := lexer.New(src)
	toks := sc.Scan()
	verbosef("scanned %d tokens\n", len(toks))
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

	global := object.NewEnvironment(nil)
	builtin.Register(global, os.Stdin)
	it := interp.New(os.Stdout, global)

	if rerr := it.RunProgram(prog, scriptArgs); rerr != nil {
		reporter.Report(rerr)
		exitCode = ExitRuntime
		return fmt.Errorf("runtime error")
	}
	return nil
}

func runREPL() error {
	global := object.NewEnvironment(nil)
	builtin.Register(global, os.Stdin)
	it := interp.New(os.Stdout, global)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	cfg, cerr := config.Load(cwd)
	if cerr != nil {
		return fmt.Errorf("loading .loxirc.yaml: %w", cerr)
	}

	return replio.RunWithConfig(it, cfg, colorForMode(cfg.Color))
}

// colorForMode resolves a config.ColorMode against the --no-color flag
// and NO_COLOR environment variable: an explicit "always"/"never" in
// .loxirc.yaml still loses to --no-color, which is the more immediate,
// per-invocation signal.
func colorForMode(mode config.ColorMode) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if mode == config.ColorNever {
		return false
	}
	return true
}
