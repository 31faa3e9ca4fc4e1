// Package replio drives the interactive REPL spec §6 describes: prompt
// "> ", exit on the literal line "exit". It layers history/line-editing
// via github.com/chzyer/readline over that bare protocol, and styles
// the prompt with github.com/charmbracelet/lipgloss while routing error
// text through github.com/fatih/color - the same split of duties
// SPEC_FULL §10.4 calls for (structural styling vs. semantic coloring).
package replio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/samdecook/loxi/internal/config"
	"github.com/samdecook/loxi/internal/interp"
	"github.com/samdecook/loxi/internal/lexer"
	"github.com/samdecook/loxi/internal/parser"
)

// DefaultPrompt is the spec-mandated REPL prompt.
const DefaultPrompt = "> "

// ExitLine is the literal input line that ends the REPL.
const ExitLine = "exit"

var promptStyle = lipgloss.NewStyle().Bold(true)

// Run drives the REPL loop against it using config.Default() and the
// given color override, reading lines until ExitLine or EOF (Ctrl-D).
func Run(it *interp.Interp, useColor bool) error {
	return RunWithConfig(it, config.Default(), useColor)
}

// RunWithConfig is Run with a loaded internal/config.Config: cfg.Prompt
// sets the line prompt and cfg.EchoValues decides whether a bare
// expression's value is echoed (spec default: yes). Each line is
// scanned, parsed (in REPL mode, which relaxes the global-scope
// statement restriction), and evaluated; parse/runtime errors are
// reported and the loop continues.
func RunWithConfig(it *interp.Interp, cfg config.Config, useColor bool) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          styledPrompt(cfg.Prompt, useColor),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting REPL: %w", err)
	}
	defer rl.Close()

	errColor := color.New(color.FgRed)
	if !useColor {
		errColor.DisableColor()
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == ExitLine {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(it, line, cfg.EchoValues, errColor)
	}
}

func evalLine(it *interp.Interp, line string, echoValues bool, errColor *color.Color) {
	sc := lexer.New([]byte(line))
	toks := sc.Scan()
	if sc.HadError() {
		for _, e := range sc.Errors() {
			fmt.Fprintln(os.Stderr, errColor.Sprint(e))
		}
		return
	}

	prog, perr := parser.Parse(toks, true)
	if perr != nil {
		fmt.Fprintln(os.Stderr, errColor.Sprint(perr.Error()))
		return
	}

	for _, stmt := range prog.Stmts {
		if echoValues {
			if rerr := it.RunREPL(stmt); rerr != nil {
				fmt.Fprintln(os.Stderr, errColor.Sprint(rerr.Error()))
				return
			}
			continue
		}
		if _, rerr := it.EvalStmt(stmt, it.Global); rerr != nil {
			fmt.Fprintln(os.Stderr, errColor.Sprint(rerr.Error()))
			return
		}
	}
}

func styledPrompt(prompt string, useColor bool) string {
	if !useColor {
		return prompt
	}
	return promptStyle.Render(prompt)
}
