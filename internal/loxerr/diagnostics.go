package loxerr

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

// Reporter renders structured errors as source-cited diagnostics,
// grounded on go-dws's internal/errors.CompilerError.Format: a
// "file:line" header, the offending source line prefixed with a
// gutter, and a caret under the first character of that line (errors
// carry a line but no column).
//
// BatchID hands out a correlation ID per call; the Reporter itself does
// not attach one to the diagnostics it prints.
type Reporter struct {
	Out    io.Writer
	Source []string // pre-split source lines, 1-indexed access via Source[line-1]
	File   string
	Color  bool
}

// NewReporter builds a Reporter over pre-split source lines.
func NewReporter(out io.Writer, source string, file string, useColor bool) *Reporter {
	return &Reporter{Out: out, Source: strings.Split(source, "\n"), File: file, Color: useColor}
}

// BatchID returns a fresh correlation ID for one scan/parse/eval pass.
func BatchID() string { return uuid.NewString() }

func (r *Reporter) sourceLine(line int) (string, bool) {
	if line < 1 || line > len(r.Source) {
		return "", false
	}
	return r.Source[line-1], true
}

func (r *Reporter) header(line int) string {
	if r.File != "" {
		return fmt.Sprintf("%s:%d", r.File, line)
	}
	return fmt.Sprintf("line %d", line)
}

func (r *Reporter) paint(c *color.Color, s string) string {
	if !r.Color {
		return s
	}
	return c.Sprint(s)
}

// Report renders a single error. It accepts *ParserError, *RuntimeError,
// or any error (falling back to a bare message).
func (r *Reporter) Report(err error) {
	var line int
	var kind, msg string

	switch e := err.(type) {
	case *ParserError:
		line, kind, msg = e.Line, e.Kind.String(), e.Message
	case *RuntimeError:
		line, kind, msg = e.Line, e.Kind.String(), e.Message
	default:
		fmt.Fprintf(r.Out, "%s\n", r.paint(color.New(color.FgRed, color.Bold), "Error: "+err.Error()))
		return
	}

	fmt.Fprintf(r.Out, "%s %s\n", r.paint(color.New(color.FgRed, color.Bold), "Error"+func() string {
		if line > 0 {
			return " at " + r.header(line)
		}
		return ""
	}()), r.paint(color.New(color.FgYellow), kind))

	if line > 0 {
		if src, ok := r.sourceLine(line); ok {
			gutter := fmt.Sprintf("%4d | ", line)
			fmt.Fprintf(r.Out, "%s%s\n", gutter, src)
			fmt.Fprintf(r.Out, "%s%s\n", strings.Repeat(" ", runewidth.StringWidth(gutter)), r.paint(color.New(color.FgRed), "^"))
		}
	}

	fmt.Fprintf(r.Out, "%s\n", msg)
}

// ReportAll renders every error in errs, in order.
func (r *Reporter) ReportAll(errs []error) {
	for _, e := range errs {
		r.Report(e)
	}
}
