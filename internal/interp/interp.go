// Package interp implements the expression/statement evaluator, call
// and member semantics, and the two-pass top-level driver. It is the
// Go counterpart of the Rust original's interpreter/ tree (mod.rs,
// expression/mod.rs, statement/mod.rs), reshaped around explicit
// *loxerr.RuntimeError returns instead of panics, the way the teacher's
// evaluate.go reports failures through runtimeError rather than Go's
// panic/recover.
package interp

import (
	"io"

	"github.com/samdecook/loxi/internal/object"
)

// Interp holds the state shared across one program's evaluation: where
// output goes, and the global environment, inspectable by the REPL for
// top-level bindings.
type Interp struct {
	Stdout io.Writer
	Global *object.Environment
}

// New builds an Interp that prints to stdout and evaluates top-level
// code in global. It does not register builtins: callers populate
// global (typically via builtin.Register, which also chooses scan's
// stdin) before passing it in.
func New(stdout io.Writer, global *object.Environment) *Interp {
	return &Interp{Stdout: stdout, Global: global}
}
