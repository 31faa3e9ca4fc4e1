package interp

import (
	"fmt"

	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

// RunProgram implements §4.8's two-pass driver for non-REPL execution:
// hoist every top-level Function/Class, then synthesize a call to
// main with argv wrapped as string literals.
func (it *Interp) RunProgram(prog *ast.Program, argv []string) *loxerr.RuntimeError {
	if err := it.hoist(prog.Stmts); err != nil {
		return err
	}
	mainFn, lerr := it.Global.Lookup("main")
	if lerr != nil {
		return loxerr.AsRuntimeError(lerr, 0)
	}
	args := make([]object.Value, len(argv))
	for i, a := range argv {
		args[i] = object.Str{Val: a}
	}
	_, err := it.Invoke(mainFn, args, 0)
	return err
}

// hoist declares every top-level Function and Class as a constant
// binding before anything runs, per §4.8. Class static fields are run
// through the full VarDecl evaluation path (so they're also declared
// as ordinary globals) and their resulting value additionally folded
// into the class's StaticFields map - the double-binding the Rust
// original's interpreter/mod.rs performs. Any other top-level
// statement kind is an InternalError: the parser's scope stack already
// rejects everything else at the global scope.
func (it *Interp) hoist(stmts []ast.Stmt) *loxerr.RuntimeError {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.FunctionStmt:
			fn := object.Function{Name: n.Decl.Name, Params: n.Decl.Params, Body: n.Decl.Body, Closure: it.Global}
			if derr := it.Global.Declare(n.Decl.Name, fn, true); derr != nil {
				return loxerr.AsRuntimeError(derr, n.Ln)
			}
		case *ast.ClassStmt:
			if err := it.hoistClass(n); err != nil {
				return err
			}
		default:
			return loxerr.NewRuntimeError(loxerr.InternalError, s.Line(),
				"unexpected top-level statement %T; the parser should have rejected this", s)
		}
	}
	return nil
}

func (it *Interp) hoistClass(n *ast.ClassStmt) *loxerr.RuntimeError {
	cls, err := it.buildClass(n.Decl, it.Global)
	if err != nil {
		return err
	}
	for _, sf := range n.Decl.StaticFields {
		if _, serr := it.EvalStmt(sf, it.Global); serr != nil {
			return serr
		}
		v, lerr := it.Global.Lookup(sf.Name)
		if lerr != nil {
			return loxerr.AsRuntimeError(lerr, sf.Ln)
		}
		cls.StaticFields[sf.Name] = v
	}
	if derr := it.Global.Declare(n.Decl.Name, cls, true); derr != nil {
		return loxerr.AsRuntimeError(derr, n.Ln)
	}
	return nil
}

// RunREPL evaluates one top-level statement in REPL mode: no hoisting
// pass runs (the parser's REPL relaxation allows bare statements at
// global scope), and a Value result is echoed followed by a newline,
// per §4.8.
func (it *Interp) RunREPL(stmt ast.Stmt) *loxerr.RuntimeError {
	res, err := it.EvalStmt(stmt, it.Global)
	if err != nil {
		return err
	}
	if res.Kind == object.ResultValue {
		fmt.Fprintln(it.Stdout, res.Val.String())
	}
	return nil
}
