package interp

import (
	"fmt"

	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

// EvalStmt evaluates one statement and returns the three-valued
// EvalResult spec §4.7 describes, grounded on the teacher's
// `Stmt.Run(env) (Object, bool)` pattern but widened to a closed enum
// of Value/Return/Break/Continue/NoDisplay instead of a bare bool.
func (it *Interp) EvalStmt(s ast.Stmt, env *object.Environment) (object.EvalResult, *loxerr.RuntimeError) {
	switch n := s.(type) {
	case *ast.ExpressionStmt:
		v, err := it.EvalExpr(n.Expr, env)
		if err != nil {
			return object.EvalResult{}, err
		}
		return object.Res(v), nil

	case *ast.VarDecl:
		var v object.Value = object.Nil{}
		if n.Init != nil {
			var err *loxerr.RuntimeError
			v, err = it.EvalExpr(n.Init, env)
			if err != nil {
				return object.EvalResult{}, err
			}
		}
		if derr := env.Declare(n.Name, v, n.Const); derr != nil {
			return object.EvalResult{}, loxerr.AsRuntimeError(derr, n.Ln)
		}
		return object.NoDisplay(object.Nil{}), nil

	case *ast.PrintStmt:
		for _, e := range n.Exprs {
			v, err := it.EvalExpr(e, env)
			if err != nil {
				return object.EvalResult{}, err
			}
			fmt.Fprint(it.Stdout, v.String())
		}
		if n.Newline {
			fmt.Fprintln(it.Stdout)
		}
		return object.NoDisplay(object.Nil{}), nil

	case *ast.IfElseStmt:
		return it.evalIfElse(n, env)

	case *ast.WhileStmt:
		return it.evalWhile(n, env)

	case *ast.ForStmt:
		return it.evalFor(n, env)

	case *ast.BlockStmt:
		return it.evalBlock(n.Stmts, object.NewEnvironment(env))

	case *ast.ReturnStmt:
		if n.Expr == nil {
			return object.Return(object.Nil{}), nil
		}
		v, err := it.EvalExpr(n.Expr, env)
		if err != nil {
			return object.EvalResult{}, err
		}
		return object.Return(v), nil

	case *ast.BreakStmt:
		return object.Break(), nil

	case *ast.ContinueStmt:
		return object.Continue(), nil

	case *ast.FunctionStmt:
		fn := object.Function{Name: n.Decl.Name, Params: n.Decl.Params, Body: n.Decl.Body, Closure: env}
		if derr := env.Declare(n.Decl.Name, fn, true); derr != nil {
			return object.EvalResult{}, loxerr.AsRuntimeError(derr, n.Ln)
		}
		return object.NoDisplay(object.Nil{}), nil

	case *ast.ClassStmt:
		cls, err := it.buildClass(n.Decl, env)
		if err != nil {
			return object.EvalResult{}, err
		}
		if derr := env.Declare(n.Decl.Name, cls, true); derr != nil {
			return object.EvalResult{}, loxerr.AsRuntimeError(derr, n.Ln)
		}
		return object.NoDisplay(object.Nil{}), nil

	default:
		return object.EvalResult{}, loxerr.NewRuntimeError(loxerr.InternalError, s.Line(), "unhandled statement node %T", s)
	}
}

// buildClass constructs the runtime Class value for a ClassDecl,
// compiling its methods into closures over env. Static field
// initializers are NOT run here: the driver's hoisting pass (§4.8)
// runs each one through the full VarDecl path first and folds the
// result in, mirroring the double-binding the Rust original performs
// in interpreter/mod.rs.
func (it *Interp) buildClass(decl *ast.ClassDecl, env *object.Environment) (object.Class, *loxerr.RuntimeError) {
	methods := make(map[string]*object.Function, len(decl.Methods))
	for name, m := range decl.Methods {
		methods[name] = &object.Function{Name: m.Name, Params: m.Params, Body: m.Body, Closure: env}
	}
	return object.Class{
		Name:         decl.Name,
		StaticFields: map[string]object.Value{},
		Methods:      methods,
		Superclass:   decl.Superclass,
	}, nil
}

// evalBlock runs stmts in blockEnv, propagating Return/Break/Continue.
func (it *Interp) evalBlock(stmts []ast.Stmt, blockEnv *object.Environment) (object.EvalResult, *loxerr.RuntimeError) {
	last := object.NoDisplay(object.Nil{})
	for _, stmt := range stmts {
		res, err := it.EvalStmt(stmt, blockEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		if res.IsControl() {
			return res, nil
		}
		last = res
	}
	return last, nil
}

func (it *Interp) evalIfElse(n *ast.IfElseStmt, env *object.Environment) (object.EvalResult, *loxerr.RuntimeError) {
	branchEnv := object.NewEnvironment(env)
	for i, b := range n.Branches {
		cond, err := it.EvalExpr(b.Condition, branchEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		bv, ok := cond.(object.Bool)
		if !ok {
			which := "if"
			if i > 0 {
				which = "else-if"
			}
			return object.EvalResult{}, loxerr.NewRuntimeError(loxerr.TypeMismatch, b.Line,
				"%s condition must be a Bool, got %s", which, cond.TypeName())
		}
		if bv.Val {
			return it.EvalStmt(b.Body, branchEnv)
		}
	}
	return object.NoDisplay(object.Nil{}), nil
}

func (it *Interp) evalWhile(n *ast.WhileStmt, env *object.Environment) (object.EvalResult, *loxerr.RuntimeError) {
	loopEnv := object.NewEnvironment(env)
	for {
		cond, err := it.EvalExpr(n.Cond, loopEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		bv, ok := cond.(object.Bool)
		if !ok {
			return object.EvalResult{}, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
				"while condition must be a Bool, got %s", cond.TypeName())
		}
		if !bv.Val {
			return object.NoDisplay(object.Nil{}), nil
		}
		res, err := it.EvalStmt(n.Body, loopEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		switch res.Kind {
		case object.ResultReturn:
			return res, nil
		case object.ResultBreak:
			return object.NoDisplay(object.Nil{}), nil
		case object.ResultContinue:
			continue
		}
	}
}

func (it *Interp) evalFor(n *ast.ForStmt, env *object.Environment) (object.EvalResult, *loxerr.RuntimeError) {
	loopEnv := object.NewEnvironment(env)
	if _, err := it.EvalStmt(n.Init, loopEnv); err != nil {
		return object.EvalResult{}, err
	}
	for {
		cond, err := it.EvalExpr(n.Cond, loopEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		bv, ok := cond.(object.Bool)
		if !ok {
			return object.EvalResult{}, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
				"for condition must be a Bool, got %s", cond.TypeName())
		}
		if !bv.Val {
			return object.NoDisplay(object.Nil{}), nil
		}
		res, err := it.EvalStmt(n.Body, loopEnv)
		if err != nil {
			return object.EvalResult{}, err
		}
		switch res.Kind {
		case object.ResultReturn:
			return res, nil
		case object.ResultBreak:
			return object.NoDisplay(object.Nil{}), nil
		}
		if _, err := it.EvalExpr(n.Step, loopEnv); err != nil {
			return object.EvalResult{}, err
		}
	}
}
