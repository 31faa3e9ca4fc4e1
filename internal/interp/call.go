package interp

import (
	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

// Invoke implements §4.5's call semantics, dispatching on the callee's
// runtime kind - grounded on the teacher's Callable interface
// (callable.go) generalized to cover Method and NativeFunction, which
// the teacher's codecrafters exercise doesn't have.
func (it *Interp) Invoke(callee object.Value, args []object.Value, line int) (object.Value, *loxerr.RuntimeError) {
	switch fn := callee.(type) {
	case object.Function:
		return it.invokeBody(fn.Params, fn.Body, fn.Closure, nil, args, line)
	case object.Method:
		return it.invokeBody(fn.Params, fn.Body, fn.Closure, fn.Instance, args, line)
	case object.Class:
		return it.construct(fn, args, line)
	case object.NativeFunction:
		v, err := fn.Fn(args, line)
		if err != nil {
			if re, ok := err.(*loxerr.RuntimeError); ok {
				return nil, re
			}
			return nil, loxerr.NewRuntimeError(loxerr.InvalidCall, line, "%s", err.Error())
		}
		return v, nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InvalidCall, line, "%s is not callable", callee.TypeName())
	}
}

// invokeBody runs a Function or Method body in a fresh environment
// chained to its closure. When instance is non-nil, `this` is declared
// as a constant before parameters are bound, per §4.5's "Method: as
// function, but additionally declare this".
func (it *Interp) invokeBody(params []string, body []ast.Stmt, closure *object.Environment, instance *object.Instance, args []object.Value, line int) (object.Value, *loxerr.RuntimeError) {
	if len(params) != len(args) {
		return nil, loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
			"expected %d argument(s) but got %d", len(params), len(args))
	}
	callEnv := object.NewEnvironment(closure)
	if instance != nil {
		if derr := callEnv.Declare("this", *instance, true); derr != nil {
			return nil, loxerr.AsRuntimeError(derr, line)
		}
	}
	for i, p := range params {
		if derr := callEnv.Declare(p, args[i], false); derr != nil {
			return nil, loxerr.AsRuntimeError(derr, line)
		}
	}
	for _, stmt := range body {
		res, err := it.EvalStmt(stmt, callEnv)
		if err != nil {
			return nil, err
		}
		if res.Kind == object.ResultReturn {
			return res.Val, nil
		}
		if res.Kind == object.ResultBreak || res.Kind == object.ResultContinue {
			return nil, loxerr.NewRuntimeError(loxerr.InternalError, line, "break/continue escaped a function body")
		}
	}
	return object.Nil{}, nil
}

// construct implements §4.5's Class-as-constructor semantics: a fresh,
// parentless instance environment, an optional constructor call (a
// method named identically to the class, never inherited from a
// superclass) with `this` bound to the new instance and its return
// value discarded, then the instance. A class with no own constructor
// silently ignores any arguments it was called with, matching
// original_source's construction path (`None => {}`) rather than
// raising an arity error.
func (it *Interp) construct(cls object.Class, args []object.Value, line int) (object.Value, *loxerr.RuntimeError) {
	instEnv := object.NewEnvironment(nil)
	instance := object.Instance{ClassName: cls.Name, InstanceEnv: instEnv}

	if ctor, ok := cls.Methods[cls.Name]; ok {
		if _, err := it.invokeBody(ctor.Params, ctor.Body, ctor.Closure, &instance, args, line); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
