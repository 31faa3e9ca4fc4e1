package interp

import (
	"math"

	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

// EvalExpr evaluates e in env, grounded on the teacher's
// evaluate.go (one method per node kind) but returning an explicit
// *loxerr.RuntimeError instead of calling runtimeError/panic.
func (it *Interp) EvalExpr(e ast.Expr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	switch n := e.(type) {
	case *ast.NumericLiteral:
		return object.Number{Val: n.Value}, nil
	case *ast.NullLiteral:
		return object.Nil{}, nil
	case *ast.BoolLiteral:
		return object.Bool{Val: n.Value}, nil
	case *ast.StringLiteral:
		return object.Str{Val: n.Value}, nil
	case *ast.Identifier:
		v, err := env.Lookup(n.Name)
		if err != nil {
			return nil, loxerr.AsRuntimeError(err, n.Ln)
		}
		return v, nil
	case *ast.ThisExpr:
		v, err := env.Lookup("this")
		if err != nil {
			return nil, loxerr.AsRuntimeError(err, n.Ln)
		}
		return v, nil
	case *ast.SuperExpr:
		return it.evalSuper(n, env)
	case *ast.ArrayExpr:
		return it.evalArray(n, env)
	case *ast.ObjectExpr:
		return it.evalObject(n, env)
	case *ast.MemberExpr:
		return it.evalMember(n, env)
	case *ast.CallExpr:
		return it.evalCall(n, env)
	case *ast.UnaryExpr:
		return it.evalUnary(n, env)
	case *ast.BinaryExpr:
		return it.evalBinary(n, env)
	case *ast.ComparisonExpr:
		return it.evalComparison(n, env)
	case *ast.LogicalExpr:
		return it.evalLogical(n, env)
	case *ast.AssignExpr:
		return it.evalAssign(n, env)
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InternalError, e.Line(), "unhandled expression node %T", e)
	}
}

func (it *Interp) evalSuper(n *ast.SuperExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	classVal, err := env.Lookup(n.EnclosingClass)
	if err != nil {
		return nil, loxerr.AsRuntimeError(err, n.Ln)
	}
	cls, ok := classVal.(object.Class)
	if !ok {
		return nil, loxerr.NewRuntimeError(loxerr.InternalError, n.Ln, "%q is not a class", n.EnclosingClass)
	}
	if cls.Superclass == "" {
		return nil, loxerr.NewRuntimeError(loxerr.UndefinedProperty, n.Ln, "class %q has no superclass", cls.Name)
	}
	supVal, err := env.Lookup(cls.Superclass)
	if err != nil {
		return nil, loxerr.AsRuntimeError(err, n.Ln)
	}
	return supVal, nil
}

func (it *Interp) evalArray(n *ast.ArrayExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	elems := make([]object.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := it.EvalExpr(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return object.Array{Elements: elems}, nil
}

func (it *Interp) evalObject(n *ast.ObjectExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	fields := make(map[string]object.Value, len(n.Properties))
	for _, p := range n.Properties {
		if p.Value == nil {
			v, err := env.Lookup(p.Key)
			if err != nil {
				return nil, loxerr.AsRuntimeError(err, p.Line)
			}
			fields[p.Key] = v
			continue
		}
		v, err := it.EvalExpr(p.Value, env)
		if err != nil {
			return nil, err
		}
		fields[p.Key] = v
	}
	return object.Object{Fields: fields}, nil
}

func (it *Interp) evalUnary(n *ast.UnaryExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	right, err := it.EvalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "!":
		b, ok := right.(object.Bool)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln, "'!' requires a Bool operand, got %s", right.TypeName())
		}
		return object.Bool{Val: !b.Val}, nil
	case "-":
		num, ok := right.(object.Number)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln, "unary '-' requires a Number operand, got %s", right.TypeName())
		}
		return object.Number{Val: -num.Val}, nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InternalError, n.Ln, "unknown unary operator %q", n.Op)
	}
}

// evalBinary covers + - * / % == != . Per spec §4.4 the four purely
// numeric operators (- * / %) require two Numbers; + is special-cased
// to also accept two Strings as concatenation, grounded on the
// teacher's BinaryExpr.Evaluate PLUS case (evaluate.go) which tries
// string-string before falling back to number-number.
func (it *Interp) evalBinary(n *ast.BinaryExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	left, err := it.EvalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.EvalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+":
		if ls, ok := left.(object.Str); ok {
			if rs, ok := right.(object.Str); ok {
				return object.Str{Val: ls.Val + rs.Val}, nil
			}
		}
		if ln, ok := left.(object.Number); ok {
			if rn, ok := right.(object.Number); ok {
				return object.Number{Val: ln.Val + rn.Val}, nil
			}
		}
		return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
			"'+' requires two Numbers or two Strings, got %s and %s", left.TypeName(), right.TypeName())
	case "-", "*", "/", "%":
		ln, lok := left.(object.Number)
		rn, rok := right.(object.Number)
		if !lok || !rok {
			return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
				"'%s' requires two Numbers, got %s and %s", n.Op, left.TypeName(), right.TypeName())
		}
		switch n.Op {
		case "-":
			return object.Number{Val: ln.Val - rn.Val}, nil
		case "*":
			return object.Number{Val: ln.Val * rn.Val}, nil
		case "/":
			return object.Number{Val: ln.Val / rn.Val}, nil
		default:
			return object.Number{Val: math.Mod(ln.Val, rn.Val)}, nil
		}
	case "==", "!=":
		// Cross-type equality is a TypeMismatch per spec §4.4, except
		// when both sides share a type (the only case valuesEqual is
		// asked to decide).
		if left.TypeName() != right.TypeName() {
			return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
				"cannot compare %s to %s", left.TypeName(), right.TypeName())
		}
		eq := valuesEqual(left, right)
		if n.Op == "==" {
			return object.Bool{Val: eq}, nil
		}
		return object.Bool{Val: !eq}, nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InternalError, n.Ln, "unknown binary operator %q", n.Op)
	}
}

// valuesEqual compares two same-typed Number/Bool/String values; it is
// only ever called after the caller has confirmed left/right share a
// type, per spec §4.4's restriction to same-typed equality.
func valuesEqual(left, right object.Value) bool {
	switch l := left.(type) {
	case object.Number:
		r := right.(object.Number)
		return l.Val == r.Val
	case object.Bool:
		r := right.(object.Bool)
		return l.Val == r.Val
	case object.Str:
		r := right.(object.Str)
		return l.Val == r.Val
	case object.Nil:
		return true
	default:
		return false
	}
}

func (it *Interp) evalComparison(n *ast.ComparisonExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	left, err := it.EvalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.EvalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}

	var less, equal bool
	switch l := left.(type) {
	case object.Number:
		r, ok := right.(object.Number)
		if !ok {
			return nil, typeMismatchCompare(n.Ln, left, right)
		}
		less, equal = l.Val < r.Val, l.Val == r.Val
	case object.Bool:
		r, ok := right.(object.Bool)
		if !ok {
			return nil, typeMismatchCompare(n.Ln, left, right)
		}
		lb, rb := boolRank(l.Val), boolRank(r.Val)
		less, equal = lb < rb, lb == rb
	case object.Str:
		r, ok := right.(object.Str)
		if !ok {
			return nil, typeMismatchCompare(n.Ln, left, right)
		}
		less, equal = l.Val < r.Val, l.Val == r.Val
	default:
		return nil, typeMismatchCompare(n.Ln, left, right)
	}

	switch n.Op {
	case "<":
		return object.Bool{Val: less}, nil
	case "<=":
		return object.Bool{Val: less || equal}, nil
	case ">":
		return object.Bool{Val: !less && !equal}, nil
	case ">=":
		return object.Bool{Val: !less}, nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InternalError, n.Ln, "unknown comparison operator %q", n.Op)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func typeMismatchCompare(line int, left, right object.Value) *loxerr.RuntimeError {
	return loxerr.NewRuntimeError(loxerr.TypeMismatch, line,
		"cannot compare %s to %s", left.TypeName(), right.TypeName())
}

// evalLogical implements `and`/`or`. Per spec §4.4 both operands must
// be Bool and both sides are evaluated unconditionally (no
// short-circuit), unlike the teacher's LogicOrExpr/LogicAndExpr which
// do short-circuit on arbitrary truthiness.
func (it *Interp) evalLogical(n *ast.LogicalExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	left, err := it.EvalExpr(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.EvalExpr(n.Right, env)
	if err != nil {
		return nil, err
	}
	lb, lok := left.(object.Bool)
	rb, rok := right.(object.Bool)
	if !lok || !rok {
		return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln,
			"'%s' requires two Bools, got %s and %s", n.Op, left.TypeName(), right.TypeName())
	}
	if n.Op == "and" {
		return object.Bool{Val: lb.Val && rb.Val}, nil
	}
	return object.Bool{Val: lb.Val || rb.Val}, nil
}

func (it *Interp) evalCall(n *ast.CallExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	callee, err := it.EvalExpr(n.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, aerr := it.EvalExpr(a, env)
		if aerr != nil {
			return nil, aerr
		}
		args[i] = v
	}
	return it.Invoke(callee, args, n.Ln)
}

func (it *Interp) evalAssign(n *ast.AssignExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	value, err := it.EvalExpr(n.Value, env)
	if err != nil {
		return nil, err
	}
	switch target := n.Target.(type) {
	case *ast.Identifier:
		if aerr := env.Assign(target.Name, value); aerr != nil {
			return nil, loxerr.AsRuntimeError(aerr, n.Ln)
		}
		return value, nil
	case *ast.MemberExpr:
		if merr := it.evalMemberAssign(target, value, env, n.Ln); merr != nil {
			return nil, merr
		}
		return value, nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.TypeMismatch, n.Ln, "invalid assignment target")
	}
}

func indexFromNumber(n object.Number, line int) (int, *loxerr.RuntimeError) {
	if n.Val < 0 || n.Val != math.Trunc(n.Val) {
		return 0, loxerr.NewRuntimeError(loxerr.InvalidArrayIndex, line,
			"index must be a non-negative integer, got %s", n.String())
	}
	return int(n.Val), nil
}
