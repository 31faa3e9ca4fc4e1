package interp

import (
	"github.com/samdecook/loxi/internal/ast"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

// evalMember dispatches a MemberExpr to its computed or dotted reading,
// per spec §4.4.
func (it *Interp) evalMember(n *ast.MemberExpr, env *object.Environment) (object.Value, *loxerr.RuntimeError) {
	obj, err := it.EvalExpr(n.Object, env)
	if err != nil {
		return nil, err
	}
	if n.Computed {
		key, kerr := it.EvalExpr(n.Property, env)
		if kerr != nil {
			return nil, kerr
		}
		return it.memberGetComputed(obj, key, n.Ln)
	}
	name, nerr := propName(n, n.Ln)
	if nerr != nil {
		return nil, nerr
	}
	return it.memberGetDotted(obj, name, env, n.Ln)
}

// memberGetComputed implements obj[key] per spec §4.4.
func (it *Interp) memberGetComputed(obj, key object.Value, line int) (object.Value, *loxerr.RuntimeError) {
	switch o := obj.(type) {
	case object.Object:
		s, ok := key.(object.Str)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "'[]' requires a String key on Object, got %s", key.TypeName())
		}
		if v, ok := o.Fields[s.Val]; ok {
			return v, nil
		}
		return object.Nil{}, nil
	case object.Str:
		n, ok := key.(object.Number)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "'[]' requires a Number index on String, got %s", key.TypeName())
		}
		idx, ierr := indexFromNumber(n, line)
		if ierr != nil {
			return nil, ierr
		}
		if idx >= len(o.Val) {
			return nil, loxerr.NewRuntimeError(loxerr.ArrayIndexOutOfBounds, line, "index %d out of bounds for string of length %d", idx, len(o.Val))
		}
		return object.Str{Val: string(o.Val[idx])}, nil
	case object.Array:
		n, ok := key.(object.Number)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "'[]' requires a Number index on Array, got %s", key.TypeName())
		}
		idx, ierr := indexFromNumber(n, line)
		if ierr != nil {
			return nil, ierr
		}
		if idx >= len(o.Elements) {
			return nil, loxerr.NewRuntimeError(loxerr.ArrayIndexOutOfBounds, line, "index %d out of bounds for array of length %d", idx, len(o.Elements))
		}
		return o.Elements[idx], nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "'[]' not supported on %s", obj.TypeName())
	}
}

// memberGetDotted implements obj.prop per spec §4.4, including the
// Class/Instance chain-walk grounded on original_source's
// evaluate_member_expr: a lookup rooted at an Instance threads that
// instance through the superclass chain so a resolved method becomes a
// bound Method; a lookup rooted at a bare Class (as happens for
// super.m(), since SuperExpr evaluates straight to a Class) does not -
// the resolved method stays an unbound Function, exactly the behavior
// both the distilled spec's own wording ("static-field hit returns the
// field... walk superclass chain") and the Rust original describe.
func (it *Interp) memberGetDotted(obj object.Value, name string, env *object.Environment, line int) (object.Value, *loxerr.RuntimeError) {
	switch v := obj.(type) {
	case object.Object:
		if fv, ok := v.Fields[name]; ok {
			return fv, nil
		}
		return nil, loxerr.NewRuntimeError(loxerr.UndefinedField, line, "undefined field %q", name)
	case object.Class:
		return it.lookupOnClass(v, name, nil, env, line)
	case object.Instance:
		if fv, ierr := v.InstanceEnv.Lookup(name); ierr == nil {
			return fv, nil
		}
		clsVal, cerr := env.Lookup(v.ClassName)
		if cerr != nil {
			return nil, loxerr.AsRuntimeError(cerr, line)
		}
		cls, ok := clsVal.(object.Class)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.InternalError, line, "%q is not a class", v.ClassName)
		}
		inst := v
		return it.lookupOnClass(cls, name, &inst, env, line)
	default:
		return nil, loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "'.' not supported on %s", obj.TypeName())
	}
}

func (it *Interp) lookupOnClass(cls object.Class, name string, pending *object.Instance, env *object.Environment, line int) (object.Value, *loxerr.RuntimeError) {
	if fn, ok := cls.Methods[name]; ok {
		if pending != nil {
			return object.Method{Name: fn.Name, Params: fn.Params, Body: fn.Body, Closure: fn.Closure, Instance: pending}, nil
		}
		return *fn, nil
	}
	if fv, ok := cls.StaticFields[name]; ok {
		return fv, nil
	}
	if cls.Superclass != "" {
		supVal, serr := env.Lookup(cls.Superclass)
		if serr != nil {
			return nil, loxerr.AsRuntimeError(serr, line)
		}
		supCls, ok := supVal.(object.Class)
		if !ok {
			return nil, loxerr.NewRuntimeError(loxerr.InternalError, line, "%q is not a class", cls.Superclass)
		}
		return it.lookupOnClass(supCls, name, pending, env, line)
	}
	return nil, loxerr.NewRuntimeError(loxerr.UndefinedProperty, line, "undefined property %q on class %q", name, cls.Name)
}

// propName extracts the field name from a dotted MemberExpr's Property
// node; the parser only ever routes Identifier, ThisExpr, or SuperExpr
// there, but only an Identifier names an addressable field/method.
func propName(n *ast.MemberExpr, line int) (string, *loxerr.RuntimeError) {
	id, ok := n.Property.(*ast.Identifier)
	if !ok {
		return "", loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "expected a property name after '.'")
	}
	return id.Name, nil
}

// evalMemberAssign implements §4.6. An Instance has reference semantics
// (its InstanceEnv is mutated directly), so its member expression may be
// rooted at any expression - notably `this.field = value` inside a
// method/constructor. Class/Object/Array/Str instead have value
// semantics: assigning into them produces a new aggregate that must be
// written back through a binding, so those four require the member
// expression be rooted at a bare Identifier.
func (it *Interp) evalMemberAssign(target *ast.MemberExpr, value object.Value, env *object.Environment, line int) *loxerr.RuntimeError {
	base, err := it.EvalExpr(target.Object, env)
	if err != nil {
		return err
	}

	if inst, ok := base.(object.Instance); ok {
		name, nerr := propName(target, line)
		if nerr != nil {
			return nerr
		}
		if _, lerr := inst.InstanceEnv.Lookup(name); lerr == nil {
			if aerr := inst.InstanceEnv.Assign(name, value); aerr != nil {
				return loxerr.AsRuntimeError(aerr, line)
			}
			return nil
		}
		if derr := inst.InstanceEnv.Declare(name, value, false); derr != nil {
			return loxerr.AsRuntimeError(derr, line)
		}
		return nil
	}

	ident, ok := target.Object.(*ast.Identifier)
	if !ok {
		return loxerr.NewRuntimeError(loxerr.TypeMismatch, line, "member assignment target must be a variable")
	}

	switch b := base.(type) {
	case object.Class:
		name, nerr := propName(target, line)
		if nerr != nil {
			return nerr
		}
		if _, isMethod := b.Methods[name]; isMethod {
			return loxerr.NewRuntimeError(loxerr.TypeMismatch, line, "cannot assign to method %q", name)
		}
		fields := make(map[string]object.Value, len(b.StaticFields)+1)
		for k, v := range b.StaticFields {
			fields[k] = v
		}
		fields[name] = value
		newCls := object.Class{Name: b.Name, StaticFields: fields, Methods: b.Methods, Superclass: b.Superclass}
		if aerr := env.Assign(ident.Name, newCls); aerr != nil {
			return loxerr.AsRuntimeError(aerr, line)
		}
		return nil

	case object.Object:
		name, nerr := it.memberKey(target, env, line)
		if nerr != nil {
			return nerr
		}
		clone := b.Clone()
		clone.Fields[name] = value
		if aerr := env.Assign(ident.Name, clone); aerr != nil {
			return loxerr.AsRuntimeError(aerr, line)
		}
		return nil

	case object.Array:
		if !target.Computed {
			return loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "array elements are assigned with '[]', not '.'")
		}
		idx, ierr := it.memberIndex(target, env, line, len(b.Elements))
		if ierr != nil {
			return ierr
		}
		clone := b.Clone()
		clone.Elements[idx] = value
		if aerr := env.Assign(ident.Name, clone); aerr != nil {
			return loxerr.AsRuntimeError(aerr, line)
		}
		return nil

	case object.Str:
		if !target.Computed {
			return loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "string characters are assigned with '[]', not '.'")
		}
		idx, ierr := it.memberIndex(target, env, line, len(b.Val))
		if ierr != nil {
			return ierr
		}
		rv, ok := value.(object.Str)
		if !ok {
			return loxerr.NewRuntimeError(loxerr.TypeMismatch, line, "string character assignment requires a String value, got %s", value.TypeName())
		}
		clone := b.Val[:idx] + rv.Val + b.Val[idx+1:]
		if aerr := env.Assign(ident.Name, object.Str{Val: clone}); aerr != nil {
			return loxerr.AsRuntimeError(aerr, line)
		}
		return nil

	default:
		return loxerr.NewRuntimeError(loxerr.TypeMismatch, line, "cannot assign a member on %s", base.TypeName())
	}
}

// memberKey resolves the field name for both dotted (a.k) and computed
// (a["k"]) Object assignment.
func (it *Interp) memberKey(target *ast.MemberExpr, env *object.Environment, line int) (string, *loxerr.RuntimeError) {
	if !target.Computed {
		return propName(target, line)
	}
	key, err := it.EvalExpr(target.Property, env)
	if err != nil {
		return "", err
	}
	s, ok := key.(object.Str)
	if !ok {
		return "", loxerr.NewRuntimeError(loxerr.InvalidMemberAccess, line, "object key must be a String, got %s", key.TypeName())
	}
	return s.Val, nil
}

// memberIndex resolves the numeric index for computed Array/String
// assignment (those are never dotted) and bounds-checks it against
// length.
func (it *Interp) memberIndex(target *ast.MemberExpr, env *object.Environment, line int, length int) (int, *loxerr.RuntimeError) {
	keyVal, err := it.EvalExpr(target.Property, env)
	if err != nil {
		return 0, err
	}
	n, ok := keyVal.(object.Number)
	if !ok {
		return 0, loxerr.NewRuntimeError(loxerr.InvalidArrayIndex, line, "index must be a Number, got %s", keyVal.TypeName())
	}
	idx, ierr := indexFromNumber(n, line)
	if ierr != nil {
		return 0, ierr
	}
	if idx >= length {
		return 0, loxerr.NewRuntimeError(loxerr.ArrayIndexOutOfBounds, line, "index %d out of bounds for length %d", idx, length)
	}
	return idx, nil
}
