package object

import "github.com/samdecook/loxi/internal/loxerr"

// Environment is a lexically chained variable scope (spec §4.3),
// grounded on the teacher's codecrafters/cmd/environment.go and the
// original environment/mod.rs. Unlike the teacher's version, Declare
// never silently overwrites: re-declaring a name in the same scope is
// a ReDeclareVar error, and const-ness is tracked per binding.
type Environment struct {
	parent    *Environment
	values    map[string]Value
	constants map[string]bool
}

// NewEnvironment creates a scope chained to parent (nil for the global
// scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		parent:    parent,
		values:    make(map[string]Value),
		constants: make(map[string]bool),
	}
}

// Declare binds name to value in this environment only. It fails if
// name is already bound in this same environment (shadowing an outer
// binding is fine; redeclaring in the same scope is not).
func (e *Environment) Declare(name string, value Value, isConst bool) *loxerr.EnvError {
	if _, exists := e.values[name]; exists {
		return &loxerr.EnvError{Kind: loxerr.ReDeclareVar, Name: name}
	}
	e.values[name] = value
	e.constants[name] = isConst
	return nil
}

// Assign rebinds an existing name, walking the parent chain. It fails
// with ConstReassign if the binding is const, or VarNotDeclared if no
// environment in the chain declares name.
func (e *Environment) Assign(name string, value Value) *loxerr.EnvError {
	if _, exists := e.values[name]; exists {
		if e.constants[name] {
			return &loxerr.EnvError{Kind: loxerr.ConstReassign, Name: name}
		}
		e.values[name] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return &loxerr.EnvError{Kind: loxerr.VarNotDeclared, Name: name}
}

// Lookup resolves name by walking the parent chain outward.
func (e *Environment) Lookup(name string) (Value, *loxerr.EnvError) {
	if v, exists := e.values[name]; exists {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, &loxerr.EnvError{Kind: loxerr.VarNotDeclared, Name: name}
}

// IsConst reports whether name (as seen from this environment) is
// bound const. It assumes name resolves; callers check Lookup first.
func (e *Environment) IsConst(name string) bool {
	if _, exists := e.values[name]; exists {
		return e.constants[name]
	}
	if e.parent != nil {
		return e.parent.IsConst(name)
	}
	return false
}

// Parent exposes the enclosing scope (nil for the global scope).
func (e *Environment) Parent() *Environment { return e.parent }
