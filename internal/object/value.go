// Package object defines the runtime value union (spec §3 RuntimeVal)
// and the lexically chained Environment that stores them. The two live
// in one package because Function and Instance values embed *Environment
// (their closure / field store) while Environment stores Value — the
// same mutual reference the Rust original expresses via
// Rc<RefCell<Environment>> inside its RuntimeVal enum.
package object

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samdecook/loxi/internal/ast"
)

// Value is the tagged-union interface every runtime value implements.
type Value interface {
	// TypeName is one of the strings type_of() returns.
	TypeName() string
	String() string
}

// Bool is a boolean runtime value.
type Bool struct{ Val bool }

func (Bool) TypeName() string   { return "Bool" }
func (b Bool) String() string   { return strconv.FormatBool(b.Val) }

// Nil is the absence of a value.
type Nil struct{}

func (Nil) TypeName() string { return "Nil" }
func (Nil) String() string   { return "nil" }

// Number is an IEEE-754 double.
type Number struct{ Val float64 }

func (Number) TypeName() string { return "Number" }
func (n Number) String() string { return strconv.FormatFloat(n.Val, 'g', -1, 64) }

// Str is a Lox string. Named Str (not String) to avoid colliding with
// the built-in string type.
type Str struct{ Val string }

func (Str) TypeName() string { return "String" }
func (s Str) String() string { return s.Val }

// Array is a Lox array. Per spec §5/§9, member assignment treats
// arrays as value types: mutation clones and rewrites the binding, so
// the Elements slice is never mutated in place by interp.
type Array struct{ Elements []Value }

func (Array) TypeName() string { return "Array" }
func (a Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clone returns a shallow copy of the element slice, used by
// copy-on-write member assignment.
func (a Array) Clone() Array {
	els := make([]Value, len(a.Elements))
	copy(els, a.Elements)
	return Array{Elements: els}
}

// Object is a Lox object (string-keyed map). Like Array, mutation is
// copy-on-write: see spec §4.6/§9.
type Object struct{ Fields map[string]Value }

func (Object) TypeName() string { return "Object" }

func (o Object) String() string {
	if len(o.Fields) == 0 {
		return "{\n}"
	}
	keys := make([]string, 0, len(o.Fields))
	for k := range o.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb := strings.Builder{}
	sb.WriteString("{\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %q: %s\n", k, o.Fields[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// Clone returns a shallow copy of the field map.
func (o Object) Clone() Object {
	fields := make(map[string]Value, len(o.Fields))
	for k, v := range o.Fields {
		fields[k] = v
	}
	return Object{Fields: fields}
}

// Function is a user-defined closure.
type Function struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *Environment
}

func (Function) TypeName() string  { return "Function" }
func (f Function) String() string  { return fmt.Sprintf("Function: '%s'", f.Name) }

// NativeFunc is the Go implementation of a builtin. Line is the call
// site, for arity/type error reporting.
type NativeFunc func(args []Value, line int) (Value, error)

// NativeFunction wraps a builtin implementation.
type NativeFunction struct {
	Name string
	Fn   NativeFunc
}

func (NativeFunction) TypeName() string { return "Native function" }
func (n NativeFunction) String() string { return fmt.Sprintf("Native function: '%s'", n.Name) }

// Method is the transient bound-receiver value produced by dotted
// access on an instance; the call site unwraps it to seed `this`.
type Method struct {
	Name     string
	Params   []string
	Body     []ast.Stmt
	Closure  *Environment
	Instance *Instance
}

func (Method) TypeName() string { return "Method" }
func (m Method) String() string { return fmt.Sprintf("Method: '%s'", m.Name) }

// Class is a Lox class: its own methods/static fields plus an optional
// superclass (resolved by name at access time, not by pointer — see
// spec §9 "Super via name, not pointer").
type Class struct {
	Name         string
	StaticFields map[string]Value
	Methods      map[string]*Function
	Superclass   string // "" if none
}

func (Class) TypeName() string { return "Class" }
func (c Class) String() string { return fmt.Sprintf("Class: '%s'", c.Name) }

// Instance is an object constructed from a Class. Fields live in
// InstanceEnv, which has no parent link; method bodies instead run in
// the method's closure extended with `this`.
type Instance struct {
	ClassName   string
	InstanceEnv *Environment
}

func (Instance) TypeName() string { return "Instance" }
func (i Instance) String() string { return fmt.Sprintf("Instance: '%s'", i.ClassName) }

// IsTruthy implements the language's truthiness rule: only Bool(false)
// and Nil are falsy, mirroring the teacher's IsTruthy in object.go -
// except this spec requires `and`/`or` operands to actually be Bool
// (see interp), so IsTruthy here is only used for boolean coercion
// where the spec explicitly allows it (it currently does not; kept for
// completeness and exercised by tests against accidental regressions).
func IsTruthy(v Value) bool {
	switch val := v.(type) {
	case Nil:
		return false
	case Bool:
		return val.Val
	default:
		return true
	}
}
