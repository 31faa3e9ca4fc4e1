// Package builtin implements the native function table (spec §6),
// grounded on the original global_scope::mod.rs with the documented
// min/max bug (spec §9) fixed: both now compare against the running
// extremum in the correct direction.
package builtin

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

func arityError(line, want, got int) *loxerr.RuntimeError {
	return loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
		"expected %d argument(s), got %d", want, got)
}

func atLeastError(line, want, got int) *loxerr.RuntimeError {
	return loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
		"expected at least %d argument(s), got %d", want, got)
}

func typeError(line int, want string, got object.Value) *loxerr.RuntimeError {
	return loxerr.NewRuntimeError(loxerr.TypeMismatch, line,
		"expected %s, got %s", want, got.TypeName())
}

// Clock returns seconds since the Unix epoch as a fractional double.
func Clock(args []object.Value, line int) (object.Value, error) {
	if len(args) != 0 {
		return nil, arityError(line, 0, len(args))
	}
	return object.Number{Val: float64(time.Now().UnixNano()) / 1e9}, nil
}

// Scan reads one line (including its terminator, matching the source's
// BufReader-backed stdin scan) from in.
func Scan(in *bufio.Reader) object.NativeFunc {
	return func(args []object.Value, line int) (object.Value, error) {
		if len(args) != 0 {
			return nil, arityError(line, 0, len(args))
		}
		s, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, loxerr.NewRuntimeError(loxerr.InternalError, line, "scan: %s", err)
		}
		return object.Str{Val: s}, nil
	}
}

// Min returns the smallest of at least two numbers.
func Min(args []object.Value, line int) (object.Value, error) {
	return minmax(args, line, false)
}

// Max returns the largest of at least two numbers.
func Max(args []object.Value, line int) (object.Value, error) {
	return minmax(args, line, true)
}

func minmax(args []object.Value, line int, wantMax bool) (object.Value, error) {
	if len(args) < 2 {
		return nil, atLeastError(line, 2, len(args))
	}
	first, ok := args[0].(object.Number)
	if !ok {
		return nil, typeError(line, "Number", args[0])
	}
	best := first.Val
	for _, a := range args[1:] {
		n, ok := a.(object.Number)
		if !ok {
			return nil, typeError(line, "Number", a)
		}
		if wantMax && n.Val > best {
			best = n.Val
		} else if !wantMax && n.Val < best {
			best = n.Val
		}
	}
	return object.Number{Val: best}, nil
}

// Number casts x to Number; true/false become 1/0, and an
// unparseable numeric string is a TypeCastingError rather than the
// original's panic.
func Number(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Number:
		return v, nil
	case object.Bool:
		if v.Val {
			return object.Number{Val: 1}, nil
		}
		return object.Number{Val: 0}, nil
	case object.Str:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, loxerr.NewRuntimeError(loxerr.TypeCastingError, line,
				"cannot convert %q to Number", v.Val)
		}
		return object.Number{Val: n}, nil
	default:
		return nil, typeError(line, "Number|Bool|String", args[0])
	}
}

// Bool casts x to Bool; 0/empty string are false.
func Bool(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Number:
		return object.Bool{Val: v.Val != 0}, nil
	case object.Bool:
		return v, nil
	case object.Str:
		return object.Bool{Val: len(v.Val) != 0}, nil
	default:
		return nil, typeError(line, "Number|Bool|String", args[0])
	}
}

// String casts x to its canonical text form.
func String(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Number, object.Bool, object.Str:
		return object.Str{Val: v.String()}, nil
	default:
		return nil, typeError(line, "Number|Bool|String", args[0])
	}
}

// Len returns the length of a String or Array.
func Len(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Str:
		return object.Number{Val: float64(len(v.Val))}, nil
	case object.Array:
		return object.Number{Val: float64(len(v.Elements))}, nil
	default:
		return nil, typeError(line, "String|Array", args[0])
	}
}

// TypeOf returns the runtime type name of any value.
func TypeOf(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	return object.Str{Val: args[0].TypeName()}, nil
}

// Reverse reverses a String or Array, byte-wise for strings (spec §9:
// multi-byte encodings are unspecified; this implementation rejects
// non-ASCII bytes explicitly rather than silently corrupting them).
func Reverse(args []object.Value, line int) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError(line, 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Str:
		b := []byte(v.Val)
		for _, c := range b {
			if c > 0x7f {
				return nil, loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
					"reverse: non-ASCII byte in string, Unicode indexing is unsupported")
			}
		}
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return object.Str{Val: string(b)}, nil
	case object.Array:
		els := make([]object.Value, len(v.Elements))
		for i, e := range v.Elements {
			els[len(els)-1-i] = e
		}
		return object.Array{Elements: els}, nil
	default:
		return nil, typeError(line, "String|Array", args[0])
	}
}

// Append inserts v into arr at index i (default: end), returning a new
// Array per the aggregate-as-value-type rule (spec §5).
func Append(args []object.Value, line int) (object.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
			"expected 2 or 3 arguments, got %d", len(args))
	}
	arr, ok := args[0].(object.Array)
	if !ok {
		return nil, typeError(line, "Array", args[0])
	}
	idx := len(arr.Elements)
	if len(args) == 3 {
		n, ok := args[2].(object.Number)
		if !ok {
			return nil, typeError(line, "Number", args[2])
		}
		idx = int(n.Val)
	}
	if idx < 0 || idx > len(arr.Elements) {
		return nil, loxerr.NewRuntimeError(loxerr.ArrayIndexOutOfBounds, line,
			"append index %d out of bounds for array of length %d", idx, len(arr.Elements))
	}
	out := make([]object.Value, 0, len(arr.Elements)+1)
	out = append(out, arr.Elements[:idx]...)
	out = append(out, args[1])
	out = append(out, arr.Elements[idx:]...)
	return object.Array{Elements: out}, nil
}

// Remove deletes the element at index i (default: last), returning a
// new Array.
func Remove(args []object.Value, line int) (object.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, loxerr.NewRuntimeError(loxerr.InvalidArgumentCount, line,
			"expected 1 or 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(object.Array)
	if !ok {
		return nil, typeError(line, "Array", args[0])
	}
	idx := len(arr.Elements) - 1
	if len(args) == 2 {
		n, ok := args[1].(object.Number)
		if !ok {
			return nil, typeError(line, "Number", args[1])
		}
		idx = int(n.Val)
	}
	if idx < 0 || idx >= len(arr.Elements) {
		return nil, loxerr.NewRuntimeError(loxerr.ArrayIndexOutOfBounds, line,
			"remove index %d out of bounds for array of length %d", idx, len(arr.Elements))
	}
	out := make([]object.Value, 0, len(arr.Elements)-1)
	out = append(out, arr.Elements[:idx]...)
	out = append(out, arr.Elements[idx+1:]...)
	return object.Array{Elements: out}, nil
}

// Register binds every native function, including the stdin-backed
// scan, into env as const bindings — mirroring Environment::new's
// auto-call to set_global_scope in the original source.
func Register(env *object.Environment, stdin io.Reader) {
	in := bufio.NewReader(stdin)
	table := map[string]object.NativeFunc{
		"clock":   Clock,
		"scan":    Scan(in),
		"min":     Min,
		"max":     Max,
		"number":  Number,
		"bool":    Bool,
		"string":  String,
		"len":     Len,
		"type_of": TypeOf,
		"reverse": Reverse,
		"append":  Append,
		"remove":  Remove,
	}
	for name, fn := range table {
		_ = env.Declare(name, object.NativeFunction{Name: name, Fn: fn}, true)
	}
}
