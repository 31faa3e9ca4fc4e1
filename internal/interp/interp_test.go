package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/builtin"
	"github.com/samdecook/loxi/internal/interp"
	"github.com/samdecook/loxi/internal/lexer"
	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
	"github.com/samdecook/loxi/internal/parser"
)

// run scans, parses (as a full program, not REPL mode), and executes
// src against a fresh Interp, returning everything written to stdout.
func run(t *testing.T, src string) (string, *loxerr.RuntimeError) {
	t.Helper()
	s := lexer.New([]byte(src))
	toks := s.Scan()
	require.False(t, s.HadError())

	prog, perr := parser.Parse(toks, false)
	require.NoError(t, perr)

	var out bytes.Buffer
	global := object.NewEnvironment(nil)
	builtin.Register(global, strings.NewReader(""))
	it := interp.New(&out, global)

	rerr := it.RunProgram(prog, nil)
	return out.String(), rerr
}

func TestClosureCounterKeepsPrivateState(t *testing.T) {
	out, rerr := run(t, `
		fun make_counter() {
			var count = 0;
			fun counter() {
				count = count + 1;
				return count;
			}
			return counter;
		}

		fun main() {
			var c = make_counter();
			print c(), " ", c(), " ", c(), "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "1 2 3\n", out)
}

func TestInheritanceAndSuperDispatchToUnboundFunction(t *testing.T) {
	out, rerr := run(t, `
		class Greeter {
			fun greet() {
				return "hello from Greeter";
			}
		}

		class LoudGreeter < Greeter {
			fun greet() {
				return super.greet() + "!";
			}
		}

		fun main() {
			var g = LoudGreeter();
			print g.greet(), "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "hello from Greeter!\n", out)
}

func TestConstReassignmentIsRuntimeError(t *testing.T) {
	_, rerr := run(t, `
		fun main() {
			const x = 1;
			x = 2;
		}
	`)
	require.NotNil(t, rerr)
}

func TestForLoopBreakAndContinue(t *testing.T) {
	out, rerr := run(t, `
		fun main() {
			for var i = 0; i < 10; i = i + 1 {
				if (i == 2) {
					continue;
				}
				if (i == 5) {
					break;
				}
				print i, " ";
			}
			print "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "0 1 3 4 \n", out)
}

func TestArrayIndexOutOfBoundsIsRuntimeError(t *testing.T) {
	_, rerr := run(t, `
		fun main() {
			var a = [1, 2, 3];
			print a[5];
		}
	`)
	require.NotNil(t, rerr)
	require.Equal(t, loxerr.ArrayIndexOutOfBounds, rerr.Kind)
}

func TestPlusConcatenatesStringsAndAddsNumbers(t *testing.T) {
	out, rerr := run(t, `
		fun main() {
			print "foo" + "bar", " ", 1 + 2, "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "foobar 3\n", out)
}

func TestPlusRejectsMixedNumberAndString(t *testing.T) {
	_, rerr := run(t, `
		fun main() {
			print "foo" + 1;
		}
	`)
	require.NotNil(t, rerr)
	require.Equal(t, loxerr.TypeMismatch, rerr.Kind)
}

func TestLogicalOperatorsDoNotShortCircuitOnNonBool(t *testing.T) {
	_, rerr := run(t, `
		fun main() {
			print true and 1;
		}
	`)
	require.NotNil(t, rerr)
	require.Equal(t, loxerr.TypeMismatch, rerr.Kind)
}

func TestComparisonOrdersBoolFalseBeforeTrue(t *testing.T) {
	out, rerr := run(t, `
		fun main() {
			print false < true, "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "true\n", out)
}

func TestClassConstructorBindsThis(t *testing.T) {
	out, rerr := run(t, `
		class Point {
			fun Point(x, y) {
				this.x = x;
				this.y = y;
			}
			fun sum() {
				return this.x + this.y;
			}
		}

		fun main() {
			var p = Point(3, 4);
			print p.sum(), "\n";
		}
	`)
	require.Nil(t, rerr)
	require.Equal(t, "7\n", out)
}
