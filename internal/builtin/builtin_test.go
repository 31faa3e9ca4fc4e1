package builtin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/builtin"
	"github.com/samdecook/loxi/internal/object"
)

func num(n float64) object.Value { return object.Number{Val: n} }

func TestMinPicksSmallest(t *testing.T) {
	v, err := builtin.Min([]object.Value{num(3), num(1), num(2)}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 1}, v)
}

func TestMaxPicksLargest(t *testing.T) {
	v, err := builtin.Max([]object.Value{num(3), num(1), num(2)}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 3}, v)
}

func TestMinMaxRequireAtLeastTwoArgs(t *testing.T) {
	_, err := builtin.Min([]object.Value{num(1)}, 1)
	require.Error(t, err)
	_, err = builtin.Max([]object.Value{num(1)}, 1)
	require.Error(t, err)
}

func TestNumberCastsBoolAndString(t *testing.T) {
	v, err := builtin.Number([]object.Value{object.Bool{Val: true}}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 1}, v)

	v, err = builtin.Number([]object.Value{object.Str{Val: "3.5"}}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 3.5}, v)
}

func TestNumberRejectsUnparseableString(t *testing.T) {
	_, err := builtin.Number([]object.Value{object.Str{Val: "abc"}}, 1)
	require.Error(t, err)
}

func TestBoolZeroAndEmptyStringAreFalse(t *testing.T) {
	v, err := builtin.Bool([]object.Value{num(0)}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Bool{Val: false}, v)

	v, err = builtin.Bool([]object.Value{object.Str{Val: ""}}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Bool{Val: false}, v)
}

func TestLenStringAndArray(t *testing.T) {
	v, err := builtin.Len([]object.Value{object.Str{Val: "abcd"}}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 4}, v)

	v, err = builtin.Len([]object.Value{object.Array{Elements: []object.Value{num(1), num(2)}}}, 1)
	require.NoError(t, err)
	require.Equal(t, object.Number{Val: 2}, v)
}

func TestReverseStringAndArrayRoundtrips(t *testing.T) {
	s := object.Str{Val: "hello"}
	r1, err := builtin.Reverse([]object.Value{s}, 1)
	require.NoError(t, err)
	r2, err := builtin.Reverse([]object.Value{r1}, 1)
	require.NoError(t, err)
	require.Equal(t, s, r2)

	arr := object.Array{Elements: []object.Value{num(1), num(2), num(3)}}
	rv, err := builtin.Reverse([]object.Value{arr}, 1)
	require.NoError(t, err)
	require.Equal(t, []object.Value{num(3), num(2), num(1)}, rv.(object.Array).Elements)
}

func TestAppendDefaultsToEndAndDoesNotMutateOriginal(t *testing.T) {
	arr := object.Array{Elements: []object.Value{num(1), num(2)}}
	out, err := builtin.Append([]object.Value{arr, num(3)}, 1)
	require.NoError(t, err)
	require.Equal(t, []object.Value{num(1), num(2), num(3)}, out.(object.Array).Elements)
	require.Len(t, arr.Elements, 2)
}

func TestAppendAtIndex(t *testing.T) {
	arr := object.Array{Elements: []object.Value{num(1), num(3)}}
	out, err := builtin.Append([]object.Value{arr, num(2), num(1)}, 1)
	require.NoError(t, err)
	require.Equal(t, []object.Value{num(1), num(2), num(3)}, out.(object.Array).Elements)
}

func TestRemoveDefaultsToLast(t *testing.T) {
	arr := object.Array{Elements: []object.Value{num(1), num(2), num(3)}}
	out, err := builtin.Remove([]object.Value{arr}, 1)
	require.NoError(t, err)
	require.Equal(t, []object.Value{num(1), num(2)}, out.(object.Array).Elements)
}

func TestRemoveOutOfBounds(t *testing.T) {
	arr := object.Array{Elements: []object.Value{num(1)}}
	_, err := builtin.Remove([]object.Value{arr, num(5)}, 1)
	require.Error(t, err)
}

func TestTypeOfNamesMatchSpec(t *testing.T) {
	cases := []struct {
		v    object.Value
		want string
	}{
		{num(1), "Number"},
		{object.Bool{Val: true}, "Bool"},
		{object.Nil{}, "Nil"},
		{object.Str{Val: "x"}, "String"},
		{object.Object{Fields: map[string]object.Value{}}, "Object"},
		{object.Array{}, "Array"},
	}
	for _, c := range cases {
		v, err := builtin.TypeOf([]object.Value{c.v}, 1)
		require.NoError(t, err)
		require.Equal(t, c.want, v.(object.Str).Val)
	}
}

func TestScanReadsOneLineIncludingTerminator(t *testing.T) {
	env := object.NewEnvironment(nil)
	builtin.Register(env, strings.NewReader("hello\nworld\n"))
	fn, _ := env.Lookup("scan")
	nf := fn.(object.NativeFunction)
	v, err := nf.Fn(nil, 1)
	require.NoError(t, err)
	require.Equal(t, "hello\n", v.(object.Str).Val)
}
