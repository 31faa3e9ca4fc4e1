package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/object"
)

func TestArrayStringFormat(t *testing.T) {
	arr := object.Array{Elements: []object.Value{object.Number{Val: 1}, object.Str{Val: "a"}}}
	require.Equal(t, `[1, a]`, arr.String())
}

func TestObjectStringIsDeterministicallyOrdered(t *testing.T) {
	obj := object.Object{Fields: map[string]object.Value{
		"b": object.Number{Val: 2},
		"a": object.Number{Val: 1},
	}}
	require.Equal(t, "{\n  \"a\": 1\n  \"b\": 2\n}", obj.String())
}

func TestOnlyFalseAndNilAreFalsy(t *testing.T) {
	require.False(t, object.IsTruthy(object.Bool{Val: false}))
	require.False(t, object.IsTruthy(object.Nil{}))
	require.True(t, object.IsTruthy(object.Bool{Val: true}))
	require.True(t, object.IsTruthy(object.Number{Val: 0}))
	require.True(t, object.IsTruthy(object.Str{Val: ""}))
}

func TestArrayCloneIsIndependent(t *testing.T) {
	arr := object.Array{Elements: []object.Value{object.Number{Val: 1}}}
	clone := arr.Clone()
	clone.Elements[0] = object.Number{Val: 2}
	require.Equal(t, object.Number{Val: 1}, arr.Elements[0])
}

func TestObjectCloneIsIndependent(t *testing.T) {
	obj := object.Object{Fields: map[string]object.Value{"a": object.Number{Val: 1}}}
	clone := obj.Clone()
	clone.Fields["a"] = object.Number{Val: 2}
	require.Equal(t, object.Number{Val: 1}, obj.Fields["a"])
}
