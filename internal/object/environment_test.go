package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/loxerr"
	"github.com/samdecook/loxi/internal/object"
)

func TestDeclareThenLookup(t *testing.T) {
	env := object.NewEnvironment(nil)
	require.Nil(t, env.Declare("x", object.Number{Val: 1}, false))
	v, err := env.Lookup("x")
	require.Nil(t, err)
	require.Equal(t, object.Number{Val: 1}, v)
}

func TestRedeclareInSameScopeFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	require.Nil(t, env.Declare("x", object.Number{Val: 1}, false))
	err := env.Declare("x", object.Number{Val: 2}, false)
	require.NotNil(t, err)
	require.Equal(t, loxerr.ReDeclareVar, err.Kind)
}

func TestShadowingInChildScopeSucceeds(t *testing.T) {
	parent := object.NewEnvironment(nil)
	require.Nil(t, parent.Declare("x", object.Number{Val: 1}, false))
	child := object.NewEnvironment(parent)
	require.Nil(t, child.Declare("x", object.Number{Val: 2}, false))

	v, err := child.Lookup("x")
	require.Nil(t, err)
	require.Equal(t, object.Number{Val: 2}, v)

	pv, err := parent.Lookup("x")
	require.Nil(t, err)
	require.Equal(t, object.Number{Val: 1}, pv)
}

func TestAssignWalksParentChain(t *testing.T) {
	parent := object.NewEnvironment(nil)
	require.Nil(t, parent.Declare("x", object.Number{Val: 1}, false))
	child := object.NewEnvironment(parent)

	require.Nil(t, child.Assign("x", object.Number{Val: 9}))
	v, _ := parent.Lookup("x")
	require.Equal(t, object.Number{Val: 9}, v)
}

func TestAssignToConstFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	require.Nil(t, env.Declare("x", object.Number{Val: 1}, true))
	err := env.Assign("x", object.Number{Val: 2})
	require.NotNil(t, err)
	require.Equal(t, loxerr.ConstReassign, err.Kind)
}

func TestAssignUndeclaredFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	err := env.Assign("nope", object.Number{Val: 1})
	require.NotNil(t, err)
	require.Equal(t, loxerr.VarNotDeclared, err.Kind)
}

func TestLookupReturnsInnermostDeclaration(t *testing.T) {
	grand := object.NewEnvironment(nil)
	require.Nil(t, grand.Declare("x", object.Str{Val: "grand"}, false))
	parent := object.NewEnvironment(grand)
	require.Nil(t, parent.Declare("x", object.Str{Val: "parent"}, false))
	child := object.NewEnvironment(parent)

	v, err := child.Lookup("x")
	require.Nil(t, err)
	require.Equal(t, object.Str{Val: "parent"}, v)
}

func TestLookupUndeclaredFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	_, err := env.Lookup("nope")
	require.NotNil(t, err)
	require.Equal(t, loxerr.VarNotDeclared, err.Kind)
}
