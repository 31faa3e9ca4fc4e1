package replio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/builtin"
	"github.com/samdecook/loxi/internal/interp"
	"github.com/samdecook/loxi/internal/object"
)

func newTestInterp(out *bytes.Buffer) *interp.Interp {
	global := object.NewEnvironment(nil)
	builtin.Register(global, strings.NewReader(""))
	return interp.New(out, global)
}

func TestEvalLineEchoesBareExpressionWhenEnabled(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(&out)
	errColor := color.New(color.FgRed)
	errColor.DisableColor()

	evalLine(it, "1 + 2;", true, errColor)
	require.Equal(t, "3\n", out.String())
}

func TestEvalLineSuppressesEchoWhenDisabled(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(&out)
	errColor := color.New(color.FgRed)
	errColor.DisableColor()

	evalLine(it, "1 + 2;", false, errColor)
	require.Empty(t, out.String())
}

func TestEvalLineDeclarationsPersistAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	it := newTestInterp(&out)
	errColor := color.New(color.FgRed)
	errColor.DisableColor()

	evalLine(it, "var x = 10;", true, errColor)
	out.Reset()
	evalLine(it, "x + 5;", true, errColor)
	require.Equal(t, "15\n", out.String())
}

func TestStyledPromptNoColorReturnsBarePrompt(t *testing.T) {
	require.Equal(t, "> ", styledPrompt("> ", false))
}

func TestStyledPromptColorWrapsPrompt(t *testing.T) {
	got := styledPrompt("> ", true)
	require.Contains(t, got, ">")
}
