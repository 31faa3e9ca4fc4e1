package cli_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdecook/loxi/internal/cli"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. Execute writes directly to os.Stdout (the
// interpreter's Stdout is wired from it in internal/cli/run.go), so
// this is the only way to observe script output from outside the
// package.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestExecuteRunsScriptAndExitsOK(t *testing.T) {
	path := writeScript(t, `
		fun main() {
			println "hello";
		}
	`)
	var code int
	out := captureStdout(t, func() {
		code = cli.Execute([]string{path})
	})
	require.Equal(t, cli.ExitOK, code)
	require.Equal(t, "hello\n", out)
}

func TestExecutePassesArgvToMain(t *testing.T) {
	path := writeScript(t, `
		fun main(name) {
			println "hi " + name;
		}
	`)
	var code int
	out := captureStdout(t, func() {
		code = cli.Execute([]string{path, "world"})
	})
	require.Equal(t, cli.ExitOK, code)
	require.Equal(t, "hi world\n", out)
}

func TestExecuteRejectsNonLoxExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(t, os.WriteFile(path, []byte("fun main() {}"), 0o644))

	code := cli.Execute([]string{path})
	require.Equal(t, cli.ExitUsage, code)
}

func TestExecuteMissingFileIsUsageError(t *testing.T) {
	code := cli.Execute([]string{filepath.Join(t.TempDir(), "missing.lox")})
	require.Equal(t, cli.ExitUsage, code)
}

func TestExecuteSyntaxErrorExitsSyntax(t *testing.T) {
	path := writeScript(t, `fun main( { }`)
	code := cli.Execute([]string{path})
	require.Equal(t, cli.ExitSyntax, code)
}

func TestExecuteRuntimeErrorExitsRuntime(t *testing.T) {
	path := writeScript(t, `
		fun main() {
			var a = [1, 2];
			println a[9];
		}
	`)
	code := cli.Execute([]string{path})
	require.Equal(t, cli.ExitRuntime, code)
}

func TestTokensCommandPrintsTokenStream(t *testing.T) {
	path := writeScript(t, `var x = 1;`)
	var code int
	out := captureStdout(t, func() {
		code = cli.Execute([]string{"tokens", path})
	})
	require.Equal(t, cli.ExitOK, code)
	require.Contains(t, out, "VAR")
}

func TestASTCommandPrintsStatements(t *testing.T) {
	path := writeScript(t, `var x = 1;`)
	var code int
	out := captureStdout(t, func() {
		code = cli.Execute([]string{"ast", path})
	})
	require.Equal(t, cli.ExitOK, code)
	require.NotEmpty(t, out)
}
