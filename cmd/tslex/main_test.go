package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palantir/tslint-sub000/internal/source"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--color", "off"))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadColorMode(t *testing.T) {
	for in, want := range map[string]colorMode{"": colorAuto, "AUTO": colorAuto, "on": colorOn, " off ": colorOff} {
		got, err := readColorMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readColorMode("always")
	require.Error(t, err)

	var buf bytes.Buffer
	require.True(t, colorOn.useColor(&buf))
	require.False(t, colorAuto.useColor(&buf))
	require.False(t, colorOff.useColor(os.Stdout))
}

func TestParsePosition(t *testing.T) {
	file := source.NewVirtualFile("p.ts", "ab\ncd\nef")
	tests := []struct {
		arg  string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{"1:1", 0, true},
		{"2:2", 4, true},
		{"3:1", 6, true},
		{"4:1", 0, false},
		{"0:1", 0, false},
		{"x", 0, false},
		{"1:y", 0, false},
	}
	for _, tt := range tests {
		got, err := parsePosition(file, tt.arg)
		if !tt.ok {
			require.Error(t, err, tt.arg)
			continue
		}
		require.NoError(t, err, tt.arg)
		require.Equal(t, tt.want, got, tt.arg)
	}
}

func TestTokenizeCommand(t *testing.T) {
	path := writeSource(t, "a.js", "var s = 'x;\n")
	out, errOut, err := run(t, "tokenize", path)
	require.NoError(t, err)
	require.Contains(t, out, `"var"`)
	require.Contains(t, out, "EndOfFileToken")
	require.Contains(t, errOut, "LEX1002")

	out, _, err = run(t, "tokenize", "--format", "json", path)
	require.NoError(t, err)
	require.Contains(t, out, `"count":`)
	require.Contains(t, out, `"code": "LEX1002"`)
}

func TestRoundtripAndTokenAt(t *testing.T) {
	path := writeSource(t, "b.ts", "var a = b + c; // tail\n")
	out, _, err := run(t, "roundtrip", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "ok"), out)

	out, _, err = run(t, "token-at", path, "1:9")
	require.NoError(t, err)
	require.Contains(t, out, `token:    IdentifierName "b" at 1:9 [8, 9)`)
	require.Contains(t, out, "BinaryExpression < ")
	require.Contains(t, out, "< SourceUnit")
}

func TestFmtCommand(t *testing.T) {
	path := writeSource(t, "c.js", "if(a){b()}")
	out, _, err := run(t, "fmt", "--stdout", "--indent", "2", path)
	require.NoError(t, err)
	require.Equal(t, "if (a) {\r\n  b()\r\n}\r\n", out)
}

func TestConfigAndVersionCommands(t *testing.T) {
	out, _, err := run(t, "config", "--language", "es3")
	require.NoError(t, err)
	require.Contains(t, out, "language: es3")
	require.Contains(t, out, "# source: defaults")

	out, _, err = run(t, "version", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"tool": "tslex"`)
}

func TestCheckCommandFailsOnErrors(t *testing.T) {
	path := writeSource(t, "d.js", "x = '\n")
	out, errOut, err := run(t, "check", path)
	require.ErrorIs(t, err, errDiagnostics)
	require.Contains(t, out, "LEX1002")
	require.Contains(t, errOut, "1 error")
}
