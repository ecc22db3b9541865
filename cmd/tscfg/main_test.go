package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_GeneratesCode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	schemaPath := writeSchema(t, `
srv {
	host = "string | localhost"
	port = "int | 8080"
}
`)
	outDir := t.TempDir()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"--out", outDir, schemaPath})

	// --- Assert ---
	require.NoError(t, err)
	generated, err := os.ReadFile(filepath.Join(outDir, "tscfg_config.go"))
	require.NoError(t, err)
	require.Contains(t, string(generated), "type ConfigSrv struct")
}

func TestRun_DumpModel(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchema(t, `a = "int | 7"`)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"--dump-model", schemaPath})
	require.NoError(t, err)
	require.Contains(t, out.String(), `"INTEGER"`)
	require.Contains(t, out.String(), `"7"`)
}

func TestRun_ParseErrorSurfaces(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchema(t, `srv { a = 1`)
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{schemaPath})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "parsing"), "the error should name the failing phase")
}

func TestRun_BuildErrorSurfaces(t *testing.T) {
	t.Parallel()

	schemaPath := writeSchema(t, `
X { # @define wobble
	a = 1
}
`)
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{schemaPath})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "@define") || strings.Contains(err.Error(), "object definition"))
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err)
}

func TestRun_MissingSchemaFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"nope.conf"})
	require.Error(t, err)
}
