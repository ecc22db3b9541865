package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"schema.conf"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "schema.conf", config.SchemaPath)
	require.Equal(t, ".", config.OutputDir)
	require.Equal(t, "config", config.PackageName)
	require.Equal(t, "Config", config.RootName)
	require.False(t, config.AllRequired)
	require.False(t, config.DumpModel)
	require.Equal(t, "text", config.LogFormat)
	require.Equal(t, "info", config.LogLevel)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{
		"--spec", "s.conf",
		"--out", "gen",
		"--package", "appcfg",
		"--root", "Root",
		"--all-required",
		"--dump-model",
		"--log-format", "json",
		"--log-level", "debug",
	}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "s.conf", config.SchemaPath)
	require.Equal(t, "gen", config.OutputDir)
	require.Equal(t, "appcfg", config.PackageName)
	require.Equal(t, "Root", config.RootName)
	require.True(t, config.AllRequired)
	require.True(t, config.DumpModel)
	require.Equal(t, "json", config.LogFormat)
	require.Equal(t, "debug", config.LogLevel)
}

func TestParse_ShorthandFlag(t *testing.T) {
	t.Parallel()

	config, _, err := Parse([]string{"-s", "short.conf"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "short.conf", config.SchemaPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	config, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.True(t, strings.Contains(out.String(), "Usage"), "usage text should be printed")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--log-format", "yaml", "schema.conf"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--log-level", "loud", "schema.conf"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	_, shouldExit, err := Parse([]string{"-h"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.True(t, shouldExit)
}
