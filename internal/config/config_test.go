// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func originAt(line int) Origin {
	return Origin{Range: hcl.Range{Start: hcl.Pos{Line: line, Column: 1}}}
}

// buildTree assembles `srv { host = "h", ports = [1, 2] }, debug = true`
// by hand, the way the frontend would.
func buildTree(t *testing.T) *Config {
	t.Helper()
	root := NewObject(originAt(1))
	srv := NewObject(originAt(1))
	srv.SetMember("host", NewString("h", `"h"`, originAt(2)))
	srv.SetMember("ports", NewList([]*Value{
		NewNumber(cty.NumberIntVal(1), "1", originAt(3)),
		NewNumber(cty.NumberIntVal(2), "2", originAt(3)),
	}, originAt(3)))
	root.SetMember("srv", srv)
	root.SetMember("debug", NewBool(true, "true", originAt(5)))
	return New(root)
}

func TestConfig_EntrySet(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	entries := cfg.EntrySet()
	require.Len(t, entries, 3)
	require.Equal(t, "srv.host", entries[0].Path)
	require.Equal(t, "srv.ports", entries[1].Path)
	require.Equal(t, "debug", entries[2].Path)
}

func TestConfig_ValueAndConfig(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	require.Equal(t, "h", cfg.Value("srv.host").Unwrapped())
	require.Nil(t, cfg.Value("srv.missing"))
	require.Nil(t, cfg.Value("srv.host.deeper"), "scalars have no children")

	sub := cfg.Config("srv")
	require.NotNil(t, sub)
	require.Equal(t, "h", sub.Value("host").Unwrapped())
	require.Nil(t, cfg.Config("debug"), "a leaf is not a config")
}

func TestValue_Unwrapped(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	require.Equal(t, "true", cfg.Value("debug").Unwrapped())
	require.Equal(t, "[1, 2]", cfg.Value("srv.ports").Unwrapped())
	require.Equal(t, "{host=h, ports=[1, 2]}", cfg.Value("srv").Unwrapped())
}

func TestValue_Render(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	require.Equal(t, "[1,2]", cfg.Value("srv.ports").Render())
}

func TestValue_Cty(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	require.Equal(t, cty.StringVal("h"), cfg.Value("srv.host").Cty())
	require.Equal(t, cty.Bool, cfg.Value("debug").Cty().Type())

	ports := cfg.Value("srv.ports").Cty()
	require.True(t, ports.Type().IsTupleType())
	require.Equal(t, 2, ports.LengthInt())

	srv := cfg.Value("srv").Cty()
	require.True(t, srv.Type().IsObjectType())
}

func TestValue_Origin(t *testing.T) {
	t.Parallel()

	cfg := buildTree(t)
	require.Equal(t, 2, cfg.Value("srv.host").Origin().Line())
	require.Equal(t, 5, cfg.Value("debug").Origin().Line())
}

func TestValue_NumberKeepsRawLiteral(t *testing.T) {
	t.Parallel()

	v := NewNumber(cty.NumberFloatVal(1.5), "1.5", originAt(1))
	require.Equal(t, "1.5", v.Unwrapped())
	require.Equal(t, NumberKind, v.Kind())
}

func TestValue_SetMemberKeepsFirstInsertionOrder(t *testing.T) {
	t.Parallel()

	obj := NewObject(originAt(1))
	obj.SetMember("a", NewBool(true, "true", originAt(1)))
	obj.SetMember("b", NewBool(true, "true", originAt(1)))
	obj.SetMember("a", NewBool(false, "false", originAt(2)))
	require.Equal(t, []string{"a", "b"}, obj.MemberNames())
	require.Equal(t, "false", obj.Member("a").Unwrapped())
}

func TestNew_PanicsOnNonObject(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		New(NewBool(true, "true", originAt(1)))
	})
}
