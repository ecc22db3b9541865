// internal/keys/keys_test.go
package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParentOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path     string
		expected string
	}{
		{"a.b.c", "a.b"},
		{"a", ""},
		{"", ""},
		{`"a.b".c`, `"a.b"`},
		{`"a.b"`, ""},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, ParentOf(tc.path), "ParentOf(%q)", tc.path)
	}
}

func TestSimpleOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path     string
		expected string
	}{
		{"a.b.c", "c"},
		{"a", "a"},
		{`x."a.b"`, `"a.b"`},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, SimpleOf(tc.path), "SimpleOf(%q)", tc.path)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a.b", Join("a", "b"))
	require.Equal(t, "b", Join("", "b"))
}

func TestKey_RootAndParent(t *testing.T) {
	t.Parallel()

	require.True(t, Root.IsRoot())
	require.True(t, New("").IsRoot())
	require.Equal(t, "", Root.Simple())

	k := New("a.b.c")
	require.False(t, k.IsRoot())
	require.Equal(t, "c", k.Simple())
	require.Equal(t, "a.b", k.Parent().String())
	require.Equal(t, []string{"a", "b", "c"}, k.Segments())
	require.True(t, k.Parent().Parent().Parent().IsRoot())
	require.True(t, Root.Parent().IsRoot())
}

func TestKey_QuotedSegment(t *testing.T) {
	t.Parallel()

	k := New(`srv."a.b"`)
	require.Equal(t, []string{"srv", `"a.b"`}, k.Segments())
	require.Equal(t, `"a.b"`, k.Simple())
}
