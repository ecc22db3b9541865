// internal/hocon/parser_test.go
package hocon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebastian-peter/tscfg/internal/config"
)

func parseDoc(t *testing.T, src string) *config.Config {
	t.Helper()
	cfg, diags := NewParser().Parse(context.Background(), "test.conf", []byte(src))
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
	require.NotNil(t, cfg)
	return cfg
}

func TestParse_Scalars(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
a = "hello"
b = 42
c = true
d = 1.5
e = null
f = localhost
`)
	require.Equal(t, config.StringKind, cfg.Value("a").Kind())
	require.Equal(t, "hello", cfg.Value("a").Unwrapped())

	require.Equal(t, config.NumberKind, cfg.Value("b").Kind())
	require.Equal(t, "42", cfg.Value("b").Unwrapped())

	require.Equal(t, config.BoolKind, cfg.Value("c").Kind())
	require.Equal(t, "true", cfg.Value("c").Unwrapped())

	require.Equal(t, config.NumberKind, cfg.Value("d").Kind())
	require.Equal(t, "1.5", cfg.Value("d").Unwrapped())

	require.Equal(t, config.NullKind, cfg.Value("e").Kind())

	// Unquoted strings run to the end of the line.
	require.Equal(t, config.StringKind, cfg.Value("f").Kind())
	require.Equal(t, "localhost", cfg.Value("f").Unwrapped())
}

func TestParse_NestedAndDottedKeysAreEquivalent(t *testing.T) {
	t.Parallel()

	nested := parseDoc(t, `
srv {
	host = "h"
	port = 8080
}
`)
	dotted := parseDoc(t, `
srv.host = "h"
srv.port = 8080
`)
	for _, cfg := range []*config.Config{nested, dotted} {
		entries := cfg.EntrySet()
		require.Len(t, entries, 2)
		require.Equal(t, "srv.host", entries[0].Path)
		require.Equal(t, "srv.port", entries[1].Path)
		require.Equal(t, "h", cfg.Value("srv.host").Unwrapped())
		require.Equal(t, "8080", cfg.Value("srv.port").Unwrapped())
	}
}

func TestParse_ObjectMergeAndOverride(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
srv { host = "a" }
srv { port = 1 }
x = 1
x = 2
`)
	require.Equal(t, "a", cfg.Value("srv.host").Unwrapped())
	require.Equal(t, "1", cfg.Value("srv.port").Unwrapped())
	require.Equal(t, "2", cfg.Value("x").Unwrapped(), "later scalar wins")
}

func TestParse_CommentsAttachToFollowingKey(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
# first line
# second line
a = 1

# detached by the blank line below

b = 2
// slash comment
c = 3
`)
	require.Equal(t, []string{" first line", " second line"}, cfg.Value("a").Origin().Comments)
	require.Empty(t, cfg.Value("b").Origin().Comments, "a blank line detaches the comment block")
	require.Equal(t, []string{" slash comment"}, cfg.Value("c").Origin().Comments)
}

func TestParse_TrailingCommentOnSameLine(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
a = 1 # on the value line
Dog { # @define extends Animal
	breed = "string"
}
`)
	require.Equal(t, []string{" on the value line"}, cfg.Value("a").Origin().Comments)

	dog := cfg.Value("Dog")
	require.Equal(t, config.ObjectKind, dog.Kind())
	require.Equal(t, []string{" @define extends Animal"}, dog.Origin().Comments,
		"a comment after the opening brace belongs to the object, not its first member")
	require.Empty(t, cfg.Value("Dog.breed").Origin().Comments)
}

func TestParse_Arrays(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
xs = ["int", "string"]
ys = [1, 2, 3]
zs = [
	"a"
	"b"
]
`)
	xs := cfg.Value("xs")
	require.Equal(t, config.ListKind, xs.Kind())
	require.Len(t, xs.Elements(), 2)
	require.Equal(t, "int", xs.Elements()[0].Unwrapped())
	require.Equal(t, "[int,string]", xs.Render())

	require.Len(t, cfg.Value("ys").Elements(), 3)
	require.Len(t, cfg.Value("zs").Elements(), 2, "newline separates array elements")
}

func TestParse_RootBraces(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `{
	a = 1
}`)
	require.Equal(t, "1", cfg.Value("a").Unwrapped())
}

func TestParse_QuotedKeyWithDot(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `
"a.b" = 1
`)
	entries := cfg.EntrySet()
	require.Len(t, entries, 1)
	require.Equal(t, `"a.b"`, entries[0].Path, "the dot inside quotes is not a path separator")
}

func TestParse_LineNumbers(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, "a = 1\nb = 2\n\nxs = [1, 2]\n")
	require.Equal(t, 1, cfg.Value("a").Origin().Line())
	require.Equal(t, 2, cfg.Value("b").Origin().Line())
	require.Equal(t, 4, cfg.Value("xs").Origin().Line())
}

func TestParse_StringEscapes(t *testing.T) {
	t.Parallel()

	cfg := parseDoc(t, `a = "say \"hi\"\n"`)
	require.Equal(t, "say \"hi\"\n", cfg.Value("a").Unwrapped())
}

func TestParse_Diagnostics(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
	}{
		{"unterminated object", `srv { a = 1`},
		{"unterminated string", `a = "no end`},
		{"missing value", "a =\n"},
		{"missing separator", `a 1`},
		{"unterminated array", `xs = [1, 2`},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, diags := NewParser().Parse(context.Background(), "bad.conf", []byte(tc.src))
			require.True(t, diags.HasErrors(), "expected diagnostics for %q", tc.src)
			require.NotNil(t, diags[0].Subject, "diagnostics carry a source range")
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	t.Parallel()

	_, diags := NewParser().ParseFile(context.Background(), "does/not/exist.conf")
	require.True(t, diags.HasErrors())
}
