// internal/config/config.go
package config

import (
	"github.com/sebastian-peter/tscfg/internal/keys"
)

// Entry is one leaf of the flat view of a document: the full dotted path
// and the value found there. Member names containing dots keep their
// source quoting, so paths remain unambiguous.
type Entry struct {
	Path  string
	Value *Value
}

// Config is an object value viewed as a configuration: the unit the
// model builder recurses over.
type Config struct {
	root *Value
}

// New wraps an object value. It panics on non-object input; callers hold
// the invariant that only objects become configs.
func New(root *Value) *Config {
	if root.Kind() != ObjectKind {
		panic("config: root value must be an object")
	}
	return &Config{root: root}
}

// Root returns the underlying object value.
func (c *Config) Root() *Value { return c.root }

// EntrySet returns every leaf (non-object) value reachable from the
// root, in document order, keyed by its full dotted path.
func (c *Config) EntrySet() []Entry {
	var out []Entry
	var walk func(prefix string, v *Value)
	walk = func(prefix string, v *Value) {
		for _, name := range v.MemberNames() {
			member := v.Member(name)
			path := keys.Join(prefix, name)
			if member.Kind() == ObjectKind {
				walk(path, member)
				continue
			}
			out = append(out, Entry{Path: path, Value: member})
		}
	}
	walk("", c.root)
	return out
}

// Value resolves a dotted path to the value stored there, or nil when
// any segment is missing.
func (c *Config) Value(path string) *Value {
	v := c.root
	for _, seg := range keys.New(path).Segments() {
		if v == nil || v.Kind() != ObjectKind {
			return nil
		}
		v = v.Member(seg)
	}
	return v
}

// Config resolves a dotted path to a nested object viewed as a Config,
// or nil when the path is missing or not an object.
func (c *Config) Config(path string) *Config {
	v := c.Value(path)
	if v == nil || v.Kind() != ObjectKind {
		return nil
	}
	return New(v)
}
